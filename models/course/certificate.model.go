package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is the one-time proof of course completion. The composite unique
// index on (user, course) is the at-most-once guarantee: under concurrent
// issuance exactly one insert commits and the rest fail with a duplicate key.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID          uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CertificateNumber string    `json:"certificate_number" gorm:"uniqueIndex"`
	DownloadURL       string    `json:"download_url"`
	IssuedAt          time.Time `json:"issued_at"`
}
