package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. Status is presentation-level bookkeeping maintained by
// the rollup scheduler; eligibility logic only ever asks whether the row exists.
const (
	EnrollmentEnrolled   = "ENROLLED"
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"
)

// Enrollment records that a user is actively taking a course. The composite
// unique index enforces one enrollment per (user, course).
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status      string     `json:"status" gorm:"default:'ENROLLED'"`
	CompletedAt *time.Time `json:"completed_at"`
}
