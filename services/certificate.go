package services

import (
	"errors"
	"fmt"
	"time"

	courseModels "lms/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService performs idempotent, at-most-once certificate issuance.
// Eligibility is re-validated at issuance time, never trusted from an earlier
// request.
type CertificateService struct {
	db          *gorm.DB
	enrollments *EnrollmentService
	progress    *ProgressService
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{
		db:          db,
		enrollments: NewEnrollmentService(db),
		progress:    NewProgressService(db),
	}
}

// Issue walks the eligibility gates in order and short-circuits on the first
// failure: NotEnrolled, LessonsIncomplete, QuizzesNotPassed, AlreadyIssued.
// The final insert is guarded by the unique index on (user, course): two
// concurrent calls produce exactly one certificate row, the loser observes
// ErrAlreadyIssued.
func (s *CertificateService) Issue(userID, courseID uint) (*courseModels.Certificate, error) {
	enrolled, err := s.enrollments.IsEnrolled(userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, &EligibilityError{Reason: ErrNotEnrolled}
	}

	snapshot, err := s.progress.ComputeProgress(userID, courseID)
	if err != nil {
		return nil, err
	}

	if snapshot.CompletedLessons < snapshot.TotalLessons {
		return nil, &EligibilityError{Reason: ErrLessonsIncomplete, Snapshot: snapshot}
	}

	if !snapshot.AllQuizzesPassed {
		return nil, &EligibilityError{Reason: ErrQuizzesNotPassed, Snapshot: snapshot}
	}

	var existing courseModels.Certificate
	err = s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyIssued
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	certificate := courseModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: uuid.NewString(),
		DownloadURL:       DownloadReference(userID, courseID),
		IssuedAt:          time.Now().UTC(),
	}

	if err := s.db.Create(&certificate).Error; err != nil {
		// The pre-read above only makes the common retry friendly; the unique
		// index is the authority under concurrent issuance.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyIssued
		}
		return nil, err
	}

	return &certificate, nil
}

// DownloadReference derives the deterministic artifact path for a pair. The
// external generator resolves it to the actual document; the engine only ever
// stores the string.
func DownloadReference(userID, courseID uint) string {
	return fmt.Sprintf("certificates/%d_%d.pdf", userID, courseID)
}

// CertificateWithCourse is one issued certificate with its course title.
type CertificateWithCourse struct {
	courseModels.Certificate
	CourseTitle string `json:"course_title"`
}

// ListForUser returns the user's certificates, newest first.
func (s *CertificateService) ListForUser(userID uint) ([]CertificateWithCourse, error) {
	var certificates []courseModels.Certificate
	err := s.db.Where("user_id = ?", userID).Order("issued_at desc").Find(&certificates).Error
	if err != nil {
		return nil, err
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		s.db.First(&course, cert.CourseID)
		result[i] = CertificateWithCourse{Certificate: cert, CourseTitle: course.Title}
	}
	return result, nil
}
