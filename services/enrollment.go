package services

import (
	"errors"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// EnrollmentService is the ledger of active (user, course) pairs. It gates all
// downstream progress tracking.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll creates the enrollment for (userID, courseID). The insert itself is
// the duplicate check: the unique index rejects a second row and the
// duplicate-key error is mapped to ErrAlreadyEnrolled, so concurrent enrolls
// cannot race past each other.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*courseModels.Enrollment, error) {
	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var course courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   courseModels.EnrollmentEnrolled,
	}

	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}

// IsEnrolled reports whether an enrollment row exists for the pair.
func (s *EnrollmentService) IsEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForUser returns the user's enrollments, newest first.
func (s *EnrollmentService) ListForUser(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error
	return enrollments, err
}

// EnrolledStudent is one row of a course's student roster.
type EnrolledStudent struct {
	UserID     uint      `json:"user_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// ListStudents returns user details for everyone enrolled in a course.
func (s *EnrollmentService) ListStudents(courseID uint) ([]EnrolledStudent, error) {
	var students []EnrolledStudent
	err := s.db.Model(&courseModels.Enrollment{}).
		Select("enrollments.user_id, users.full_name, users.email, enrollments.created_at as enrolled_at").
		Joins("JOIN users ON users.id = enrollments.user_id").
		Where("enrollments.course_id = ?", courseID).
		Scan(&students).Error
	return students, err
}
