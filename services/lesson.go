package services

import (
	"errors"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// LessonService tracks one-time lesson completions per user.
type LessonService struct {
	db          *gorm.DB
	enrollments *EnrollmentService
}

func NewLessonService(db *gorm.DB) *LessonService {
	return &LessonService{db: db, enrollments: NewEnrollmentService(db)}
}

// MarkComplete records that the user finished the lesson. Completions are
// insert-only: the unique index on (user, lesson) guarantees that under
// concurrent identical requests exactly one insert succeeds and the rest see
// ErrAlreadyCompleted, never a duplicate row.
func (s *LessonService) MarkComplete(userID, lessonID uint) (*courseModels.LessonCompletion, error) {
	var lesson courseModels.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	enrolled, err := s.enrollments.IsEnrolled(userID, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, ErrNotEnrolled
	}

	completion := courseModels.LessonCompletion{
		UserID:   userID,
		LessonID: lessonID,
		CourseID: lesson.CourseID,
	}

	if err := s.db.Create(&completion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	return &completion, nil
}

// CountCompleted returns how many distinct lessons of the course the user has
// completed. CourseID is denormalized onto the completion row (a lesson
// belongs to exactly one course), so this is a single count.
func (s *LessonService) CountCompleted(userID, courseID uint) (int, error) {
	var count int64
	err := s.db.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return int(count), err
}
