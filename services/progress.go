package services

import (
	"errors"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// ProgressService combines enrollment, lesson completions and quiz outcomes
// into a single snapshot for a (user, course) pair. Snapshots are always
// computed fresh from the source tables; nothing here is cached, so the
// issuance path cannot observe stale state.
type ProgressService struct {
	db      *gorm.DB
	lessons *LessonService
	quizzes *QuizService
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{
		db:      db,
		lessons: NewLessonService(db),
		quizzes: NewQuizService(db),
	}
}

// ProgressSnapshot is the aggregated completion state of a user in a course.
type ProgressSnapshot struct {
	CourseID              uint `json:"course_id"`
	TotalLessons          int  `json:"total_lessons"`
	CompletedLessons      int  `json:"completed_lessons"`
	LessonProgressPercent int  `json:"lesson_progress_percent"`
	AllQuizzesPassed      bool `json:"all_quizzes_passed"`
}

// ComputeProgress builds a fresh snapshot. The percentage truncates: 3 of 4
// lessons is 75, 2 of 3 is 66. A course with no lessons reports 0; a course
// with no quizzes reports AllQuizzesPassed true.
func (s *ProgressService) ComputeProgress(userID, courseID uint) (*ProgressSnapshot, error) {
	var course courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var totalLessons int64
	err := s.db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalLessons).Error
	if err != nil {
		return nil, err
	}

	completedLessons, err := s.lessons.CountCompleted(userID, courseID)
	if err != nil {
		return nil, err
	}

	percent := 0
	if totalLessons > 0 {
		percent = completedLessons * 100 / int(totalLessons)
	}

	// Lesson-scoped quizzes carry their parent course id, so a single filter
	// on course_id covers both course-level and lesson-level quizzes.
	var quizzes []courseModels.Quiz
	err = s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&quizzes).Error
	if err != nil {
		return nil, err
	}

	allPassed := true
	for _, quiz := range quizzes {
		passed, err := s.quizzes.HasPassed(quiz.ID, userID)
		if err != nil {
			return nil, err
		}
		if !passed {
			allPassed = false
			break
		}
	}

	return &ProgressSnapshot{
		CourseID:              courseID,
		TotalLessons:          int(totalLessons),
		CompletedLessons:      completedLessons,
		LessonProgressPercent: percent,
		AllQuizzesPassed:      allPassed,
	}, nil
}

// EnrollmentProgress is one enrollment with its freshly computed snapshot.
type EnrollmentProgress struct {
	EnrollmentID uint              `json:"enrollment_id"`
	CourseID     uint              `json:"course_id"`
	CourseTitle  string            `json:"course_title"`
	Status       string            `json:"status"`
	Progress     *ProgressSnapshot `json:"progress"`
}

// ListForUser returns each of the user's enrollments with a live snapshot.
func (s *ProgressService) ListForUser(userID uint) ([]EnrollmentProgress, error) {
	var enrollments []courseModels.Enrollment
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	result := make([]EnrollmentProgress, 0, len(enrollments))
	for _, e := range enrollments {
		var course courseModels.Course
		if err := s.db.First(&course, e.CourseID).Error; err != nil {
			return nil, err
		}

		snapshot, err := s.ComputeProgress(userID, e.CourseID)
		if err != nil {
			return nil, err
		}

		result = append(result, EnrollmentProgress{
			EnrollmentID: e.ID,
			CourseID:     e.CourseID,
			CourseTitle:  course.Title,
			Status:       e.Status,
			Progress:     snapshot,
		})
	}
	return result, nil
}
