package services

import (
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive and stable across
// concurrent goroutines in the race tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := models.User{FullName: name, Email: name + "@example.com", Role: "STUDENT"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCourse(t *testing.T, db *gorm.DB, title string) *courseModels.Course {
	t.Helper()
	course := courseModels.Course{Title: title, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func seedLesson(t *testing.T, db *gorm.DB, courseID uint, title string) *courseModels.Lesson {
	t.Helper()
	lesson := courseModels.Lesson{CourseID: courseID, Title: title}
	require.NoError(t, db.Create(&lesson).Error)
	return &lesson
}

// seedQuiz creates a quiz with MCQ questions. Each question gets one correct
// and two wrong options; the returned maps give the correct and one wrong
// option id per question.
func seedQuiz(t *testing.T, db *gorm.DB, courseID uint, passingScore, questionCount int) (*courseModels.Quiz, []courseModels.Question, map[uint]uint, map[uint]uint) {
	t.Helper()

	quiz := courseModels.Quiz{Title: "Quiz", CourseID: courseID, PassingScore: passingScore}
	require.NoError(t, db.Create(&quiz).Error)

	questions := make([]courseModels.Question, 0, questionCount)
	correct := make(map[uint]uint)
	wrong := make(map[uint]uint)

	for i := 0; i < questionCount; i++ {
		question := courseModels.Question{QuizID: quiz.ID, Text: "Q", Type: courseModels.QuestionMCQ, Points: 1}
		require.NoError(t, db.Create(&question).Error)

		right := courseModels.Answer{QuestionID: question.ID, Text: "right", IsCorrect: true}
		require.NoError(t, db.Create(&right).Error)
		for j := 0; j < 2; j++ {
			bad := courseModels.Answer{QuestionID: question.ID, Text: "wrong"}
			require.NoError(t, db.Create(&bad).Error)
			wrong[question.ID] = bad.ID
		}

		correct[question.ID] = right.ID
		questions = append(questions, question)
	}

	return &quiz, questions, correct, wrong
}

func enroll(t *testing.T, db *gorm.DB, userID, courseID uint) {
	t.Helper()
	_, err := NewEnrollmentService(db).Enroll(userID, courseID)
	require.NoError(t, err)
}

func uintPtr(v uint) *uint { return &v }
