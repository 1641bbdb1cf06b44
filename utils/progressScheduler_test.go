package utils

import (
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSchedulerDB(t *testing.T) *gorm.DB {
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

	previous := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() {
		database.Database = previous
		sqlDB.Close()
	})
	return db
}

func TestRollupEnrollmentStatuses(t *testing.T) {
	db := setupSchedulerDB(t)

	user := models.User{FullName: "alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(&user).Error)
	course := courseModels.Course{Title: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)

	first := courseModels.Lesson{CourseID: course.ID, Title: "One"}
	second := courseModels.Lesson{CourseID: course.ID, Title: "Two"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	enrollment := courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: courseModels.EnrollmentEnrolled}
	require.NoError(t, db.Create(&enrollment).Error)

	// One of two lessons done: rollup moves the enrollment to IN_PROGRESS.
	completion := courseModels.LessonCompletion{UserID: user.ID, LessonID: first.ID, CourseID: course.ID}
	require.NoError(t, db.Create(&completion).Error)

	RollupEnrollmentStatuses()

	var updated courseModels.Enrollment
	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, courseModels.EnrollmentInProgress, updated.Status)
	assert.Nil(t, updated.CompletedAt)

	// All lessons done: rollup marks it COMPLETED and stamps the time.
	completion = courseModels.LessonCompletion{UserID: user.ID, LessonID: second.ID, CourseID: course.ID}
	require.NoError(t, db.Create(&completion).Error)

	RollupEnrollmentStatuses()

	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, courseModels.EnrollmentCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
}

func TestStatusForSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		snapshot services.ProgressSnapshot
		want     string
	}{
		{"Untouched", services.ProgressSnapshot{TotalLessons: 3, AllQuizzesPassed: true}, courseModels.EnrollmentEnrolled},
		{"Started", services.ProgressSnapshot{TotalLessons: 3, CompletedLessons: 1, AllQuizzesPassed: true}, courseModels.EnrollmentInProgress},
		{"LessonsDoneQuizPending", services.ProgressSnapshot{TotalLessons: 3, CompletedLessons: 3}, courseModels.EnrollmentInProgress},
		{"Completed", services.ProgressSnapshot{TotalLessons: 3, CompletedLessons: 3, AllQuizzesPassed: true}, courseModels.EnrollmentCompleted},
		{"EmptyCourseStaysEnrolled", services.ProgressSnapshot{AllQuizzesPassed: true}, courseModels.EnrollmentEnrolled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForSnapshot(&tt.snapshot))
		})
	}
}
