package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_ComputeProgress(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)
	lessons := NewLessonService(db)
	user := seedUser(t, db, "alice")

	t.Run("CourseNotFound", func(t *testing.T) {
		_, err := service.ComputeProgress(user.ID, 9999)
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("EmptyCourse", func(t *testing.T) {
		course := seedCourse(t, db, "Empty")
		enroll(t, db, user.ID, course.ID)

		snapshot, err := service.ComputeProgress(user.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.TotalLessons)
		assert.Equal(t, 0, snapshot.LessonProgressPercent)
		// No quizzes means vacuously passed, even with zero attempts.
		assert.True(t, snapshot.AllQuizzesPassed)
	})

	t.Run("PercentTruncates", func(t *testing.T) {
		course := seedCourse(t, db, "Thirds")
		first := seedLesson(t, db, course.ID, "One")
		seedLesson(t, db, course.ID, "Two")
		seedLesson(t, db, course.ID, "Three")
		enroll(t, db, user.ID, course.ID)

		_, err := lessons.MarkComplete(user.ID, first.ID)
		require.NoError(t, err)

		snapshot, err := service.ComputeProgress(user.ID, course.ID)
		require.NoError(t, err)
		// 1/3 truncates to 33, never rounds to 34.
		assert.Equal(t, 33, snapshot.LessonProgressPercent)
	})

	t.Run("ProgressMonotonicity", func(t *testing.T) {
		course := seedCourse(t, db, "Steps")
		var lessonIDs []uint
		for i := 0; i < 7; i++ {
			lessonIDs = append(lessonIDs, seedLesson(t, db, course.ID, "L").ID)
		}
		enroll(t, db, user.ID, course.ID)

		previous := 0
		for _, id := range lessonIDs {
			_, err := lessons.MarkComplete(user.ID, id)
			require.NoError(t, err)

			snapshot, err := service.ComputeProgress(user.ID, course.ID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, snapshot.LessonProgressPercent, previous)
			previous = snapshot.LessonProgressPercent
		}
		assert.Equal(t, 100, previous)
	})
}

// The concrete end-to-end scenario: 4 lessons and 1 quiz with passing score
// 60; 3 lessons done and a quiz score of 80 yields 75% with quizzes passed.
func TestProgressService_Scenario(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)
	lessons := NewLessonService(db)

	user := seedUser(t, db, "bob")
	course := seedCourse(t, db, "Go Basics")
	var lessonIDs []uint
	for i := 0; i < 4; i++ {
		lessonIDs = append(lessonIDs, seedLesson(t, db, course.ID, "L").ID)
	}
	quiz := courseModels.Quiz{Title: "Final", CourseID: course.ID, PassingScore: 60}
	require.NoError(t, db.Create(&quiz).Error)

	enroll(t, db, user.ID, course.ID)

	for _, id := range lessonIDs[:3] {
		_, err := lessons.MarkComplete(user.ID, id)
		require.NoError(t, err)
	}
	attempt := courseModels.QuizAttempt{QuizID: quiz.ID, UserID: user.ID, Score: 80}
	require.NoError(t, db.Create(&attempt).Error)

	snapshot, err := service.ComputeProgress(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, snapshot.TotalLessons)
	assert.Equal(t, 3, snapshot.CompletedLessons)
	assert.Equal(t, 75, snapshot.LessonProgressPercent)
	assert.True(t, snapshot.AllQuizzesPassed)
}

func TestProgressService_LessonScopedQuizCounts(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	user := seedUser(t, db, "carol")
	course := seedCourse(t, db, "Go Basics")
	lesson := seedLesson(t, db, course.ID, "Intro")
	enroll(t, db, user.ID, course.ID)

	// A quiz attached to a lesson still counts toward its parent course.
	quiz := courseModels.Quiz{Title: "Lesson quiz", CourseID: course.ID, LessonID: uintPtr(lesson.ID), PassingScore: 1}
	require.NoError(t, db.Create(&quiz).Error)

	snapshot, err := service.ComputeProgress(user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, snapshot.AllQuizzesPassed)

	attempt := courseModels.QuizAttempt{QuizID: quiz.ID, UserID: user.ID, Score: 1}
	require.NoError(t, db.Create(&attempt).Error)

	snapshot, err = service.ComputeProgress(user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, snapshot.AllQuizzesPassed)
}

func TestProgressService_ListForUser(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)
	lessons := NewLessonService(db)

	user := seedUser(t, db, "dave")
	course := seedCourse(t, db, "Go Basics")
	lesson := seedLesson(t, db, course.ID, "Intro")
	seedLesson(t, db, course.ID, "More")
	enroll(t, db, user.ID, course.ID)

	_, err := lessons.MarkComplete(user.ID, lesson.ID)
	require.NoError(t, err)

	list, err := service.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Basics", list[0].CourseTitle)
	assert.Equal(t, 50, list[0].Progress.LessonProgressPercent)
}
