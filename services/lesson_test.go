package services

import (
	"sync"
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonService_MarkComplete(t *testing.T) {
	db := newTestDB(t)
	service := NewLessonService(db)
	user := seedUser(t, db, "alice")
	course := seedCourse(t, db, "Go Basics")
	lesson := seedLesson(t, db, course.ID, "Intro")

	t.Run("NotEnrolled", func(t *testing.T) {
		_, err := service.MarkComplete(user.ID, lesson.ID)
		assert.ErrorIs(t, err, ErrNotEnrolled)
	})

	enroll(t, db, user.ID, course.ID)

	t.Run("Success", func(t *testing.T) {
		completion, err := service.MarkComplete(user.ID, lesson.ID)
		require.NoError(t, err)
		assert.Equal(t, lesson.ID, completion.LessonID)
		assert.Equal(t, course.ID, completion.CourseID)
	})

	t.Run("AlreadyCompleted", func(t *testing.T) {
		_, err := service.MarkComplete(user.ID, lesson.ID)
		require.ErrorIs(t, err, ErrAlreadyCompleted)

		var count int64
		require.NoError(t, db.Model(&courseModels.LessonCompletion{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("LessonNotFound", func(t *testing.T) {
		_, err := service.MarkComplete(user.ID, 9999)
		assert.ErrorIs(t, err, ErrLessonNotFound)
	})
}

// Under concurrent identical requests exactly one insert succeeds, the rest
// observe ErrAlreadyCompleted, and only a single row exists afterwards.
func TestLessonService_ConcurrentMarkComplete(t *testing.T) {
	db := newTestDB(t)
	service := NewLessonService(db)
	user := seedUser(t, db, "bob")
	course := seedCourse(t, db, "Go Basics")
	lesson := seedLesson(t, db, course.ID, "Intro")
	enroll(t, db, user.ID, course.ID)

	const workers = 8
	results := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = service.MarkComplete(user.ID, lesson.ID)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyCompleted)
		}
	}
	assert.Equal(t, 1, successes)

	var count int64
	require.NoError(t, db.Model(&courseModels.LessonCompletion{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLessonService_CountCompleted(t *testing.T) {
	db := newTestDB(t)
	service := NewLessonService(db)
	user := seedUser(t, db, "carol")
	course := seedCourse(t, db, "Go Basics")
	other := seedCourse(t, db, "Go Advanced")

	first := seedLesson(t, db, course.ID, "One")
	second := seedLesson(t, db, course.ID, "Two")
	seedLesson(t, db, course.ID, "Three")
	foreign := seedLesson(t, db, other.ID, "Other")

	enroll(t, db, user.ID, course.ID)
	enroll(t, db, user.ID, other.ID)

	count, err := service.CountCompleted(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for _, lesson := range []uint{first.ID, second.ID, foreign.ID} {
		_, err := service.MarkComplete(user.ID, lesson)
		require.NoError(t, err)
	}

	// Completions in another course do not leak into this count.
	count, err = service.CountCompleted(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
