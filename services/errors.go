package services

import (
	"errors"
	"fmt"
)

// NotFound-class errors: the referenced entity is absent. Surfaced verbatim,
// never retried.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrAttemptNotFound = errors.New("quiz attempt not found")
)

// Conflict-class errors: a uniqueness invariant would be violated. Safe for
// the caller to treat as "already in desired state".
var (
	ErrAlreadyEnrolled  = errors.New("user already enrolled in this course")
	ErrAlreadyCompleted = errors.New("lesson already completed")
	ErrAlreadyIssued    = errors.New("certificate already issued")
)

// Precondition-class errors: an eligibility gate failed.
var (
	ErrNotEnrolled       = errors.New("user not enrolled in this course")
	ErrLessonsIncomplete = errors.New("not all lessons completed")
	ErrQuizzesNotPassed  = errors.New("not all quizzes passed")
)

// Validation-class errors: rejected before any write.
var (
	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrEmptyAnswer         = errors.New("answer has no selected option and no text")
)

// EligibilityError wraps a precondition failure together with the progress
// snapshot that triggered it, so callers can show which gate failed and the
// current counts.
type EligibilityError struct {
	Reason   error
	Snapshot *ProgressSnapshot
}

func (e *EligibilityError) Error() string {
	if e.Snapshot == nil {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s (%d/%d lessons, quizzes passed: %t)",
		e.Reason, e.Snapshot.CompletedLessons, e.Snapshot.TotalLessons, e.Snapshot.AllQuizzesPassed)
}

func (e *EligibilityError) Unwrap() error { return e.Reason }
