package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	courseModels "lms/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizService scores submitted attempts and keeps the full attempt history.
type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// SubmittedAnswer is one answer of a quiz submission. Objective questions
// carry a selected option id, subjective ones the free text.
type SubmittedAnswer struct {
	QuestionID       uint   `json:"question_id"`
	SelectedAnswerID *uint  `json:"selected_answer_id"`
	FreeText         string `json:"free_text"`
}

// ScoreResult is the outcome of a single submission.
type ScoreResult struct {
	AttemptID uint `json:"attempt_id"`
	Score     int  `json:"score"`
	Passed    bool `json:"passed"`
}

// Submit scores the answers against the quiz's answer key and persists a new
// attempt unconditionally; repeat attempts are a legitimate use case.
//
// Scoring: one point per objective question whose selected option is the
// designated correct answer. Subjective questions require manual grading and
// contribute zero here. Answers referencing questions outside the quiz are
// skipped silently. Validation failures reject the whole submission before
// any write.
func (s *QuizService) Submit(quizID, userID uint, answers []SubmittedAnswer) (*ScoreResult, error) {
	var quiz courseModels.Quiz
	err := s.db.Preload("Questions.Answers").
		Where("id = ? AND is_deleted = ?", quizID, false).
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	questions := make(map[uint]*courseModels.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		questions[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	// Validate everything before scoring so a bad submission leaves no record.
	for _, a := range answers {
		if a.SelectedAnswerID == nil && strings.TrimSpace(a.FreeText) == "" {
			return nil, fmt.Errorf("question %d: %w", a.QuestionID, ErrEmptyAnswer)
		}
		q, ok := questions[a.QuestionID]
		if !ok {
			continue // not part of this quiz
		}
		switch q.Type {
		case courseModels.QuestionMCQ, courseModels.QuestionTrueFalse, courseModels.QuestionSubjective:
		default:
			return nil, fmt.Errorf("question %d: %w: %q", q.ID, ErrUnknownQuestionType, q.Type)
		}
	}

	score := 0
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			continue
		}
		switch q.Type {
		case courseModels.QuestionMCQ, courseModels.QuestionTrueFalse:
			if a.SelectedAnswerID == nil {
				continue
			}
			for _, opt := range q.Answers {
				if opt.ID == *a.SelectedAnswerID && opt.IsCorrect {
					score++
					break
				}
			}
		case courseModels.QuestionSubjective:
			// manual grading, auto-scores zero
		}
	}

	payload, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	attempt := courseModels.QuizAttempt{
		QuizID:  quizID,
		UserID:  userID,
		Score:   score,
		Answers: datatypes.JSON(payload),
	}

	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	return &ScoreResult{
		AttemptID: attempt.ID,
		Score:     score,
		Passed:    score >= quiz.PassingScore,
	}, nil
}

// HasPassed reports whether any attempt of the user meets the quiz's current
// passing score. Best attempt counts forever: a later failed retry never
// revokes an earned pass.
func (s *QuizService) HasPassed(quizID, userID uint) (bool, error) {
	var quiz courseModels.Quiz
	if err := s.db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrQuizNotFound
		}
		return false, err
	}

	var count int64
	err := s.db.Model(&courseModels.QuizAttempt{}).
		Where("quiz_id = ? AND user_id = ? AND score >= ?", quizID, userID, quiz.PassingScore).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// OverrideScore is the administrative correction path. Only the stored score
// changes; pass/fail is always derived live from score vs. passing score.
func (s *QuizService) OverrideScore(attemptID uint, newScore int) error {
	var attempt courseModels.QuizAttempt
	if err := s.db.First(&attempt, attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttemptNotFound
		}
		return err
	}

	return s.db.Model(&attempt).Update("score", newScore).Error
}

// QuizSubmission is one attempt row with the submitting user's details.
type QuizSubmission struct {
	AttemptID uint   `json:"attempt_id"`
	UserID    uint   `json:"user_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Score     int    `json:"score"`
}

// ListSubmissions returns all attempts for a quiz, for instructor review.
func (s *QuizService) ListSubmissions(quizID uint) ([]QuizSubmission, error) {
	var quiz courseModels.Quiz
	if err := s.db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	var submissions []QuizSubmission
	err := s.db.Model(&courseModels.QuizAttempt{}).
		Select("quiz_attempts.id as attempt_id, quiz_attempts.user_id, users.full_name, users.email, quiz_attempts.score").
		Joins("JOIN users ON users.id = quiz_attempts.user_id").
		Where("quiz_attempts.quiz_id = ?", quizID).
		Scan(&submissions).Error
	return submissions, err
}

// GetAttempt returns one attempt including its stored answer payload.
func (s *QuizService) GetAttempt(attemptID uint) (*courseModels.QuizAttempt, error) {
	var attempt courseModels.QuizAttempt
	if err := s.db.First(&attempt, attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	return &attempt, nil
}
