package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is one scored submission of answers to a quiz. Attempts are
// append-only: repeats are a legitimate use case and history is never rewritten.
// Score may later be corrected by an instructor; pass/fail is always derived
// live from Score against the quiz's current passing score, never stored.
type QuizAttempt struct {
	gorm.Model
	QuizID  uint           `json:"quiz_id" gorm:"index;not null"`
	UserID  uint           `json:"user_id" gorm:"index;not null"`
	Score   int            `json:"score"`
	Answers datatypes.JSON `json:"answers"` // submitted answer set, kept for instructor review
}
