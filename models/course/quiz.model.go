package course

import "gorm.io/gorm"

// QuestionType tags how a question is scored. Exactly one scoring rule exists
// per tag; anything else is rejected before any write.
type QuestionType string

const (
	QuestionMCQ        QuestionType = "MCQ"        // single correct option
	QuestionTrueFalse  QuestionType = "TF"         // single correct option
	QuestionSubjective QuestionType = "SUBJECTIVE" // manual grading, auto-scores zero
)

// Quiz represents a scored assessment attached to a course, optionally to a lesson
type Quiz struct {
	gorm.Model
	Title        string `json:"title"`
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	LessonID     *uint  `json:"lesson_id" gorm:"index"`
	PassingScore int    `json:"passing_score" gorm:"default:0"` // minimum score to pass
	TimeLimit    int    `json:"time_limit"`                     // minutes, 0 = unlimited
	IsDeleted    bool   `gorm:"default:false"`

	Questions []Question `json:"questions,omitempty"`
}

// Question belongs to a quiz and carries its answer key
type Question struct {
	gorm.Model
	QuizID uint         `json:"quiz_id" gorm:"index;not null"`
	Text   string       `json:"text" gorm:"type:text"`
	Type   QuestionType `json:"type" gorm:"default:'MCQ'"`
	Points int          `json:"points" gorm:"default:1"`

	Answers []Answer `json:"answers,omitempty"`
}

// Answer is one option of an objective question; exactly one per question is correct
type Answer struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
