package course

import "gorm.io/gorm"

// Lesson represents a content unit within a course
type Lesson struct {
	gorm.Model
	CourseID          uint   `json:"course_id" gorm:"index;not null"`
	Title             string `json:"title"`
	Content           string `json:"content" gorm:"type:text"`
	VideoURL          string `json:"video_url"`
	OrderIndex        int    `json:"order_index" gorm:"default:0"`
	EstimatedDuration int    `json:"estimated_duration"` // minutes
	IsDeleted         bool   `gorm:"default:false"`
}

// LessonCompletion is the one-time marker that a user finished a lesson.
// The composite unique index is what makes mark-complete idempotent under
// concurrent requests: the first insert wins, the rest get a duplicate-key error.
type LessonCompletion struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_completion_user_lesson"`
	LessonID uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_completion_user_lesson"`
	CourseID uint `json:"course_id" gorm:"index;not null"`
}
