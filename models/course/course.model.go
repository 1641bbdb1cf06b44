package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description" gorm:"type:text"`
	Category         string `json:"category"`
	Difficulty       string `json:"difficulty"`
	ThumbnailURL     string `json:"thumbnail_url"`
	CreatedBy        uint   `json:"created_by"`
	IsPublished      bool   `json:"is_published" gorm:"default:false"`
	IsDeleted        bool   `gorm:"default:false"`
}
