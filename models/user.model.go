package models

import "gorm.io/gorm"

// User represents an account known to the identity provider. The engine only
// reads users for existence checks; account management lives elsewhere.
type User struct {
	gorm.Model
	FullName  string `json:"full_name"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	Role      string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	IsDeleted bool   `gorm:"default:false"`
}
