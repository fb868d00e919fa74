package models

import "gorm.io/gorm"

// Subject is a named category used to populate course subject choices.
// Seed data, rarely mutated after initialization.
type Subject struct {
	gorm.Model
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
}
