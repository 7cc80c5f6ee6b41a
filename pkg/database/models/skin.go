package models

import "time"

// SkinName is one localized skin name.
// A language is always replaced as a whole, so rows never mix two runs.
type SkinName struct {
	Language  string `gorm:"primaryKey;autoIncrement:false;size:8"`
	SkinID    string `gorm:"primaryKey;autoIncrement:false;size:16"`
	Name      string `gorm:"not null"`
	UpdatedAt time.Time
}
