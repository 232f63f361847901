// Package entity defines the persisted models for the settings feature.
package entity

import "time"

// Option is a persisted configuration value, edited by operators.
type Option struct {
	Name      string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"size:512;not null;default:''"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
