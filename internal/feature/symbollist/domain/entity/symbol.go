// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is one entry of the ticker banner.
// Code is written the way users enter it (TSXV:MUR, OTC:MURMF); each
// provider normalizes it on lookup.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:32;not null;uniqueIndex"`
	Title     string    `gorm:"size:255;not null;default:''"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// DefaultBanner is seeded into an empty symbol table.
var DefaultBanner = []Symbol{
	{Code: "TSXV:MUR", Title: "Murchison Minerals (TSXV)", IsActive: true, SortKey: 1},
	{Code: "OTC:MURMF", Title: "Murchison Minerals (OTC)", IsActive: true, SortKey: 2},
}
