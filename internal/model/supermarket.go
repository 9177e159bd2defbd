package model

import (
	"time"
)

// Supermarket represents a competitor supermarket whose prices are tracked.
type Supermarket struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"uniqueIndex;size:255;not null"`
	WebsiteURL string  `gorm:"size:500;not null"`
	LogoURL    *string `gorm:"size:500"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Supermarket) TableName() string { return "supermarkets" }
