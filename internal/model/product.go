package model

import (
	"time"
)

// Product is a tracked item. A product belongs to exactly one category;
// its price observations live in the prices table, one row per scrape.
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"index;size:500;not null"`
	Variant     *string `gorm:"size:500"`
	SKU         *string `gorm:"uniqueIndex;size:100"`
	Description *string
	ImageURL    *string `gorm:"size:500"`
	CategoryID  uint    `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category Category `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string { return "products" }
