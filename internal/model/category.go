package model

import (
	"time"
)

// Category classifies tracked products. Categories form an optional
// hierarchy through ParentID (null for top-level categories).
type Category struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"index;size:255;not null"`
	Slug      string  `gorm:"uniqueIndex;size:255;not null"`
	ImageURL  *string `gorm:"size:500"`
	ParentID  *uint   `gorm:"index"`
	CreatedAt time.Time

	Parent *Category `gorm:"foreignKey:ParentID"`
}

func (Category) TableName() string { return "categories" }
