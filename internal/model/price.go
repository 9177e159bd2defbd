package model

import (
	"time"
)

// Price is one observed price of a product at a supermarket.
// Rows are append-only — never updated or deleted, so the table is an
// accurate history. At most one row may exist per
// (product, supermarket, scraped_at) triple.
type Price struct {
	ID            uint     `gorm:"primaryKey"`
	ProductID     uint     `gorm:"index;not null;uniqueIndex:uix_price_composite,priority:1"`
	SupermarketID uint     `gorm:"index;not null;uniqueIndex:uix_price_composite,priority:2"`
	Price         float64  `gorm:"index;not null;check:price >= 0"`
	OriginalPrice *float64 `gorm:"check:original_price >= 0"`
	URL           *string  `gorm:"size:500"`
	ScrapedAt     time.Time `gorm:"index;not null;uniqueIndex:uix_price_composite,priority:3"`
	CreatedAt     time.Time

	Product     Product     `gorm:"foreignKey:ProductID"`
	Supermarket Supermarket `gorm:"foreignKey:SupermarketID"`
}

func (Price) TableName() string { return "prices" }
