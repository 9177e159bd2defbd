package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePriceRequest struct {
	ProductID     uint       `json:"product_id"     validate:"required,gt=0"`
	SupermarketID uint       `json:"supermarket_id" validate:"required,gt=0"`
	Price         float64    `json:"price"          validate:"min=0"`
	OriginalPrice *float64   `json:"original_price" validate:"omitempty,min=0"`
	URL           *string    `json:"url"            validate:"omitempty,max=500,httpurl"`
	ScrapedAt     *time.Time `json:"scraped_at"`
}

// CompareBulkRequest carries product ids for batch comparison.
// Capped at 50 per call; larger batches are rejected before any
// comparison runs.
type CompareBulkRequest struct {
	ProductIDs []uint `json:"product_ids" validate:"required,min=1,max=50,dive,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PriceResponse struct {
	ID            uint      `json:"id"`
	ProductID     uint      `json:"product_id"`
	SupermarketID uint      `json:"supermarket_id"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	URL           *string   `json:"url"`
	ScrapedAt     time.Time `json:"scraped_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// PriceComparisonItem is one supermarket's latest observation within
// the lookback window.
type PriceComparisonItem struct {
	SupermarketID   uint      `json:"supermarket_id"`
	SupermarketName string    `json:"supermarket_name"`
	Price           float64   `json:"price"`
	URL             *string   `json:"url"`
	IsCheapest      bool      `json:"is_cheapest"`
	ScrapedAt       time.Time `json:"scraped_at"`
}

// PriceComparison is the aggregation result for one product.
// Prices is sorted ascending by price.
type PriceComparison struct {
	ProductID          uint                  `json:"product_id"`
	ProductName        string                `json:"product_name"`
	Prices             []PriceComparisonItem `json:"prices"`
	CheapestPrice      float64               `json:"cheapest_price"`
	MostExpensivePrice float64               `json:"most_expensive_price"`
	PriceDifference    float64               `json:"price_difference"`
	SavingsPercentage  float64               `json:"savings_percentage"`
}
