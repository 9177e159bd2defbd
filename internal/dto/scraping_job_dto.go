package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateScrapingJobRequest struct {
	SupermarketID   uint    `json:"supermarket_id"   validate:"required,gt=0"`
	Status          string  `json:"status"           validate:"omitempty,oneof=pending in_progress completed failed"`
	ProductsScraped int     `json:"products_scraped" validate:"min=0"`
	ErrorsCount     int     `json:"errors_count"     validate:"min=0"`
	ErrorMessage    *string `json:"error_message"`
}

// UpdateScrapingJobRequest patches a job's progress. CompletedAt is not
// accepted from callers — it is latched server-side on the first
// terminal status transition.
type UpdateScrapingJobRequest struct {
	Status          *string `json:"status"           validate:"omitempty,oneof=pending in_progress completed failed"`
	ProductsScraped *int    `json:"products_scraped" validate:"omitempty,min=0"`
	ErrorsCount     *int    `json:"errors_count"     validate:"omitempty,min=0"`
	ErrorMessage    *string `json:"error_message"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ScrapingJobResponse struct {
	ID              uint       `json:"id"`
	SupermarketID   uint       `json:"supermarket_id"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	ProductsScraped int        `json:"products_scraped"`
	ErrorsCount     int        `json:"errors_count"`
	ErrorMessage    *string    `json:"error_message"`
}
