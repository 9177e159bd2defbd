package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name     string  `json:"name"      validate:"required,min=3,max=255"`
	Slug     string  `json:"slug"      validate:"required,max=255,slug"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=500"`
	ParentID *uint   `json:"parent_id" validate:"omitempty,gt=0"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"      validate:"omitempty,min=3,max=255"`
	Slug     *string `json:"slug"      validate:"omitempty,max=255,slug"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=500"`
	ParentID *uint   `json:"parent_id" validate:"omitempty,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ImageURL  *string   `json:"image_url"`
	ParentID  *uint     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}
