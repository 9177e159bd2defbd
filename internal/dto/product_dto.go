package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=500"`
	Variant     *string `json:"variant"     validate:"omitempty,max=500"`
	SKU         *string `json:"sku"         validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,max=500"`
	CategoryID  uint    `json:"category_id" validate:"required,gt=0"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2,max=500"`
	Variant     *string `json:"variant"     validate:"omitempty,max=500"`
	SKU         *string `json:"sku"         validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,max=500"`
	CategoryID  *uint   `json:"category_id" validate:"omitempty,gt=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type PageFilter struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Variant     *string   `json:"variant"`
	SKU         *string   `json:"sku"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CategoryID  uint      `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
