package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSupermarketRequest struct {
	Name       string  `json:"name"        validate:"required,min=2,max=255"`
	WebsiteURL string  `json:"website_url" validate:"required,max=500,httpurl"`
	LogoURL    *string `json:"logo_url"    validate:"omitempty,max=500,httpurl"`
}

type UpdateSupermarketRequest struct {
	Name       *string `json:"name"        validate:"omitempty,min=2,max=255"`
	WebsiteURL *string `json:"website_url" validate:"omitempty,max=500,httpurl"`
	LogoURL    *string `json:"logo_url"    validate:"omitempty,max=500,httpurl"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupermarketResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	WebsiteURL string    `json:"website_url"`
	LogoURL    *string   `json:"logo_url"`
	CreatedAt  time.Time `json:"created_at"`
}
