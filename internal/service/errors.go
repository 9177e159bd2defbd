package service

import "errors"

// Sentinel errors for the request boundary. Handlers classify them via
// IsNotFound / IsConflict and translate to HTTP status codes; anything
// else bubbles up as a 500.
var (
	ErrSupermarketNotFound = errors.New("supermarket not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrPriceNotFound       = errors.New("price not found")
	ErrJobNotFound         = errors.New("scraping job not found")

	// ErrNoRecentPrices means the product exists but has no observation
	// inside the lookback window. Same status class as not-found,
	// distinct message.
	ErrNoRecentPrices = errors.New("no recent prices found for this product")

	ErrDuplicateName = errors.New("a supermarket with that name already exists")
	ErrDuplicateSlug = errors.New("a category with that slug already exists")
	ErrDuplicateSKU  = errors.New("a product with that SKU already exists")

	// ErrInvalidJobStatus guards the status enum below the request
	// layer, for callers that bypass DTO validation.
	ErrInvalidJobStatus = errors.New("invalid scraping job status")
)

// IsNotFound reports whether err maps to a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSupermarketNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrPriceNotFound) ||
		errors.Is(err, ErrJobNotFound) ||
		errors.Is(err, ErrNoRecentPrices)
}

// IsConflict reports whether err maps to a 400 response.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrDuplicateSlug) ||
		errors.Is(err, ErrDuplicateSKU) ||
		errors.Is(err, ErrInvalidJobStatus)
}
