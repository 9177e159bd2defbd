package repository

import (
	"context"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/model"

	"gorm.io/gorm"
)

// PriceRepository is the consumed contract of the price comparator plus
// the plain observation queries. The prices table is append-only:
// there is no Update or Delete.
type PriceRepository interface {
	Create(ctx context.Context, p *model.Price) error
	FindByID(ctx context.Context, id uint) (*model.Price, error)

	// ListByProductSince returns all observations of a product with
	// scraped_at >= since, ordered newest first. Callers doing the
	// latest-per-supermarket reduction rely on this ordering.
	ListByProductSince(ctx context.Context, productID uint, since time.Time) ([]model.Price, error)

	// ListRecent returns observations across all products with
	// scraped_at >= since, newest first, paginated.
	ListRecent(ctx context.Context, since time.Time, skip, limit int) ([]model.Price, error)
}

type priceRepo struct{ db *gorm.DB }

func NewPriceRepository(db *gorm.DB) PriceRepository {
	return &priceRepo{db: db}
}

func (r *priceRepo) Create(ctx context.Context, p *model.Price) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *priceRepo) FindByID(ctx context.Context, id uint) (*model.Price, error) {
	var p model.Price
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *priceRepo) ListByProductSince(ctx context.Context, productID uint, since time.Time) ([]model.Price, error) {
	var prices []model.Price
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND scraped_at >= ?", productID, since).
		Order("scraped_at DESC").
		Find(&prices).Error
	return prices, err
}

func (r *priceRepo) ListRecent(ctx context.Context, since time.Time, skip, limit int) ([]model.Price, error) {
	var prices []model.Price
	err := r.db.WithContext(ctx).
		Where("scraped_at >= ?", since).
		Order("scraped_at DESC").
		Offset(skip).
		Limit(clampLimit(limit)).
		Find(&prices).Error
	return prices, err
}
