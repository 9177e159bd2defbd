package repository

import (
	"context"

	"github.com/Norwyx/supermarket-price-scraper/internal/model"

	"gorm.io/gorm"
)

// SupermarketRepository defines the data access contract for supermarkets.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type SupermarketRepository interface {
	Create(ctx context.Context, s *model.Supermarket) error
	FindByID(ctx context.Context, id uint) (*model.Supermarket, error)
	FindByName(ctx context.Context, name string) (*model.Supermarket, error)
	List(ctx context.Context, skip, limit int) ([]model.Supermarket, error)
	Update(ctx context.Context, s *model.Supermarket) error
	Delete(ctx context.Context, id uint) error
}

type supermarketRepo struct{ db *gorm.DB }

func NewSupermarketRepository(db *gorm.DB) SupermarketRepository {
	return &supermarketRepo{db: db}
}

func (r *supermarketRepo) Create(ctx context.Context, s *model.Supermarket) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supermarketRepo) FindByID(ctx context.Context, id uint) (*model.Supermarket, error) {
	var s model.Supermarket
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supermarketRepo) FindByName(ctx context.Context, name string) (*model.Supermarket, error) {
	var s model.Supermarket
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supermarketRepo) List(ctx context.Context, skip, limit int) ([]model.Supermarket, error) {
	var supermarkets []model.Supermarket
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(skip).
		Limit(clampLimit(limit)).
		Find(&supermarkets).Error
	return supermarkets, err
}

func (r *supermarketRepo) Update(ctx context.Context, s *model.Supermarket) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supermarketRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Supermarket{}, id).Error
}
