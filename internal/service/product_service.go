package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/model"
	"github.com/Norwyx/supermarket-price-scraper/internal/repository"

	"gorm.io/gorm"
)

// ProductService defines business operations for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.ProductResponse, error)
	ListByCategory(ctx context.Context, categoryID uint, skip, limit int) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) (*dto.ProductResponse, error)
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository) ProductService {
	return &productService{repo: repo, categories: categories}
}

func mapProduct(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Variant:     p.Variant,
		SKU:         p.SKU,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// normalizeSKU trims and upper-cases an SKU; nil stays nil.
func normalizeSKU(sku *string) *string {
	if sku == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*sku))
	return &v
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.categories.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	sku := normalizeSKU(req.SKU)
	if sku != nil {
		existing, err := s.repo.FindBySKU(ctx, *sku)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateSKU
		}
	}

	product := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		Variant:     req.Variant,
		SKU:         sku,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return mapProduct(product), nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return mapProduct(product), nil
}

func (s *productService) List(ctx context.Context, skip, limit int) ([]dto.ProductResponse, error) {
	list, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapProduct(&list[i]))
	}
	return result, nil
}

func (s *productService) ListByCategory(ctx context.Context, categoryID uint, skip, limit int) ([]dto.ProductResponse, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	list, err := s.repo.ListByCategory(ctx, categoryID, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapProduct(&list[i]))
	}
	return result, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.SKU != nil {
		sku := normalizeSKU(req.SKU)
		if product.SKU == nil || *sku != *product.SKU {
			existing, err := s.repo.FindBySKU(ctx, *sku)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrDuplicateSKU
			}
		}
		product.SKU = sku
	}
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Variant != nil {
		product.Variant = req.Variant
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return mapProduct(product), nil
}

func (s *productService) Delete(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return mapProduct(product), nil
}
