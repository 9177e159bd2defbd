package service

import (
	"context"
	"errors"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/model"
	"github.com/Norwyx/supermarket-price-scraper/internal/repository"

	"gorm.io/gorm"
)

// PriceService records price observations and serves the raw history
// queries. Comparison lives in ComparisonService.
type PriceService interface {
	Create(ctx context.Context, req dto.CreatePriceRequest) (*dto.PriceResponse, error)

	// History returns a product's observations within the last `days`
	// days, newest first. Returns ErrProductNotFound for unknown ids.
	History(ctx context.Context, productID uint, days int) ([]dto.PriceResponse, error)

	// Recent returns observations across all products within the last
	// `hours` hours, newest first, paginated.
	Recent(ctx context.Context, hours, skip, limit int) ([]dto.PriceResponse, error)
}

type priceService struct {
	prices       repository.PriceRepository
	products     repository.ProductRepository
	supermarkets repository.SupermarketRepository
}

func NewPriceService(
	prices repository.PriceRepository,
	products repository.ProductRepository,
	supermarkets repository.SupermarketRepository,
) PriceService {
	return &priceService{prices: prices, products: products, supermarkets: supermarkets}
}

func mapPrice(p *model.Price) *dto.PriceResponse {
	return &dto.PriceResponse{
		ID:            p.ID,
		ProductID:     p.ProductID,
		SupermarketID: p.SupermarketID,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		URL:           p.URL,
		ScrapedAt:     p.ScrapedAt,
		CreatedAt:     p.CreatedAt,
	}
}

func (s *priceService) Create(ctx context.Context, req dto.CreatePriceRequest) (*dto.PriceResponse, error) {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if _, err := s.supermarkets.FindByID(ctx, req.SupermarketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupermarketNotFound
		}
		return nil, err
	}

	scrapedAt := time.Now().UTC()
	if req.ScrapedAt != nil {
		scrapedAt = *req.ScrapedAt
	}

	price := &model.Price{
		ProductID:     req.ProductID,
		SupermarketID: req.SupermarketID,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		URL:           req.URL,
		ScrapedAt:     scrapedAt,
	}
	if err := s.prices.Create(ctx, price); err != nil {
		return nil, err
	}
	return mapPrice(price), nil
}

func (s *priceService) History(ctx context.Context, productID uint, days int) ([]dto.PriceResponse, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	list, err := s.prices.ListByProductSince(ctx, productID, since)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PriceResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapPrice(&list[i]))
	}
	return result, nil
}

func (s *priceService) Recent(ctx context.Context, hours, skip, limit int) ([]dto.PriceResponse, error) {
	if hours < 1 {
		hours = 24
	}
	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	list, err := s.prices.ListRecent(ctx, since, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PriceResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapPrice(&list[i]))
	}
	return result, nil
}
