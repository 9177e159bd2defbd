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

// SupermarketService defines business operations for supermarkets.
type SupermarketService interface {
	Create(ctx context.Context, req dto.CreateSupermarketRequest) (*dto.SupermarketResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SupermarketResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.SupermarketResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSupermarketRequest) (*dto.SupermarketResponse, error)
	Delete(ctx context.Context, id uint) (*dto.SupermarketResponse, error)
}

type supermarketService struct {
	repo repository.SupermarketRepository
}

func NewSupermarketService(repo repository.SupermarketRepository) SupermarketService {
	return &supermarketService{repo: repo}
}

func mapSupermarket(s *model.Supermarket) *dto.SupermarketResponse {
	return &dto.SupermarketResponse{
		ID:         s.ID,
		Name:       s.Name,
		WebsiteURL: s.WebsiteURL,
		LogoURL:    s.LogoURL,
		CreatedAt:  s.CreatedAt,
	}
}

func (s *supermarketService) Create(ctx context.Context, req dto.CreateSupermarketRequest) (*dto.SupermarketResponse, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	supermarket := &model.Supermarket{
		Name:       name,
		WebsiteURL: strings.TrimSpace(req.WebsiteURL),
		LogoURL:    req.LogoURL,
	}
	if err := s.repo.Create(ctx, supermarket); err != nil {
		return nil, err
	}
	return mapSupermarket(supermarket), nil
}

func (s *supermarketService) GetByID(ctx context.Context, id uint) (*dto.SupermarketResponse, error) {
	supermarket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupermarketNotFound
		}
		return nil, err
	}
	return mapSupermarket(supermarket), nil
}

func (s *supermarketService) List(ctx context.Context, skip, limit int) ([]dto.SupermarketResponse, error) {
	list, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupermarketResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapSupermarket(&list[i]))
	}
	return result, nil
}

func (s *supermarketService) Update(ctx context.Context, id uint, req dto.UpdateSupermarketRequest) (*dto.SupermarketResponse, error) {
	supermarket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupermarketNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != supermarket.Name {
			existing, err := s.repo.FindByName(ctx, name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrDuplicateName
			}
		}
		supermarket.Name = name
	}
	if req.WebsiteURL != nil {
		supermarket.WebsiteURL = strings.TrimSpace(*req.WebsiteURL)
	}
	if req.LogoURL != nil {
		supermarket.LogoURL = req.LogoURL
	}

	if err := s.repo.Update(ctx, supermarket); err != nil {
		return nil, err
	}
	return mapSupermarket(supermarket), nil
}

func (s *supermarketService) Delete(ctx context.Context, id uint) (*dto.SupermarketResponse, error) {
	supermarket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupermarketNotFound
		}
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return mapSupermarket(supermarket), nil
}
