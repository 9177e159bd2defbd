package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/model"
	"github.com/Norwyx/supermarket-price-scraper/internal/repository"

	"gorm.io/gorm"
)

// ScrapingJobService manages scraping run status records. The scrapers
// themselves run elsewhere; they report progress through this API.
type ScrapingJobService interface {
	Create(ctx context.Context, req dto.CreateScrapingJobRequest) (*dto.ScrapingJobResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ScrapingJobResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.ScrapingJobResponse, error)
	ListBySupermarket(ctx context.Context, supermarketID uint, skip, limit int) ([]dto.ScrapingJobResponse, error)
	ListRunning(ctx context.Context) ([]dto.ScrapingJobResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateScrapingJobRequest) (*dto.ScrapingJobResponse, error)
}

type scrapingJobService struct {
	repo         repository.ScrapingJobRepository
	supermarkets repository.SupermarketRepository
}

func NewScrapingJobService(repo repository.ScrapingJobRepository, supermarkets repository.SupermarketRepository) ScrapingJobService {
	return &scrapingJobService{repo: repo, supermarkets: supermarkets}
}

func mapScrapingJob(j *model.ScrapingJob) *dto.ScrapingJobResponse {
	return &dto.ScrapingJobResponse{
		ID:              j.ID,
		SupermarketID:   j.SupermarketID,
		Status:          string(j.Status),
		StartedAt:       j.StartedAt,
		CompletedAt:     j.CompletedAt,
		ProductsScraped: j.ProductsScraped,
		ErrorsCount:     j.ErrorsCount,
		ErrorMessage:    j.ErrorMessage,
	}
}

func trimErrorMessage(msg *string) *string {
	if msg == nil {
		return nil
	}
	v := strings.TrimSpace(*msg)
	return &v
}

func (s *scrapingJobService) Create(ctx context.Context, req dto.CreateScrapingJobRequest) (*dto.ScrapingJobResponse, error) {
	if _, err := s.supermarkets.FindByID(ctx, req.SupermarketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupermarketNotFound
		}
		return nil, err
	}

	status := model.JobPending
	if req.Status != "" {
		status = model.JobStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidJobStatus
		}
	}

	job := &model.ScrapingJob{
		SupermarketID:   req.SupermarketID,
		Status:          status,
		StartedAt:       time.Now().UTC(),
		ProductsScraped: req.ProductsScraped,
		ErrorsCount:     req.ErrorsCount,
		ErrorMessage:    trimErrorMessage(req.ErrorMessage),
	}
	if status.Terminal() {
		now := time.Now().UTC()
		job.CompletedAt = &now
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return mapScrapingJob(job), nil
}

func (s *scrapingJobService) GetByID(ctx context.Context, id uint) (*dto.ScrapingJobResponse, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return mapScrapingJob(job), nil
}

func (s *scrapingJobService) List(ctx context.Context, skip, limit int) ([]dto.ScrapingJobResponse, error) {
	list, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return mapScrapingJobs(list), nil
}

func (s *scrapingJobService) ListBySupermarket(ctx context.Context, supermarketID uint, skip, limit int) ([]dto.ScrapingJobResponse, error) {
	if _, err := s.supermarkets.FindByID(ctx, supermarketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupermarketNotFound
		}
		return nil, err
	}
	list, err := s.repo.ListBySupermarket(ctx, supermarketID, skip, limit)
	if err != nil {
		return nil, err
	}
	return mapScrapingJobs(list), nil
}

func (s *scrapingJobService) ListRunning(ctx context.Context) ([]dto.ScrapingJobResponse, error) {
	list, err := s.repo.ListRunning(ctx)
	if err != nil {
		return nil, err
	}
	return mapScrapingJobs(list), nil
}

// Update patches a job's progress. The first transition into a terminal
// status stamps CompletedAt; it is never overwritten afterwards, even
// if the status later changes between terminal values.
func (s *scrapingJobService) Update(ctx context.Context, id uint, req dto.UpdateScrapingJobRequest) (*dto.ScrapingJobResponse, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if req.Status != nil {
		status := model.JobStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidJobStatus
		}
		if status.Terminal() && job.CompletedAt == nil {
			now := time.Now().UTC()
			job.CompletedAt = &now
		}
		job.Status = status
	}
	if req.ProductsScraped != nil {
		job.ProductsScraped = *req.ProductsScraped
	}
	if req.ErrorsCount != nil {
		job.ErrorsCount = *req.ErrorsCount
	}
	if req.ErrorMessage != nil {
		job.ErrorMessage = trimErrorMessage(req.ErrorMessage)
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return mapScrapingJob(job), nil
}

func mapScrapingJobs(list []model.ScrapingJob) []dto.ScrapingJobResponse {
	result := make([]dto.ScrapingJobResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapScrapingJob(&list[i]))
	}
	return result
}
