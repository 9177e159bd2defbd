package repository

import (
	"context"

	"github.com/Norwyx/supermarket-price-scraper/internal/model"

	"gorm.io/gorm"
)

type ScrapingJobRepository interface {
	Create(ctx context.Context, j *model.ScrapingJob) error
	FindByID(ctx context.Context, id uint) (*model.ScrapingJob, error)
	List(ctx context.Context, skip, limit int) ([]model.ScrapingJob, error)
	ListBySupermarket(ctx context.Context, supermarketID uint, skip, limit int) ([]model.ScrapingJob, error)
	ListRunning(ctx context.Context) ([]model.ScrapingJob, error)
	Update(ctx context.Context, j *model.ScrapingJob) error
}

type scrapingJobRepo struct{ db *gorm.DB }

func NewScrapingJobRepository(db *gorm.DB) ScrapingJobRepository {
	return &scrapingJobRepo{db: db}
}

func (r *scrapingJobRepo) Create(ctx context.Context, j *model.ScrapingJob) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *scrapingJobRepo) FindByID(ctx context.Context, id uint) (*model.ScrapingJob, error) {
	var j model.ScrapingJob
	err := r.db.WithContext(ctx).First(&j, id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *scrapingJobRepo) List(ctx context.Context, skip, limit int) ([]model.ScrapingJob, error) {
	var jobs []model.ScrapingJob
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Offset(skip).
		Limit(clampLimit(limit)).
		Find(&jobs).Error
	return jobs, err
}

func (r *scrapingJobRepo) ListBySupermarket(ctx context.Context, supermarketID uint, skip, limit int) ([]model.ScrapingJob, error) {
	var jobs []model.ScrapingJob
	err := r.db.WithContext(ctx).
		Where("supermarket_id = ?", supermarketID).
		Order("started_at DESC").
		Offset(skip).
		Limit(clampLimit(limit)).
		Find(&jobs).Error
	return jobs, err
}

func (r *scrapingJobRepo) ListRunning(ctx context.Context) ([]model.ScrapingJob, error) {
	var jobs []model.ScrapingJob
	err := r.db.WithContext(ctx).
		Where("status = ?", model.JobInProgress).
		Order("started_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *scrapingJobRepo) Update(ctx context.Context, j *model.ScrapingJob) error {
	return r.db.WithContext(ctx).Save(j).Error
}
