package model

import (
	"time"
)

// JobStatus is the lifecycle state of a scraping run.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether the status is a final state.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// Valid reports whether the status is one of the four known values.
func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobInProgress, JobCompleted, JobFailed:
		return true
	}
	return false
}

// ScrapingJob is a status record for an external price-collection run.
// The scraper itself runs outside this service and reports progress
// through the jobs API. CompletedAt is set once, on the first
// transition into a terminal status, and never overwritten.
type ScrapingJob struct {
	ID              uint      `gorm:"primaryKey"`
	SupermarketID   uint      `gorm:"index;not null"`
	Status          JobStatus `gorm:"index;size:20;not null;default:'pending'"`
	StartedAt       time.Time `gorm:"index;not null"`
	CompletedAt     *time.Time
	ProductsScraped int     `gorm:"not null;default:0;check:products_scraped >= 0"`
	ErrorsCount     int     `gorm:"not null;default:0;check:errors_count >= 0"`
	ErrorMessage    *string

	Supermarket Supermarket `gorm:"foreignKey:SupermarketID"`
}

func (ScrapingJob) TableName() string { return "scraping_jobs" }
