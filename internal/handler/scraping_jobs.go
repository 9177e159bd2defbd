package handler

import (
	"net/http"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/gin-gonic/gin"
)

// ScrapingJobsHandler exposes scraping run status records. External
// scrapers create a job when they start and patch it as they progress.
type ScrapingJobsHandler struct{ svc service.ScrapingJobService }

func NewScrapingJobsHandler(svc service.ScrapingJobService) *ScrapingJobsHandler {
	return &ScrapingJobsHandler{svc: svc}
}

func (h *ScrapingJobsHandler) Create(c *gin.Context) {
	var req dto.CreateScrapingJobRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ScrapingJobsHandler) List(c *gin.Context) {
	skip, limit, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScrapingJobsHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListRunning serves jobs currently in progress.
func (h *ScrapingJobsHandler) ListRunning(c *gin.Context) {
	resp, err := h.svc.ListRunning(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBySupermarket serves a supermarket's jobs, newest first.
func (h *ScrapingJobsHandler) ListBySupermarket(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	skip, limit, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListBySupermarket(c.Request.Context(), id, skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScrapingJobsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateScrapingJobRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
