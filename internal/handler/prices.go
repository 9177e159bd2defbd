package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/apierror"
	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Comparison results are time-sensitive, so the cache TTL is short:
// just enough to absorb bursts against the same product.
const compareCacheTTL = 60 * time.Second

type PricesHandler struct {
	svc        service.PriceService
	comparator service.ComparisonService
	rdb        *redis.Client
	lookback   time.Duration
}

func NewPricesHandler(svc service.PriceService, comparator service.ComparisonService, rdb *redis.Client, lookback time.Duration) *PricesHandler {
	if lookback <= 0 {
		lookback = service.DefaultLookback
	}
	return &PricesHandler{svc: svc, comparator: comparator, rdb: rdb, lookback: lookback}
}

// Create godoc
// @Summary Record a price observation
// @Tags prices
// @Accept json
// @Produce json
// @Success 201 {object} dto.PriceResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /api/v1/prices [post]
func (h *PricesHandler) Create(c *gin.Context) {
	var req dto.CreatePriceRequest
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

// Compare godoc
// @Summary Compare latest prices for a product across supermarkets
// @Tags prices
// @Produce json
// @Param product_id path int true "Product ID"
// @Param hours query int false "Lookback window in hours (default 24)"
// @Success 200 {object} dto.PriceComparison
// @Failure 404 {object} apierror.APIError
// @Router /api/v1/prices/compare/{product_id} [get]
func (h *PricesHandler) Compare(c *gin.Context) {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	lookback := h.lookback
	if hours := intQuery(c, "hours", 0); hours > 0 {
		lookback = time.Duration(hours) * time.Hour
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("compare:%d:%d", productID, int(lookback.Hours()))

	// Best effort cache read — a stale miss just costs a query.
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceComparison
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.comparator.Compare(ctx, productID, lookback)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, compareCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// CompareBulk godoc
// @Summary Compare prices for up to 50 products at once
// @Tags prices
// @Accept json
// @Produce json
// @Success 200 {array} dto.PriceComparison
// @Failure 400 {object} apierror.APIError
// @Router /api/v1/prices/compare-bulk [post]
func (h *PricesHandler) CompareBulk(c *gin.Context) {
	var req dto.CompareBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return
	}
	if len(req.ProductIDs) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("Product IDs list cannot be empty"))
		return
	}
	if len(req.ProductIDs) > 50 {
		c.JSON(http.StatusBadRequest, apierror.New("Maximum 50 products per request"))
		return
	}

	resp, err := h.comparator.CompareBulk(c.Request.Context(), req.ProductIDs, h.lookback)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History serves the raw observation history of one product.
func (h *PricesHandler) History(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	days := intQuery(c, "days", 30)
	resp, err := h.svc.History(c.Request.Context(), productID, days)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recent serves the newest observations across all products.
func (h *PricesHandler) Recent(c *gin.Context) {
	hours := intQuery(c, "hours", 24)
	skip, limit, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := h.svc.Recent(c.Request.Context(), hours, skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
