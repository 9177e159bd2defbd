package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/handler"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubComparator struct {
	bulkCalls [][]uint
}

func (s *stubComparator) Compare(_ context.Context, productID uint, _ time.Duration) (*dto.PriceComparison, error) {
	return &dto.PriceComparison{ProductID: productID}, nil
}

func (s *stubComparator) CompareBulk(_ context.Context, productIDs []uint, _ time.Duration) ([]dto.PriceComparison, error) {
	s.bulkCalls = append(s.bulkCalls, productIDs)
	out := make([]dto.PriceComparison, 0, len(productIDs))
	for _, id := range productIDs {
		out = append(out, dto.PriceComparison{ProductID: id})
	}
	return out, nil
}

func newBulkRouter(comparator *stubComparator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewPricesHandler(nil, comparator, nil, 24*time.Hour)
	r := gin.New()
	r.POST("/api/v1/prices/compare-bulk", h.CompareBulk)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCompareBulk_EmptyList(t *testing.T) {
	comparator := &stubComparator{}
	r := newBulkRouter(comparator)

	w := postJSON(r, "/api/v1/prices/compare-bulk", `{"product_ids": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be empty")
	assert.Empty(t, comparator.bulkCalls)
}

func TestCompareBulk_TooManyIDs(t *testing.T) {
	comparator := &stubComparator{}
	r := newBulkRouter(comparator)

	ids := make([]string, 51)
	for i := range ids {
		ids[i] = "1"
	}
	w := postJSON(r, "/api/v1/prices/compare-bulk", `{"product_ids": [`+strings.Join(ids, ",")+`]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Maximum 50 products")
	assert.Empty(t, comparator.bulkCalls)
}

func TestCompareBulk_InvalidJSON(t *testing.T) {
	r := newBulkRouter(&stubComparator{})

	w := postJSON(r, "/api/v1/prices/compare-bulk", `{"product_ids": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareBulk_PassesIDsThrough(t *testing.T) {
	comparator := &stubComparator{}
	r := newBulkRouter(comparator)

	w := postJSON(r, "/api/v1/prices/compare-bulk", `{"product_ids": [3, 1, 2]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, comparator.bulkCalls, 1)
	assert.Equal(t, []uint{3, 1, 2}, comparator.bulkCalls[0])
}

// Compile-time check that the stub satisfies the service interface.
var _ service.ComparisonService = (*stubComparator)(nil)
