package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/handler"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSupermarketService struct {
	skip, limit int
	calls       int
}

func (s *stubSupermarketService) Create(_ context.Context, _ dto.CreateSupermarketRequest) (*dto.SupermarketResponse, error) {
	return nil, nil
}

func (s *stubSupermarketService) GetByID(_ context.Context, _ uint) (*dto.SupermarketResponse, error) {
	return nil, nil
}

func (s *stubSupermarketService) List(_ context.Context, skip, limit int) ([]dto.SupermarketResponse, error) {
	s.skip, s.limit = skip, limit
	s.calls++
	return []dto.SupermarketResponse{}, nil
}

func (s *stubSupermarketService) Update(_ context.Context, _ uint, _ dto.UpdateSupermarketRequest) (*dto.SupermarketResponse, error) {
	return nil, nil
}

func (s *stubSupermarketService) Delete(_ context.Context, _ uint) (*dto.SupermarketResponse, error) {
	return nil, nil
}

var _ service.SupermarketService = (*stubSupermarketService)(nil)

func newListRouter(svc *stubSupermarketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewSupermarketsHandler(svc)
	r := gin.New()
	r.GET("/api/v1/supermarkets", h.List)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestList_PaginationDefaults(t *testing.T) {
	svc := &stubSupermarketService{}
	r := newListRouter(svc)

	w := getPath(r, "/api/v1/supermarkets")

	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, svc.calls)
	assert.Equal(t, 0, svc.skip)
	assert.Equal(t, 100, svc.limit)
}

func TestList_PaginationExplicit(t *testing.T) {
	svc := &stubSupermarketService{}
	r := newListRouter(svc)

	w := getPath(r, "/api/v1/supermarkets?skip=20&limit=50")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, svc.skip)
	assert.Equal(t, 50, svc.limit)
}

func TestList_PaginationOutOfRange(t *testing.T) {
	svc := &stubSupermarketService{}
	r := newListRouter(svc)

	for _, path := range []string{
		"/api/v1/supermarkets?limit=0",
		"/api/v1/supermarkets?limit=501",
		"/api/v1/supermarkets?skip=-1",
		"/api/v1/supermarkets?limit=abc",
	} {
		w := getPath(r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	assert.Zero(t, svc.calls)
}
