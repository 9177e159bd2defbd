package handler

import (
	"net/http"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/gin-gonic/gin"
)

type SupermarketsHandler struct{ svc service.SupermarketService }

func NewSupermarketsHandler(svc service.SupermarketService) *SupermarketsHandler {
	return &SupermarketsHandler{svc: svc}
}

// Create godoc
// @Summary Register a supermarket
// @Tags supermarkets
// @Accept json
// @Produce json
// @Success 201 {object} dto.SupermarketResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /api/v1/supermarkets [post]
func (h *SupermarketsHandler) Create(c *gin.Context) {
	var req dto.CreateSupermarketRequest
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

func (h *SupermarketsHandler) List(c *gin.Context) {
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

func (h *SupermarketsHandler) GetByID(c *gin.Context) {
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

func (h *SupermarketsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSupermarketRequest
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

// Delete removes a supermarket and returns the deleted row.
func (h *SupermarketsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
