package handler

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/Norwyx/supermarket-price-scraper/internal/apierror"
	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func init() {
	// "httpurl": the API only accepts absolute http(s) URLs.
	_ = validate.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		v := strings.TrimSpace(fl.Field().String())
		return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
	})

	// "slug": lowercase letters, digits, hyphens. Validated against the
	// normalized form since the service lower-cases before persisting.
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		v := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		return slugPattern.MatchString(v)
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads a uint path parameter. Writes a 400 and returns false
// on malformed input.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// bindPage binds skip/limit query parameters with their defaults.
// Writes a 400 and returns false on out-of-range values.
func bindPage(c *gin.Context) (int, int, bool) {
	var f dto.PageFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid pagination parameters"))
		return 0, 0, false
	}
	if err := validate.Struct(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid pagination parameters"))
		return 0, 0, false
	}
	return f.Skip, f.Limit, true
}

// intQuery reads an integer query parameter with a default.
func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// writeServiceError maps service errors onto HTTP responses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case service.IsConflict(err):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
