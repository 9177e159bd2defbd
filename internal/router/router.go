package router

import (
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/config"
	"github.com/Norwyx/supermarket-price-scraper/internal/handler"
	"github.com/Norwyx/supermarket-price-scraper/internal/metrics"
	"github.com/Norwyx/supermarket-price-scraper/internal/middleware"
	"github.com/Norwyx/supermarket-price-scraper/internal/repository"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute))
	r.Use(metrics.Middleware())

	// ── Repositories ─────────────────────────────────────────────────────────
	supermarketRepo := repository.NewSupermarketRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	jobRepo := repository.NewScrapingJobRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	supermarketSvc := service.NewSupermarketService(supermarketRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo)
	priceSvc := service.NewPriceService(priceRepo, productRepo, supermarketRepo)
	comparisonSvc := service.NewComparisonService(productRepo, supermarketRepo, priceRepo)
	jobSvc := service.NewScrapingJobService(jobRepo, supermarketRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	lookback := time.Duration(cfg.DefaultLookbackHours) * time.Hour
	supermarketsH := handler.NewSupermarketsHandler(supermarketSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc, productSvc)
	productsH := handler.NewProductsHandler(productSvc)
	pricesH := handler.NewPricesHandler(priceSvc, comparisonSvc, rdb, lookback)
	jobsH := handler.NewScrapingJobsHandler(jobSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/api/v1")
	{
		supermarkets := v1.Group("/supermarkets")
		{
			supermarkets.POST("", supermarketsH.Create)
			supermarkets.GET("", supermarketsH.List)
			supermarkets.GET("/:id", supermarketsH.GetByID)
			supermarkets.PUT("/:id", supermarketsH.Update)
			supermarkets.DELETE("/:id", supermarketsH.Delete)
			supermarkets.GET("/:id/scraping-jobs", jobsH.ListBySupermarket)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.GET("", categoriesH.List)
			categories.GET("/:id", categoriesH.GetByID)
			categories.GET("/:id/products", categoriesH.ListProducts)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		prices := v1.Group("/prices")
		{
			prices.POST("", pricesH.Create)
			prices.GET("/recent", pricesH.Recent)
			prices.GET("/compare/:product_id", pricesH.Compare)
			prices.POST("/compare-bulk", pricesH.CompareBulk)
			prices.GET("/product/:id/history", pricesH.History)
		}

		jobs := v1.Group("/scraping-jobs")
		{
			jobs.POST("", jobsH.Create)
			jobs.GET("", jobsH.List)
			jobs.GET("/running", jobsH.ListRunning)
			jobs.GET("/:id", jobsH.GetByID)
			jobs.PATCH("/:id", jobsH.Update)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
