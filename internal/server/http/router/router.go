package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/AshisChetia/bookmart/internal/server/http/handlers"
	"github.com/AshisChetia/bookmart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	analytics := handlers.NewAnalyticsHandler(facade)
	catalog := handlers.NewCatalogHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", catalog.Health)
	api.GET("/books", catalog.Browse)
	api.GET("/books/:id", catalog.Book)
	api.GET("/categories/stats", analytics.CategoryStats)
	api.GET("/users/:id/suggestions", analytics.Suggestions)

	sellers := api.Group("/sellers")
	sellers.GET("/:id", catalog.SellerProfile)
	sellers.GET("/:id/dashboard", analytics.Dashboard)
	sellers.GET("/:id/top-books", analytics.TopBooks)

	return engine
}
