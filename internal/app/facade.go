package app

import (
	"context"

	"github.com/AshisChetia/bookmart/internal/domain/model"
	"github.com/AshisChetia/bookmart/internal/usecase"
)

// HealthChecker reports data-store connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// MarketFacade aggregates the operations exposed across handlers.
type MarketFacade struct {
	dashboard   *usecase.DashboardUseCase
	topSellers  *usecase.TopSellersUseCase
	suggestions *usecase.SuggestionUseCase
	categories  *usecase.CategoryStatsUseCase
	catalog     *usecase.CatalogUseCase
	health      HealthChecker
}

// NewMarketFacade constructs MarketFacade.
func NewMarketFacade(
	dashboard *usecase.DashboardUseCase,
	topSellers *usecase.TopSellersUseCase,
	suggestions *usecase.SuggestionUseCase,
	categories *usecase.CategoryStatsUseCase,
	catalog *usecase.CatalogUseCase,
	health HealthChecker,
) *MarketFacade {
	return &MarketFacade{
		dashboard:   dashboard,
		topSellers:  topSellers,
		suggestions: suggestions,
		categories:  categories,
		catalog:     catalog,
		health:      health,
	}
}

func (f *MarketFacade) SellerDashboard(ctx context.Context, sellerID int64) (*model.DashboardStats, error) {
	return f.dashboard.SellerStats(ctx, sellerID)
}

func (f *MarketFacade) TopSellingBooks(ctx context.Context, sellerID int64, rangeKey string) ([]model.RankedBook, error) {
	return f.topSellers.Rank(ctx, sellerID, rangeKey)
}

func (f *MarketFacade) SmartSuggestions(ctx context.Context, userID int64) (*model.SuggestionSet, error) {
	return f.suggestions.ForUser(ctx, userID)
}

func (f *MarketFacade) CategoryStats(ctx context.Context) ([]model.CategoryBucket, error) {
	return f.categories.Stats(ctx)
}

func (f *MarketFacade) BrowseBooks(ctx context.Context, category string, limit int) ([]model.Book, error) {
	return f.catalog.Browse(ctx, category, limit)
}

func (f *MarketFacade) Book(ctx context.Context, id int64) (*model.Book, error) {
	return f.catalog.Book(ctx, id)
}

func (f *MarketFacade) SellerProfile(ctx context.Context, sellerID int64) (*model.SellerProfile, error) {
	return f.catalog.SellerProfile(ctx, sellerID)
}

func (f *MarketFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
