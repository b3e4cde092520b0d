package handlers

import (
	"context"

	"github.com/AshisChetia/bookmart/internal/domain/model"
)

// AnalyticsFacade describes the aggregation operations exposed via HTTP.
type AnalyticsFacade interface {
	SellerDashboard(ctx context.Context, sellerID int64) (*model.DashboardStats, error)
	TopSellingBooks(ctx context.Context, sellerID int64, rangeKey string) ([]model.RankedBook, error)
	SmartSuggestions(ctx context.Context, userID int64) (*model.SuggestionSet, error)
	CategoryStats(ctx context.Context) ([]model.CategoryBucket, error)
}

// CatalogFacade provides catalog and operational reads.
type CatalogFacade interface {
	BrowseBooks(ctx context.Context, category string, limit int) ([]model.Book, error)
	Book(ctx context.Context, id int64) (*model.Book, error)
	SellerProfile(ctx context.Context, sellerID int64) (*model.SellerProfile, error)
	Health(ctx context.Context) error
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AnalyticsFacade
	CatalogFacade
}
