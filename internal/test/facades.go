package test

import (
	"context"

	"github.com/AshisChetia/bookmart/internal/domain/model"
)

// AnalyticsFacadeStub lets handler tests script analytics responses.
type AnalyticsFacadeStub struct {
	SellerDashboardFn func(context.Context, int64) (*model.DashboardStats, error)
	TopSellingBooksFn func(context.Context, int64, string) ([]model.RankedBook, error)
	SmartSuggestionsFn func(context.Context, int64) (*model.SuggestionSet, error)
	CategoryStatsFn   func(context.Context) ([]model.CategoryBucket, error)
}

func (s AnalyticsFacadeStub) SellerDashboard(ctx context.Context, sellerID int64) (*model.DashboardStats, error) {
	if s.SellerDashboardFn != nil {
		return s.SellerDashboardFn(ctx, sellerID)
	}
	return &model.DashboardStats{StatusBreakdown: map[model.OrderStatus]int{}}, nil
}

func (s AnalyticsFacadeStub) TopSellingBooks(ctx context.Context, sellerID int64, rangeKey string) ([]model.RankedBook, error) {
	if s.TopSellingBooksFn != nil {
		return s.TopSellingBooksFn(ctx, sellerID, rangeKey)
	}
	return nil, nil
}

func (s AnalyticsFacadeStub) SmartSuggestions(ctx context.Context, userID int64) (*model.SuggestionSet, error) {
	if s.SmartSuggestionsFn != nil {
		return s.SmartSuggestionsFn(ctx, userID)
	}
	return &model.SuggestionSet{Reason: "Top Selling"}, nil
}

func (s AnalyticsFacadeStub) CategoryStats(ctx context.Context) ([]model.CategoryBucket, error) {
	if s.CategoryStatsFn != nil {
		return s.CategoryStatsFn(ctx)
	}
	return nil, nil
}

// CatalogFacadeStub lets handler tests script catalog responses.
type CatalogFacadeStub struct {
	BrowseBooksFn   func(context.Context, string, int) ([]model.Book, error)
	BookFn          func(context.Context, int64) (*model.Book, error)
	SellerProfileFn func(context.Context, int64) (*model.SellerProfile, error)
	HealthFn        func(context.Context) error
}

func (s CatalogFacadeStub) BrowseBooks(ctx context.Context, category string, limit int) ([]model.Book, error) {
	if s.BrowseBooksFn != nil {
		return s.BrowseBooksFn(ctx, category, limit)
	}
	return nil, nil
}

func (s CatalogFacadeStub) Book(ctx context.Context, id int64) (*model.Book, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, id)
	}
	return &model.Book{ID: id}, nil
}

func (s CatalogFacadeStub) SellerProfile(ctx context.Context, sellerID int64) (*model.SellerProfile, error) {
	if s.SellerProfileFn != nil {
		return s.SellerProfileFn(ctx, sellerID)
	}
	return &model.SellerProfile{User: model.User{ID: sellerID, Role: model.RoleSeller}}, nil
}

func (s CatalogFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// MarketFacadeStub aggregates both stubs for router-level tests.
type MarketFacadeStub struct {
	AnalyticsFacadeStub
	CatalogFacadeStub
}
