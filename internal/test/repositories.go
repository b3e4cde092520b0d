package test

import (
	"context"
	"time"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize behaviour. Fn fields
// take precedence; otherwise the value fields (or Err) are returned.
type OrderRepositoryStub struct {
	SellerOrders []model.SellerOrder
	Ranked       []model.RankedBook
	Purchases    []model.Purchase
	TrendingIDs  []int64
	Err          error

	ListBySellerFn      func(context.Context, int64) ([]model.SellerOrder, error)
	TopBooksBySellerFn  func(context.Context, int64, time.Time, int) ([]model.RankedBook, error)
	PurchasesByBuyerFn  func(context.Context, int64) ([]model.Purchase, error)
	TopSellingBookIDsFn func(context.Context, int) ([]int64, error)
}

func (s *OrderRepositoryStub) ListBySeller(ctx context.Context, sellerID int64) ([]model.SellerOrder, error) {
	if s.ListBySellerFn != nil {
		return s.ListBySellerFn(ctx, sellerID)
	}
	return s.SellerOrders, s.Err
}

func (s *OrderRepositoryStub) TopBooksBySeller(ctx context.Context, sellerID int64, since time.Time, limit int) ([]model.RankedBook, error) {
	if s.TopBooksBySellerFn != nil {
		return s.TopBooksBySellerFn(ctx, sellerID, since, limit)
	}
	return s.Ranked, s.Err
}

func (s *OrderRepositoryStub) PurchasesByBuyer(ctx context.Context, buyerID int64) ([]model.Purchase, error) {
	if s.PurchasesByBuyerFn != nil {
		return s.PurchasesByBuyerFn(ctx, buyerID)
	}
	return s.Purchases, s.Err
}

func (s *OrderRepositoryStub) TopSellingBookIDs(ctx context.Context, limit int) ([]int64, error) {
	if s.TopSellingBookIDsFn != nil {
		return s.TopSellingBookIDsFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if limit < len(s.TrendingIDs) {
		return s.TrendingIDs[:limit], nil
	}
	return s.TrendingIDs, nil
}

// BookRepositoryStub serves canned catalog data for tests.
type BookRepositoryStub struct {
	Books      []model.Book
	Count      int
	Categories []string
	Err        error

	GetByIDFn          func(context.Context, int64) (*model.Book, error)
	CountBySellerFn    func(context.Context, int64) (int, error)
	FindByCategoriesFn func(context.Context, []string, []int64, int) ([]model.Book, error)
	FindByIDsFn        func(context.Context, []int64) ([]model.Book, error)
	FindAnyExcludingFn func(context.Context, []int64, int) ([]model.Book, error)
	ListFn             func(context.Context, string, int) ([]model.Book, error)
	CategoriesFn       func(context.Context) ([]string, error)
}

func (s *BookRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, b := range s.Books {
		if b.ID == id {
			book := b
			return &book, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *BookRepositoryStub) CountBySeller(ctx context.Context, sellerID int64) (int, error) {
	if s.CountBySellerFn != nil {
		return s.CountBySellerFn(ctx, sellerID)
	}
	return s.Count, s.Err
}

func (s *BookRepositoryStub) FindByCategories(ctx context.Context, categories []string, excludeIDs []int64, limit int) ([]model.Book, error) {
	if s.FindByCategoriesFn != nil {
		return s.FindByCategoriesFn(ctx, categories, excludeIDs, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}
	return s.filter(limit, excludeIDs, func(b model.Book) bool {
		_, ok := allowed[b.Category]
		return ok
	}), nil
}

func (s *BookRepositoryStub) FindByIDs(ctx context.Context, ids []int64) ([]model.Book, error) {
	if s.FindByIDsFn != nil {
		return s.FindByIDsFn(ctx, ids)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Book
	for _, id := range ids {
		for _, b := range s.Books {
			if b.ID == id {
				result = append(result, b)
				break
			}
		}
	}
	return result, nil
}

func (s *BookRepositoryStub) FindAnyExcluding(ctx context.Context, excludeIDs []int64, limit int) ([]model.Book, error) {
	if s.FindAnyExcludingFn != nil {
		return s.FindAnyExcludingFn(ctx, excludeIDs, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(limit, excludeIDs, func(model.Book) bool { return true }), nil
}

func (s *BookRepositoryStub) List(ctx context.Context, category string, limit int) ([]model.Book, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, category, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(limit, nil, func(b model.Book) bool {
		return category == "" || b.Category == category
	}), nil
}

func (s *BookRepositoryStub) CategoriesInScanOrder(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return s.Categories, s.Err
}

func (s *BookRepositoryStub) filter(limit int, excludeIDs []int64, keep func(model.Book) bool) []model.Book {
	excluded := make(map[int64]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	var result []model.Book
	for _, b := range s.Books {
		if _, skip := excluded[b.ID]; skip || !keep(b) {
			continue
		}
		result = append(result, b)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[int64]*model.User
	Err   error

	GetByIDFn func(context.Context, int64) (*model.User, error)
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}
