package repository

import (
	"context"

	"github.com/AshisChetia/bookmart/internal/domain/model"
)

// BookRepository describes catalog queries.
type BookRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	CountBySeller(ctx context.Context, sellerID int64) (int, error)

	// FindByCategories returns up to limit books in any of the given
	// categories, skipping excluded ids.
	FindByCategories(ctx context.Context, categories []string, excludeIDs []int64, limit int) ([]model.Book, error)

	// FindByIDs returns the books that still exist, in the order of
	// the id list.
	FindByIDs(ctx context.Context, ids []int64) ([]model.Book, error)

	// FindAnyExcluding returns up to limit arbitrary books whose ids
	// are not excluded.
	FindAnyExcluding(ctx context.Context, excludeIDs []int64, limit int) ([]model.Book, error)

	// List returns catalog entries, optionally filtered by category
	// (case-insensitive), newest first.
	List(ctx context.Context, category string, limit int) ([]model.Book, error)

	// CategoriesInScanOrder returns the category of every book in
	// stable store-scan order (by book id).
	CategoriesInScanOrder(ctx context.Context) ([]string, error)
}
