package repository

import (
	"context"
	"time"

	"github.com/AshisChetia/bookmart/internal/domain/model"
)

// OrderRepository describes the order-scan and aggregation primitives
// the analytics layer is built on. Scan order of the List methods is
// created_at ascending; "first encountered" semantics depend on it.
type OrderRepository interface {
	// ListBySeller returns every order of the seller joined with the
	// book's category (nil when the book was deleted).
	ListBySeller(ctx context.Context, sellerID int64) ([]model.SellerOrder, error)

	// TopBooksBySeller groups the seller's orders created at or after
	// since by book, summing quantity and revenue. A zero since means
	// all-time. Ordered by quantity sold descending, then book id.
	TopBooksBySeller(ctx context.Context, sellerID int64, since time.Time, limit int) ([]model.RankedBook, error)

	// PurchasesByBuyer returns book id and category for each of the
	// buyer's orders (category nil when the book was deleted).
	PurchasesByBuyer(ctx context.Context, buyerID int64) ([]model.Purchase, error)

	// TopSellingBookIDs returns globally best-selling book ids by
	// total quantity descending, then book id.
	TopSellingBookIDs(ctx context.Context, limit int) ([]int64, error)
}
