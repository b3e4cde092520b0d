package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/domain/model"
	"github.com/AshisChetia/bookmart/internal/domain/repository"
)

// topSellersLimit caps the ranking size.
const topSellersLimit = 5

// TopSellersUseCase ranks a seller's books by units sold within a
// trailing window.
type TopSellersUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewTopSellersUseCase constructs TopSellersUseCase.
func NewTopSellersUseCase(orders repository.OrderRepository) *TopSellersUseCase {
	return &TopSellersUseCase{orders: orders, now: time.Now}
}

// Rank returns up to five of the seller's books ordered by quantity
// sold within the window selected by rangeKey. Books with no
// qualifying orders never appear.
func (u *TopSellersUseCase) Rank(ctx context.Context, sellerID int64, rangeKey string) ([]model.RankedBook, error) {
	if sellerID <= 0 {
		return nil, fmt.Errorf("seller id: %w", domainErrors.ErrValidation)
	}

	since := WindowStart(rangeKey, u.now())
	ranked, err := u.orders.TopBooksBySeller(ctx, sellerID, since, topSellersLimit)
	if err != nil {
		return nil, fmt.Errorf("rank seller books: %w", err)
	}
	return ranked, nil
}
