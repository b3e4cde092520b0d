package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/domain/model"
	"github.com/AshisChetia/bookmart/internal/domain/repository"
	"github.com/AshisChetia/bookmart/internal/pkg/grouping"
)

// trendMonths is the span of the monthly revenue trend, current
// calendar month included.
const trendMonths = 6

// DashboardUseCase computes seller KPI snapshots.
type DashboardUseCase struct {
	orders repository.OrderRepository
	books  repository.BookRepository
	now    func() time.Time
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(orders repository.OrderRepository, books repository.BookRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, books: books, now: time.Now}
}

type monthKey struct {
	Year  int
	Month time.Month
}

type categoryAccum struct {
	Sales   int
	Revenue float64
}

// SellerStats aggregates the seller's full order history into a
// DashboardStats snapshot. Any store failure fails the whole
// operation; no partial result is returned.
func (u *DashboardUseCase) SellerStats(ctx context.Context, sellerID int64) (*model.DashboardStats, error) {
	if sellerID <= 0 {
		return nil, fmt.Errorf("seller id: %w", domainErrors.ErrValidation)
	}

	orders, err := u.orders.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("scan seller orders: %w", err)
	}

	totalBooks, err := u.books.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("count seller books: %w", err)
	}

	stats := &model.DashboardStats{
		TotalOrders:     len(orders),
		TotalBooks:      totalBooks,
		StatusBreakdown: make(map[model.OrderStatus]int),
	}

	trendStart := monthWindowStart(u.now())
	buyers := grouping.New[int64, int]()
	months := grouping.New[monthKey, float64]()
	categories := grouping.New[string, categoryAccum]()

	for _, o := range orders {
		stats.StatusBreakdown[o.Status]++
		buyers.Update(o.BuyerID, func(n int) int { return n + 1 })

		if o.Status != model.OrderStatusCancelled {
			stats.TotalBooksSold += o.Quantity
			// Orders whose book was deleted cannot be attributed to a
			// category; their quantity still counts above.
			if o.BookCategory != nil {
				amount := o.TotalAmount
				qty := o.Quantity
				categories.Update(*o.BookCategory, func(acc categoryAccum) categoryAccum {
					acc.Sales += qty
					acc.Revenue += amount
					return acc
				})
			}
		}

		if o.Status == model.OrderStatusDelivered {
			stats.TotalEarnings += o.TotalAmount
			if !o.CreatedAt.Before(trendStart) {
				key := monthKey{Year: o.CreatedAt.Year(), Month: o.CreatedAt.Month()}
				amount := o.TotalAmount
				months.Update(key, func(rev float64) float64 { return rev + amount })
			}
		}
	}

	stats.UniqueCustomers = buyers.Len()
	repeat := 0
	for _, count := range buyers.Values() {
		if count >= 2 {
			repeat++
		}
	}
	if stats.UniqueCustomers > 0 {
		rate := float64(repeat) / float64(stats.UniqueCustomers) * 100
		stats.RepeatCustomerRate = int(math.Round(rate))
	}

	stats.MonthlyRevenue = monthlyTrend(months)
	stats.CategorySales = categoryTable(categories)

	return stats, nil
}

// monthWindowStart anchors the trailing six-month trend at the first
// day of the month five months before the current one.
func monthWindowStart(now time.Time) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, -(trendMonths - 1), 0)
}

func monthlyTrend(months *grouping.Map[monthKey, float64]) []model.MonthRevenue {
	trend := make([]model.MonthRevenue, 0, months.Len())
	for _, key := range months.Keys() {
		revenue, _ := months.Get(key)
		trend = append(trend, model.MonthRevenue{
			Year:    key.Year,
			Month:   key.Month,
			Label:   key.Month.String()[:3],
			Revenue: revenue,
		})
	}
	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Year != trend[j].Year {
			return trend[i].Year < trend[j].Year
		}
		return trend[i].Month < trend[j].Month
	})
	return trend
}

func categoryTable(categories *grouping.Map[string, categoryAccum]) []model.CategorySales {
	table := make([]model.CategorySales, 0, categories.Len())
	for _, name := range categories.Keys() {
		acc, _ := categories.Get(name)
		table = append(table, model.CategorySales{Category: name, Sales: acc.Sales, Revenue: acc.Revenue})
	}
	// Stable keeps first-encountered order among equal sales counts.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Sales > table[j].Sales
	})
	return table
}
