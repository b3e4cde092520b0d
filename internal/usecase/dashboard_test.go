package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/domain/model"
	testhelpers "github.com/AshisChetia/bookmart/internal/test"
)

func strPtr(s string) *string { return &s }

func sellerOrder(buyerID int64, status model.OrderStatus, qty int, amount float64, createdAt time.Time, category *string) model.SellerOrder {
	return model.SellerOrder{
		Order: model.Order{
			BuyerID:     buyerID,
			SellerID:    1,
			Quantity:    qty,
			TotalAmount: amount,
			Status:      status,
			CreatedAt:   createdAt,
		},
		BookCategory: category,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDashboardZeroOrders(t *testing.T) {
	uc := NewDashboardUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.BookRepositoryStub{})

	stats, err := uc.SellerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalOrders != 0 || stats.TotalEarnings != 0 || stats.TotalBooksSold != 0 {
		t.Fatalf("expected zero counters, got %+v", stats)
	}
	if stats.UniqueCustomers != 0 || stats.RepeatCustomerRate != 0 {
		t.Fatalf("expected zero customer stats, got %+v", stats)
	}
	if len(stats.MonthlyRevenue) != 0 || len(stats.CategorySales) != 0 {
		t.Fatalf("expected empty trend and categories, got %+v", stats)
	}
	if len(stats.StatusBreakdown) != 0 {
		t.Fatalf("expected empty status breakdown, got %v", stats.StatusBreakdown)
	}
}

func TestDashboardAggregates(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	orders := []model.SellerOrder{
		// Dec 2025 delivery: counts toward earnings but predates the
		// six-month trend window starting 2026-03-01.
		sellerOrder(12, model.OrderStatusDelivered, 1, 20, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), nil),
		sellerOrder(10, model.OrderStatusDelivered, 2, 40, time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC), strPtr("Fiction")),
		sellerOrder(10, model.OrderStatusPending, 1, 15, time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), strPtr("Fiction")),
		sellerOrder(11, model.OrderStatusCancelled, 3, 30, time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC), strPtr("Sci-Fi")),
	}

	uc := NewDashboardUseCase(
		&testhelpers.OrderRepositoryStub{SellerOrders: orders},
		&testhelpers.BookRepositoryStub{Count: 7},
	)
	uc.now = fixedClock(now)

	stats, err := uc.SellerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalOrders != 4 {
		t.Errorf("expected 4 orders, got %d", stats.TotalOrders)
	}
	if stats.TotalEarnings != 60 {
		t.Errorf("expected earnings 60 from delivered orders, got %v", stats.TotalEarnings)
	}
	if stats.TotalBooksSold != 4 {
		t.Errorf("expected 4 books sold excluding cancelled, got %d", stats.TotalBooksSold)
	}
	if stats.TotalBooks != 7 {
		t.Errorf("expected 7 catalog books, got %d", stats.TotalBooks)
	}
	if stats.UniqueCustomers != 3 {
		t.Errorf("expected 3 unique customers, got %d", stats.UniqueCustomers)
	}
	if stats.RepeatCustomerRate != 33 {
		t.Errorf("expected repeat rate 33, got %d", stats.RepeatCustomerRate)
	}

	if len(stats.MonthlyRevenue) != 1 {
		t.Fatalf("expected single trend bucket, got %+v", stats.MonthlyRevenue)
	}
	bucket := stats.MonthlyRevenue[0]
	if bucket.Label != "Jul" || bucket.Year != 2026 || bucket.Revenue != 40 {
		t.Errorf("unexpected trend bucket %+v", bucket)
	}

	// Fiction gathers the delivered and pending orders; the cancelled
	// Sci-Fi order and the dangling-book order are absent.
	if len(stats.CategorySales) != 1 {
		t.Fatalf("expected single category row, got %+v", stats.CategorySales)
	}
	row := stats.CategorySales[0]
	if row.Category != "Fiction" || row.Sales != 3 || row.Revenue != 55 {
		t.Errorf("unexpected category row %+v", row)
	}

	breakdown := stats.StatusBreakdown
	if breakdown[model.OrderStatusDelivered] != 2 || breakdown[model.OrderStatusPending] != 1 || breakdown[model.OrderStatusCancelled] != 1 {
		t.Errorf("unexpected status breakdown %v", breakdown)
	}
	if _, ok := breakdown[model.OrderStatusShipped]; ok {
		t.Error("expected absent status to be absent from breakdown")
	}
}

func TestDashboardTrendSortedChronologically(t *testing.T) {
	now := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	orders := []model.SellerOrder{
		sellerOrder(1, model.OrderStatusDelivered, 1, 30, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), nil),
		sellerOrder(2, model.OrderStatusDelivered, 1, 10, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), nil),
		sellerOrder(3, model.OrderStatusDelivered, 1, 20, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), nil),
		// Pending orders never contribute revenue, so April stays out.
		sellerOrder(4, model.OrderStatusPending, 1, 99, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), nil),
	}

	uc := NewDashboardUseCase(&testhelpers.OrderRepositoryStub{SellerOrders: orders}, &testhelpers.BookRepositoryStub{})
	uc.now = fixedClock(now)

	stats, err := uc.SellerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels := make([]string, 0, len(stats.MonthlyRevenue))
	for _, m := range stats.MonthlyRevenue {
		labels = append(labels, m.Label)
	}
	want := []string{"Mar", "Jun", "Aug"}
	if len(labels) != len(want) {
		t.Fatalf("expected buckets %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected buckets %v, got %v", want, labels)
		}
	}
}

func TestDashboardRepeatRateBounds(t *testing.T) {
	now := time.Now()
	uc := NewDashboardUseCase(&testhelpers.OrderRepositoryStub{SellerOrders: []model.SellerOrder{
		sellerOrder(1, model.OrderStatusPending, 1, 1, now, nil),
		sellerOrder(2, model.OrderStatusPending, 1, 1, now, nil),
	}}, &testhelpers.BookRepositoryStub{})

	stats, err := uc.SellerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.RepeatCustomerRate != 0 {
		t.Errorf("expected rate 0 for distinct buyers, got %d", stats.RepeatCustomerRate)
	}

	uc = NewDashboardUseCase(&testhelpers.OrderRepositoryStub{SellerOrders: []model.SellerOrder{
		sellerOrder(5, model.OrderStatusPending, 1, 1, now, nil),
		sellerOrder(5, model.OrderStatusCancelled, 1, 1, now, nil),
		sellerOrder(5, model.OrderStatusDelivered, 1, 1, now, nil),
	}}, &testhelpers.BookRepositoryStub{})

	stats, err = uc.SellerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.UniqueCustomers != 1 || stats.RepeatCustomerRate != 100 {
		t.Errorf("expected one repeat customer at 100%%, got %+v", stats)
	}
}

func TestDashboardRejectsInvalidSeller(t *testing.T) {
	uc := NewDashboardUseCase(&testhelpers.OrderRepositoryStub{ListBySellerFn: func(context.Context, int64) ([]model.SellerOrder, error) {
		t.Fatal("store should not be touched for invalid input")
		return nil, nil
	}}, &testhelpers.BookRepositoryStub{})

	if _, err := uc.SellerStats(context.Background(), 0); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDashboardStoreErrorPropagates(t *testing.T) {
	boom := errors.New("boom")

	uc := NewDashboardUseCase(&testhelpers.OrderRepositoryStub{Err: boom}, &testhelpers.BookRepositoryStub{})
	if _, err := uc.SellerStats(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected order scan error, got %v", err)
	}

	uc = NewDashboardUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.BookRepositoryStub{CountBySellerFn: func(context.Context, int64) (int, error) {
		return 0, boom
	}})
	if _, err := uc.SellerStats(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected book count error, got %v", err)
	}
}

func TestDashboardIdempotent(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	orders := []model.SellerOrder{
		sellerOrder(1, model.OrderStatusDelivered, 2, 20, now.AddDate(0, -1, 0), strPtr("History")),
		sellerOrder(2, model.OrderStatusDelivered, 1, 10, now.AddDate(0, -2, 0), strPtr("history")),
	}
	uc := NewDashboardUseCase(&testhelpers.OrderRepositoryStub{SellerOrders: orders}, &testhelpers.BookRepositoryStub{Count: 2})
	uc.now = fixedClock(now)

	first, err := uc.SellerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.SellerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalEarnings != second.TotalEarnings || len(first.MonthlyRevenue) != len(second.MonthlyRevenue) || len(first.CategorySales) != len(second.CategorySales) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}
