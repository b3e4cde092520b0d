package app

import (
	"context"
	"errors"
	"testing"

	"github.com/AshisChetia/bookmart/internal/domain/model"
	testhelpers "github.com/AshisChetia/bookmart/internal/test"
	"github.com/AshisChetia/bookmart/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error { return s.err }

func newFacade() (*MarketFacade, *testhelpers.OrderRepositoryStub, *testhelpers.BookRepositoryStub, *testhelpers.UserRepositoryStub) {
	orders := &testhelpers.OrderRepositoryStub{}
	books := &testhelpers.BookRepositoryStub{}
	users := &testhelpers.UserRepositoryStub{Users: map[int64]*model.User{}}

	facade := NewMarketFacade(
		usecase.NewDashboardUseCase(orders, books),
		usecase.NewTopSellersUseCase(orders),
		usecase.NewSuggestionUseCase(orders, books),
		usecase.NewCategoryStatsUseCase(books),
		usecase.NewCatalogUseCase(users, books, 20),
		healthCheckerStub{},
	)
	return facade, orders, books, users
}

func TestMarketFacadeAnalytics(t *testing.T) {
	facade, orders, books, _ := newFacade()
	orders.SellerOrders = []model.SellerOrder{
		{Order: model.Order{BuyerID: 1, SellerID: 2, Quantity: 1, TotalAmount: 10, Status: model.OrderStatusDelivered}},
	}
	orders.Ranked = []model.RankedBook{{BookID: 4, TotalQuantitySold: 6}}
	books.Categories = []string{"Fiction", "fiction"}

	stats, err := facade.SellerDashboard(context.Background(), 2)
	if err != nil {
		t.Fatalf("dashboard returned error: %v", err)
	}
	if stats.TotalOrders != 1 || stats.TotalEarnings != 10 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	ranked, err := facade.TopSellingBooks(context.Background(), 2, "week")
	if err != nil || len(ranked) != 1 || ranked[0].BookID != 4 {
		t.Fatalf("unexpected ranking %+v err=%v", ranked, err)
	}

	buckets, err := facade.CategoryStats(context.Background())
	if err != nil || len(buckets) != 1 || buckets[0].Count != 2 {
		t.Fatalf("unexpected buckets %+v err=%v", buckets, err)
	}
}

func TestMarketFacadeSuggestions(t *testing.T) {
	facade, orders, books, _ := newFacade()
	orders.Purchases = []model.Purchase{{BookID: 1, Category: strPtr("Fiction")}}
	books.Books = []model.Book{
		{ID: 1, Category: "Fiction"},
		{ID: 2, Category: "Fiction"},
	}

	set, err := facade.SmartSuggestions(context.Background(), 5)
	if err != nil {
		t.Fatalf("suggestions returned error: %v", err)
	}
	if set.Reason != "Because you like Fiction" || len(set.Books) == 0 || set.Books[0].ID != 2 {
		t.Fatalf("unexpected suggestion set %+v", set)
	}
}

func TestMarketFacadeCatalog(t *testing.T) {
	facade, _, books, users := newFacade()
	books.Books = []model.Book{{ID: 3, Title: "Dune", Category: "Fiction"}}
	books.Count = 1
	users.Users[9] = &model.User{ID: 9, FullName: "Asha", Role: model.RoleSeller}

	listed, err := facade.BrowseBooks(context.Background(), "", 0)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected browse result %+v err=%v", listed, err)
	}

	book, err := facade.Book(context.Background(), 3)
	if err != nil || book.Title != "Dune" {
		t.Fatalf("unexpected book %+v err=%v", book, err)
	}

	profile, err := facade.SellerProfile(context.Background(), 9)
	if err != nil || profile.FullName != "Asha" || profile.TotalBooks != 1 {
		t.Fatalf("unexpected profile %+v err=%v", profile, err)
	}
}

func TestMarketFacadeHealth(t *testing.T) {
	facade, _, _, _ := newFacade()
	if err := facade.Health(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}

	boom := errors.New("db down")
	facade.health = healthCheckerStub{err: boom}
	if err := facade.Health(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected health error, got %v", err)
	}
}

func strPtr(s string) *string { return &s }
