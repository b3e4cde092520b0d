package model

import "time"

// MonthRevenue is one bucket of the monthly delivered-revenue trend.
type MonthRevenue struct {
	Year    int
	Month   time.Month
	Label   string
	Revenue float64
}

// CategorySales aggregates non-cancelled sales for one book category.
type CategorySales struct {
	Category string
	Sales    int
	Revenue  float64
}

// DashboardStats holds the seller KPI snapshot. Computed per request;
// never persisted.
type DashboardStats struct {
	TotalOrders        int
	TotalEarnings      float64
	TotalBooksSold     int
	TotalBooks         int
	UniqueCustomers    int
	RepeatCustomerRate int
	MonthlyRevenue     []MonthRevenue
	CategorySales      []CategorySales
	StatusBreakdown    map[OrderStatus]int
}

// RankedBook is one row of the top-sellers ranking, already joined
// with book metadata. Title falls back to a placeholder when the book
// has been deleted.
type RankedBook struct {
	BookID            int64
	Title             string
	Author            string
	ImageURL          string
	Price             float64
	TotalQuantitySold int
	TotalRevenue      float64
	OrderCount        int
}

// SuggestionSet is the smart-suggestion result for one user.
type SuggestionSet struct {
	Books  []Book
	Reason string
}

// CategoryBucket is one case-normalized category with its book count.
type CategoryBucket struct {
	DisplayName string
	Key         string
	Count       int
}

// SellerProfile is a seller account with catalog size attached.
type SellerProfile struct {
	User
	TotalBooks int
}
