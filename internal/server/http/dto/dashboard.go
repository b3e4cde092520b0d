package dto

import "github.com/AshisChetia/bookmart/internal/domain/model"

// MonthRevenueResponse is one bucket of the monthly revenue trend.
type MonthRevenueResponse struct {
	Month   string  `json:"month"`
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}

// CategorySalesResponse is one row of the category sales table.
type CategorySalesResponse struct {
	Category string  `json:"category"`
	Sales    int     `json:"sales"`
	Revenue  float64 `json:"revenue"`
}

// DashboardStatsPayload mirrors model.DashboardStats on the wire.
type DashboardStatsPayload struct {
	TotalOrders        int                     `json:"totalOrders"`
	TotalEarnings      float64                 `json:"totalEarnings"`
	TotalBooksSold     int                     `json:"totalBooksSold"`
	TotalBooks         int                     `json:"totalBooks"`
	UniqueCustomers    int                     `json:"uniqueCustomers"`
	RepeatCustomerRate int                     `json:"repeatCustomerRate"`
	MonthlyRevenue     []MonthRevenueResponse  `json:"monthlyRevenue"`
	CategorySales      []CategorySalesResponse `json:"categorySales"`
	StatusBreakdown    map[string]int          `json:"statusBreakdown"`
}

// DashboardResponse is the seller dashboard envelope.
type DashboardResponse struct {
	Success bool                  `json:"success"`
	Stats   DashboardStatsPayload `json:"stats"`
}

// NewDashboardResponse converts domain stats to the wire shape.
func NewDashboardResponse(stats *model.DashboardStats) DashboardResponse {
	payload := DashboardStatsPayload{
		TotalOrders:        stats.TotalOrders,
		TotalEarnings:      stats.TotalEarnings,
		TotalBooksSold:     stats.TotalBooksSold,
		TotalBooks:         stats.TotalBooks,
		UniqueCustomers:    stats.UniqueCustomers,
		RepeatCustomerRate: stats.RepeatCustomerRate,
		MonthlyRevenue:     make([]MonthRevenueResponse, 0, len(stats.MonthlyRevenue)),
		CategorySales:      make([]CategorySalesResponse, 0, len(stats.CategorySales)),
		StatusBreakdown:    make(map[string]int, len(stats.StatusBreakdown)),
	}
	for _, m := range stats.MonthlyRevenue {
		payload.MonthlyRevenue = append(payload.MonthlyRevenue, MonthRevenueResponse{
			Month:   m.Label,
			Year:    m.Year,
			Revenue: m.Revenue,
		})
	}
	for _, c := range stats.CategorySales {
		payload.CategorySales = append(payload.CategorySales, CategorySalesResponse{
			Category: c.Category,
			Sales:    c.Sales,
			Revenue:  c.Revenue,
		})
	}
	for status, count := range stats.StatusBreakdown {
		payload.StatusBreakdown[string(status)] = count
	}
	return DashboardResponse{Success: true, Stats: payload}
}
