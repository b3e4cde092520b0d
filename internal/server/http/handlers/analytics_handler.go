package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AshisChetia/bookmart/internal/server/http/dto"
)

// AnalyticsHandler serves seller analytics and suggestion endpoints.
type AnalyticsHandler struct {
	facade AnalyticsFacade
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// Dashboard handles GET /api/sellers/:id/dashboard.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	sellerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.facade.SellerDashboard(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(stats))
}

// TopBooks handles GET /api/sellers/:id/top-books.
func (h *AnalyticsHandler) TopBooks(c *gin.Context) {
	sellerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rangeKey := c.Query("range")
	ranked, err := h.facade.TopSellingBooks(c.Request.Context(), sellerID, rangeKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTopSellersResponse(rangeKey, ranked))
}

// Suggestions handles GET /api/users/:id/suggestions.
func (h *AnalyticsHandler) Suggestions(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	set, err := h.facade.SmartSuggestions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuggestionsResponse(set))
}

// CategoryStats handles GET /api/categories/stats.
func (h *AnalyticsHandler) CategoryStats(c *gin.Context) {
	buckets, err := h.facade.CategoryStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryStatsResponse(buckets))
}
