package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AshisChetia/bookmart/internal/server/http/dto"
)

// CatalogHandler serves catalog browse and operational endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Browse handles GET /api/books.
func (h *CatalogHandler) Browse(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	books, err := h.facade.BrowseBooks(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBooksResponse(books))
}

// Book handles GET /api/books/:id.
func (h *CatalogHandler) Book(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	book, err := h.facade.Book(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookDetailResponse(book))
}

// SellerProfile handles GET /api/sellers/:id.
func (h *CatalogHandler) SellerProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	profile, err := h.facade.SellerProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSellerProfileResponse(profile))
}

// Health handles GET /api/health.
func (h *CatalogHandler) Health(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}
