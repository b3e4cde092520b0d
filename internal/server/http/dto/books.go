package dto

import (
	"time"

	"github.com/AshisChetia/bookmart/internal/domain/model"
)

// BookResponse is one catalog listing on the wire.
type BookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	SellerID  int64     `json:"sellerId"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		Stock:     b.Stock,
		Category:  b.Category,
		SellerID:  b.SellerID,
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt,
	}
}

// BooksResponse is the catalog browse envelope.
type BooksResponse struct {
	Success bool           `json:"success"`
	Books   []BookResponse `json:"books"`
}

// NewBooksResponse converts listings to the wire shape.
func NewBooksResponse(books []model.Book) BooksResponse {
	resp := BooksResponse{Success: true, Books: make([]BookResponse, 0, len(books))}
	for _, b := range books {
		resp.Books = append(resp.Books, toBookResponse(b))
	}
	return resp
}

// BookDetailResponse is the single-book envelope.
type BookDetailResponse struct {
	Success bool         `json:"success"`
	Book    BookResponse `json:"book"`
}

// NewBookDetailResponse converts one listing to the wire shape.
func NewBookDetailResponse(b *model.Book) BookDetailResponse {
	return BookDetailResponse{Success: true, Book: toBookResponse(*b)}
}

// RankedBookResponse is one row of the top-sellers ranking.
type RankedBookResponse struct {
	BookID            int64   `json:"bookId"`
	Title             string  `json:"title"`
	Author            string  `json:"author"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	Price             float64 `json:"price"`
	TotalQuantitySold int     `json:"totalQuantitySold"`
	TotalRevenue      float64 `json:"totalRevenue"`
	OrderCount        int     `json:"orderCount"`
}

// TopSellersResponse is the top-sellers envelope.
type TopSellersResponse struct {
	Success bool                 `json:"success"`
	Range   string               `json:"range"`
	Books   []RankedBookResponse `json:"books"`
}

// NewTopSellersResponse converts a ranking to the wire shape.
func NewTopSellersResponse(rangeKey string, ranked []model.RankedBook) TopSellersResponse {
	resp := TopSellersResponse{Success: true, Range: rangeKey, Books: make([]RankedBookResponse, 0, len(ranked))}
	for _, r := range ranked {
		resp.Books = append(resp.Books, RankedBookResponse{
			BookID:            r.BookID,
			Title:             r.Title,
			Author:            r.Author,
			ImageURL:          r.ImageURL,
			Price:             r.Price,
			TotalQuantitySold: r.TotalQuantitySold,
			TotalRevenue:      r.TotalRevenue,
			OrderCount:        r.OrderCount,
		})
	}
	return resp
}

// SuggestionsResponse is the smart-suggestions envelope.
type SuggestionsResponse struct {
	Success     bool           `json:"success"`
	Reason      string         `json:"reason"`
	Suggestions []BookResponse `json:"suggestions"`
}

// NewSuggestionsResponse converts a suggestion set to the wire shape.
func NewSuggestionsResponse(set *model.SuggestionSet) SuggestionsResponse {
	resp := SuggestionsResponse{Success: true, Reason: set.Reason, Suggestions: make([]BookResponse, 0, len(set.Books))}
	for _, b := range set.Books {
		resp.Suggestions = append(resp.Suggestions, toBookResponse(b))
	}
	return resp
}

// CategoryBucketResponse is one normalized category bucket.
type CategoryBucketResponse struct {
	DisplayName string `json:"displayName"`
	Key         string `json:"key"`
	Count       int    `json:"count"`
}

// CategoryStatsResponse is the category stats envelope.
type CategoryStatsResponse struct {
	Success    bool                     `json:"success"`
	Categories []CategoryBucketResponse `json:"categories"`
}

// NewCategoryStatsResponse converts buckets to the wire shape.
func NewCategoryStatsResponse(buckets []model.CategoryBucket) CategoryStatsResponse {
	resp := CategoryStatsResponse{Success: true, Categories: make([]CategoryBucketResponse, 0, len(buckets))}
	for _, b := range buckets {
		resp.Categories = append(resp.Categories, CategoryBucketResponse{
			DisplayName: b.DisplayName,
			Key:         b.Key,
			Count:       b.Count,
		})
	}
	return resp
}

// SellerProfileResponse is the seller profile envelope.
type SellerProfileResponse struct {
	Success    bool   `json:"success"`
	ID         int64  `json:"id"`
	FullName   string `json:"fullname"`
	Email      string `json:"email"`
	TotalBooks int    `json:"totalBooks"`
}

// NewSellerProfileResponse converts a profile to the wire shape.
func NewSellerProfileResponse(p *model.SellerProfile) SellerProfileResponse {
	return SellerProfileResponse{
		Success:    true,
		ID:         p.ID,
		FullName:   p.FullName,
		Email:      p.Email,
		TotalBooks: p.TotalBooks,
	}
}
