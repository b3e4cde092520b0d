package model

import "time"

// Book is a catalog listing owned by a seller. Category is free-form
// and case-variant; analytics normalizes it, the catalog stores it as
// entered.
type Book struct {
	ID        int64
	Title     string
	Author    string
	Price     float64
	Stock     int
	Category  string
	SellerID  int64
	ImageURL  string
	CreatedAt time.Time
}
