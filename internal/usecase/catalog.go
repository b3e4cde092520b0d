package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/domain/model"
	"github.com/AshisChetia/bookmart/internal/domain/repository"
)

// CatalogUseCase serves the thin catalog reads around the analytics
// core: book browse/get and seller profiles.
type CatalogUseCase struct {
	users    repository.UserRepository
	books    repository.BookRepository
	pageSize int
}

// NewCatalogUseCase constructs CatalogUseCase. pageSize caps browse
// results.
func NewCatalogUseCase(users repository.UserRepository, books repository.BookRepository, pageSize int) *CatalogUseCase {
	return &CatalogUseCase{users: users, books: books, pageSize: pageSize}
}

// Browse lists catalog entries, optionally filtered by category. A
// non-positive or oversized limit falls back to the configured page
// size.
func (u *CatalogUseCase) Browse(ctx context.Context, category string, limit int) ([]model.Book, error) {
	if limit <= 0 || limit > u.pageSize {
		limit = u.pageSize
	}
	books, err := u.books.List(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("browse books: %w", err)
	}
	return books, nil
}

// Book fetches a single listing.
func (u *CatalogUseCase) Book(ctx context.Context, id int64) (*model.Book, error) {
	if id <= 0 {
		return nil, fmt.Errorf("book id: %w", domainErrors.ErrValidation)
	}
	return u.books.GetByID(ctx, id)
}

// SellerProfile returns a seller account with its catalog size.
// Accounts that exist but are not sellers are reported as not found.
func (u *CatalogUseCase) SellerProfile(ctx context.Context, sellerID int64) (*model.SellerProfile, error) {
	if sellerID <= 0 {
		return nil, fmt.Errorf("seller id: %w", domainErrors.ErrValidation)
	}

	user, err := u.users.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleSeller {
		return nil, domainErrors.ErrNotFound
	}

	total, err := u.books.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("count seller books: %w", err)
	}

	return &model.SellerProfile{User: *user, TotalBooks: total}, nil
}
