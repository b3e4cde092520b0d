package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/AshisChetia/bookmart/internal/domain/model"
	"github.com/AshisChetia/bookmart/internal/domain/repository"
	"github.com/AshisChetia/bookmart/internal/pkg/grouping"
)

// CategoryStatsUseCase aggregates global, case-normalized category
// counts.
type CategoryStatsUseCase struct {
	books repository.BookRepository
}

// NewCategoryStatsUseCase constructs CategoryStatsUseCase.
func NewCategoryStatsUseCase(books repository.BookRepository) *CategoryStatsUseCase {
	return &CategoryStatsUseCase{books: books}
}

// Stats buckets every book category case-insensitively. The display
// name keeps the casing of the first store-scan occurrence.
func (u *CategoryStatsUseCase) Stats(ctx context.Context) ([]model.CategoryBucket, error) {
	names, err := u.books.CategoriesInScanOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}

	buckets := grouping.New[string, model.CategoryBucket]()
	for _, name := range names {
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		display := name
		buckets.Update(key, func(b model.CategoryBucket) model.CategoryBucket {
			if b.Count == 0 {
				b.DisplayName = display
				b.Key = key
			}
			b.Count++
			return b
		})
	}

	result := buckets.Values()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result, nil
}
