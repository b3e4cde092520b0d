package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/domain/model"
	"github.com/AshisChetia/bookmart/internal/domain/repository"
	"github.com/AshisChetia/bookmart/internal/pkg/grouping"
)

const (
	// suggestionLimit is a hard contract: never more than four books.
	suggestionLimit = 4
	// trendingCandidates bounds the global best-seller pool stage two
	// draws from.
	trendingCandidates = 10

	reasonTopSelling = "Top Selling"
	reasonTrending   = "Trending Now"
)

// SuggestionUseCase produces the smart-suggestion set for a user via
// three guarded stages: personalized, trending, random. Each stage
// only runs while fewer than four books have been collected.
type SuggestionUseCase struct {
	orders repository.OrderRepository
	books  repository.BookRepository
}

// NewSuggestionUseCase constructs SuggestionUseCase.
func NewSuggestionUseCase(orders repository.OrderRepository, books repository.BookRepository) *SuggestionUseCase {
	return &SuggestionUseCase{orders: orders, books: books}
}

// ForUser runs the suggestion cascade for one user.
func (u *SuggestionUseCase) ForUser(ctx context.Context, userID int64) (*model.SuggestionSet, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user id: %w", domainErrors.ErrValidation)
	}

	purchases, err := u.orders.PurchasesByBuyer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("scan purchases: %w", err)
	}

	purchasedIDs := make([]int64, 0, len(purchases))
	categories := grouping.New[string, struct{}]()
	for _, p := range purchases {
		purchasedIDs = append(purchasedIDs, p.BookID)
		// Orders whose book was deleted carry no category.
		if p.Category != nil {
			categories.Set(*p.Category, struct{}{})
		}
	}

	set := &model.SuggestionSet{Reason: reasonTopSelling}

	// Stage one: personalized by purchased categories.
	if categories.Len() > 0 {
		personal, err := u.books.FindByCategories(ctx, categories.Keys(), purchasedIDs, suggestionLimit)
		if err != nil {
			return nil, fmt.Errorf("personalized suggestions: %w", err)
		}
		if len(personal) > 0 {
			set.Reason = "Because you like " + categories.Keys()[0]
		}
		set.Books = personal
	}

	// Stage two: global trending fallback. Purchased ids are excluded
	// again on top of the stage-one exclusion, deliberately.
	if len(set.Books) < suggestionLimit {
		trending, err := u.trendingFill(ctx, purchasedIDs, set.Books)
		if err != nil {
			return nil, err
		}
		if len(set.Books) == 0 && len(trending) == suggestionLimit {
			set.Reason = reasonTrending
		}
		set.Books = append(set.Books, trending...)
	}

	// Stage three: random fill, excluding only what is already picked.
	if len(set.Books) < suggestionLimit {
		need := suggestionLimit - len(set.Books)
		filler, err := u.books.FindAnyExcluding(ctx, bookIDs(set.Books), need)
		if err != nil {
			return nil, fmt.Errorf("fallback suggestions: %w", err)
		}
		set.Books = append(set.Books, filler...)
	}

	return set, nil
}

func (u *SuggestionUseCase) trendingFill(ctx context.Context, purchasedIDs []int64, picked []model.Book) ([]model.Book, error) {
	candidates, err := u.orders.TopSellingBookIDs(ctx, trendingCandidates)
	if err != nil {
		return nil, fmt.Errorf("trending candidates: %w", err)
	}

	excluded := make(map[int64]struct{}, len(purchasedIDs)+len(picked))
	for _, id := range purchasedIDs {
		excluded[id] = struct{}{}
	}
	for _, b := range picked {
		excluded[b.ID] = struct{}{}
	}

	need := suggestionLimit - len(picked)
	keep := make([]int64, 0, need)
	for _, id := range candidates {
		if _, skip := excluded[id]; skip {
			continue
		}
		keep = append(keep, id)
		if len(keep) == need {
			break
		}
	}
	if len(keep) == 0 {
		return nil, nil
	}

	books, err := u.books.FindByIDs(ctx, keep)
	if err != nil {
		return nil, fmt.Errorf("trending suggestions: %w", err)
	}
	return books, nil
}

func bookIDs(books []model.Book) []int64 {
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}
