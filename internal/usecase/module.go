package usecase

import (
	"go.uber.org/fx"

	"github.com/AshisChetia/bookmart/internal/config"
	"github.com/AshisChetia/bookmart/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewDashboardUseCase,
	NewTopSellersUseCase,
	NewSuggestionUseCase,
	NewCategoryStatsUseCase,
	func(users repository.UserRepository, books repository.BookRepository, cfg *config.Config) *CatalogUseCase {
		return NewCatalogUseCase(users, books, cfg.CatalogPageSize)
	},
)
