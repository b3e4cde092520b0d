package di

import (
	"go.uber.org/fx"

	"github.com/AshisChetia/bookmart/internal/app"
	"github.com/AshisChetia/bookmart/internal/config"
	"github.com/AshisChetia/bookmart/internal/logger"
	"github.com/AshisChetia/bookmart/internal/server/http/handlers"
	"github.com/AshisChetia/bookmart/internal/server/http/router"
	"github.com/AshisChetia/bookmart/internal/storage/postgres"
	"github.com/AshisChetia/bookmart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.MarketFacade) handlers.MarketFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
