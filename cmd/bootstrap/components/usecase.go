package components

import (
	"hotel-booking-api/internal/infra/cache"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSearchCache,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSearchQueries,
		queries.NewReservationQueries,
		queries.NewGuestQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewLoyaltyCommands,
		commands.NewGuestCommands,
	),
)

func NewSearchCache(cfg config.Config, rdb *redis.Client) queries.SearchCache {
	return cache.NewSearchCache(rdb, cfg.Redis.CacheTTL)
}
