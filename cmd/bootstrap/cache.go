package bootstrap

import (
	"context"

	"koskita/internal/infra/cache"
	"koskita/internal/pkg/config"
	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			cache.NewRankingCache,
			fx.As(new(queries.SearchCache)),
			fx.As(new(commands.KosCacheInvalidator)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
