package bootstrap

import (
	"koskita/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCookieConfig,
		NewRedisConfig,
	),
)

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie
}

func NewRedisConfig(cfg config.Config) config.RedisConfig {
	return cfg.Redis
}
