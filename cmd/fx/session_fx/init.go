package session_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"wanderly/internal/config"
	"wanderly/internal/infra"
	"wanderly/internal/services"
	mem "wanderly/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideSessionService)

// provideSessionStore uses redis when REDIS_ADDR is set and a process-local
// store otherwise.
func provideSessionStore(lc fx.Lifecycle, cfg *config.Config) (mem.SessionStore, error) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, sessions are kept in memory")
		return mem.NewMemorySessions(), nil
	}

	client, err := infra.InitRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseRedis(client)
			return nil
		},
	})
	return mem.NewRedisSessions(client), nil
}

func provideSessionService(store mem.SessionStore, cfg *config.Config) services.SessionServiceInterface {
	return services.NewSessionService(store, cfg.SessionTTL)
}
