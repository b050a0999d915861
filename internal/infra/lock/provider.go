package lock

import (
	"context"
	"log/slog"

	"partnerauth/config"
	"partnerauth/internal/domain/lifecycle"
	"partnerauth/internal/domain/service"
	"partnerauth/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New picks the redis locker when redis is configured and the in-process one otherwise.
func New(params Params) (service.RotationLocker, error) {
	if !params.Config.RedisEnabled() {
		params.Logger.Info("Redis not configured, using in-process rotation lock")

		return NewLocalLocker(), nil
	}

	redisCfg := params.Config.Redis
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis rotation lock ready", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "failed to close redis client")
		},
	})

	return NewRedisLocker(client, redisCfg.LockTTL, redisCfg.LockWait, params.Logger), nil
}
