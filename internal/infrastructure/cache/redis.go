package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient cria o cliente Redis e verifica a conexão
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("falha ao conectar ao Redis: %w", err)
	}
	return client, nil
}
