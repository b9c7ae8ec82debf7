package infra

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

func InitRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password, // Empty if no password
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to redis at %s: %v", addr, err)
		_ = client.Close()
		return nil, err
	}

	log.Printf("Connected to redis at %s", addr)
	return client, nil
}

func CloseRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Error closing redis connection: %v", err)
	}
}
