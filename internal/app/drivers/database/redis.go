package database

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"lapswim-service/internal/app/config"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to redis: %s", err.Error())
	}
	log.Println("Successfully connected to redis")

	return rdb
}
