package utils

import (
	"context"
	"log"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (catalog snapshots, hot reads).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for bearer-token hashes.
	AuthCacheClient *redis.Client
	// SessionCacheClient holds in-progress booking wizard sessions.
	SessionCacheClient *redis.Client
	// ResetTokenClient holds short-lived password-reset tokens.
	ResetTokenClient *redis.Client
)

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// InitRedis initializes every Redis client the service uses.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Booking Sessions")
	ResetTokenClient = newRedisClient(config.AppConfig.RedisResetTokenDB, "Reset Tokens")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for bearer-token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	}
	return AuthCacheClient
}

// GetSessionCacheClient returns the Redis client for booking wizard sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Booking Sessions")
	}
	return SessionCacheClient
}

// GetResetTokenClient returns the Redis client for password-reset tokens.
func GetResetTokenClient() *redis.Client {
	if ResetTokenClient == nil {
		ResetTokenClient = newRedisClient(config.AppConfig.RedisResetTokenDB, "Reset Tokens")
	}
	return ResetTokenClient
}

// AuthCachePrefix namespaces token-hash keys in the auth cache.
const AuthCachePrefix = "authToken:"
