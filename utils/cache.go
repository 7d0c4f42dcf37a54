// File: vetcare/utils/cache.go
package utils

import (
	"context"
	"log"
	"strings"
	"time"

	"vetcare/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitCache()
	InitAuthCache()
}

// sessionTTL bounds how long a revoked token can still pass the cached
// session check; revocation takes full effect when the entry expires.
const sessionTTL = 5 * time.Minute

func sessionKey(tokenHash string) string {
	return "session:" + tokenHash
}

// CacheSession stores a token-hash -> principal mapping so the auth
// middleware can skip the database on repeat requests. The value is
// "<id>|<role>".
func CacheSession(tokenHash, id, role string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GetAuthCacheClient().Set(ctx, sessionKey(tokenHash), id+"|"+role, sessionTTL)
}

// GetCachedSession looks up a cached session by token hash, returning
// the principal's id and role.
func GetCachedSession(tokenHash string) (id, role string, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	val, err := GetAuthCacheClient().Get(ctx, sessionKey(tokenHash)).Result()
	if err != nil {
		return "", "", false
	}
	id, role, found := strings.Cut(val, "|")
	if !found || id == "" {
		return "", "", false
	}
	return id, role, true
}

// DropCachedSession removes a cached session, used on token revocation.
func DropCachedSession(tokenHash string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GetAuthCacheClient().Del(ctx, sessionKey(tokenHash))
}
