// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"wanderhub/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

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

// CacheAuthSubject stores a tokenHash -> "role:subjectID" mapping with a TTL so
// repeated authenticated requests skip the Mongo lookup.
func CacheAuthSubject(tokenHash, role, subjectID string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, AuthCachePrefix+tokenHash, role+":"+subjectID, AuthCacheTTL).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to cache auth subject: %v", err)
	}
}

// LookupAuthSubject resolves a cached tokenHash to its (role, subjectID) pair.
// Returns empty strings on a miss.
func LookupAuthSubject(tokenHash string) (role string, subjectID string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	val, err := client.Get(ctx, AuthCachePrefix+tokenHash).Result()
	if err != nil {
		return "", ""
	}
	for i := 0; i < len(val); i++ {
		if val[i] == ':' {
			return val[:i], val[i+1:]
		}
	}
	return "", ""
}

// EvictAuthSubject removes a cached token mapping (used on token revocation).
func EvictAuthSubject(tokenHash string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, AuthCachePrefix+tokenHash).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to evict auth subject: %v", err)
	}
}
