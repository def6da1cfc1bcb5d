// api/db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Cached payloads are encrypted only when a key is configured.
	if key := viper.GetString("redis.encryptionKey"); key != "" {
		if len(key) != 32 {
			return fmt.Errorf("invalid encryption key length: must be 32 bytes")
		}
		encryptionKey = []byte(key)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	if encryptionKey == nil {
		return plaintext, nil
	}
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	if encryptionKey == nil {
		return ciphertext, nil
	}
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// GetCachedJSON decodes the value under key into out. A miss returns false and no error.
func GetCachedJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	encoded, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Cache miss", zap.String("key", key))
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	payload, err := decrypt(sealed)
	if err != nil {
		return false, fmt.Errorf("failed to decrypt %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	logger.Debug("Value retrieved from cache", zap.String("key", key))
	return true, nil
}

// cacheIfNewerScript writes the payload only when the incoming revision is not older than the
// one recorded in the companion revision key.
var cacheIfNewerScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[2]) or '-1')
if tonumber(ARGV[1]) < current then
  return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
  redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
  redis.call('SET', KEYS[2], ARGV[1], 'PX', ttl)
else
  redis.call('SET', KEYS[1], ARGV[2])
  redis.call('SET', KEYS[2], ARGV[1])
end
return 1
`)

func revisionKey(key string) string { return key + ":rev" }

// CacheJSONIfNewer stores value under key unless a newer revision is already cached. It reports
// whether the write happened.
func CacheJSONIfNewer(ctx context.Context, key string, revision int64, value interface{}) (bool, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	sealed, err := encrypt(payload)
	if err != nil {
		return false, fmt.Errorf("failed to encrypt %s: %w", key, err)
	}

	ttl := viper.GetDuration("redis.defaultCacheTTL")
	written, err := cacheIfNewerScript.Run(ctx, RedisClient,
		[]string{key, revisionKey(key)},
		revision, base64.StdEncoding.EncodeToString(sealed), ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to cache %s: %w", key, err)
	}
	if written == 0 {
		logger.Debug("Stale cache write skipped", zap.String("key", key), zap.Int64("revision", revision))
		return false, nil
	}
	logger.Debug("Value cached successfully", zap.String("key", key), zap.Int64("revision", revision))
	return true, nil
}

func DeleteCached(ctx context.Context, key string) error {
	if err := RedisClient.Del(ctx, key, revisionKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from cache: %w", key, err)
	}
	logger.Debug("Cache entry deleted", zap.String("key", key))
	return nil
}

// RateLimit records one hit for key in a sliding window and reports whether it is within limit.
func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
