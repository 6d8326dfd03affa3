// File: utils/lock.go
package utils

import (
	"context"
	"log"
	"time"

	"carebook/config"
	"carebook/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var lockClient *redis.Client

// InitLockClient initializes the Redis client backing write locks.
func InitLockClient() {
	lockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := lockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Lock): %v", err)
	}
}

// GetLockClient returns the Redis client used for write locks.
func GetLockClient() *redis.Client {
	if lockClient == nil {
		InitLockClient()
	}
	return lockClient
}

// releaseScript deletes the lock key only if it still holds our token, so an
// expired-and-reacquired lock is never released by the previous holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// ConsultantLock serializes schedule writes per consultant. Validation reads
// and the subsequent write happen under the lock, so two writers cannot both
// pass the overlap check against a stale read.
type ConsultantLock struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewConsultantLock builds a lock manager with a sane default TTL.
func NewConsultantLock(client *redis.Client) *ConsultantLock {
	return &ConsultantLock{Client: client, TTL: 10 * time.Second}
}

// Acquire takes the per-consultant write lock, retrying briefly before giving
// up. The returned release func is safe to call exactly once.
func (l *ConsultantLock) Acquire(ctx context.Context, consultantID string) (func(), error) {
	key := "schedule:write-lock:" + consultantID
	token := uuid.New().String()

	deadline := time.Now().Add(2 * time.Second)
	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, models.NewConflictError("", "schedule is being modified by another request, try again")
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.Client, []string{key}, token).Err()
	}
	return release, nil
}
