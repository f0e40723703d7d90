package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
)

// ErrLockNotHeld is returned when releasing a lease that expired or belongs to someone else.
var ErrLockNotHeld = errors.New("withdraw lock not held")

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// WithdrawLockRepository hands out per-family withdrawal leases stored in Redis
type WithdrawLockRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWithdrawLockRepository(client *redis.Client, ttl time.Duration) *WithdrawLockRepository {
	return &WithdrawLockRepository{client: client, ttl: ttl}
}

func withdrawLockKey(familyID string) string {
	return fmt.Sprintf("withdraw_lock:%s", familyID)
}

// Acquire takes the family lease. ok is false when another holder has it.
func (r *WithdrawLockRepository) Acquire(ctx context.Context, familyID string) (token string, ok bool, err error) {
	key := withdrawLockKey(familyID)
	token = uuid.NewString()

	ok, err = r.client.SetNX(ctx, key, token, r.ttl).Result()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"ttl", r.ttl.String(),
		"result", ok,
		"error", err,
	)

	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the lease if token still owns it.
func (r *WithdrawLockRepository) Release(ctx context.Context, familyID, token string) error {
	key := withdrawLockKey(familyID)

	n, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int64()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}
