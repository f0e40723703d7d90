package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

//go:generate mockgen -source=withdraw_lock.go -destination=mock_withdraw_lock_test.go -package=services

// WithdrawLocker hands out per-family leases.
type WithdrawLocker interface {
	Acquire(ctx context.Context, familyID string) (token string, ok bool, err error)
	Release(ctx context.Context, familyID, token string) error
}

// Withdrawer is implemented by WithdrawService.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID, amount string) models.WithdrawalResult
}

// SerializedWithdrawService runs at most one withdrawal per family at a time.
// A second withdrawal for a busy family is rejected, not queued.
type SerializedWithdrawService struct {
	users    UserReader
	locker   WithdrawLocker
	delegate Withdrawer
}

func NewSerializedWithdrawService(users UserReader, locker WithdrawLocker, delegate Withdrawer) *SerializedWithdrawService {
	return &SerializedWithdrawService{users: users, locker: locker, delegate: delegate}
}

func (s *SerializedWithdrawService) Withdraw(ctx context.Context, userID, amount string) models.WithdrawalResult {
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.TrimSpace(amount) == "" {
		return s.delegate.Withdraw(ctx, userID, amount)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "error", err)
		return models.WithdrawalFailed(models.KindInternalError, "failed to load user")
	}
	if user == nil {
		// nothing to lock; the orchestrator reports the precise failure
		return s.delegate.Withdraw(ctx, userID, amount)
	}

	token, ok, err := s.locker.Acquire(ctx, user.FamilyID)
	if err != nil {
		logger.Log.Errorw("failed to acquire withdraw lock", "family_id", user.FamilyID, "error", err)
		return models.WithdrawalFailed(models.KindInternalError, "failed to acquire withdrawal lock")
	}
	if !ok {
		return models.WithdrawalFailed(models.KindWithdrawalInProgress, "another withdrawal for this family is in progress")
	}

	defer func() {
		// an unreleased lease expires after its TTL
		if err := s.locker.Release(context.WithoutCancel(ctx), user.FamilyID, token); err != nil {
			logger.Log.Warnw("failed to release withdraw lock", "family_id", user.FamilyID, "error", err)
		}
	}()

	return s.delegate.Withdraw(ctx, userID, amount)
}
