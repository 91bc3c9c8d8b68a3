package wallet

import (
	"context"
	"errors"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	apperrors "github.com/KirkDiggler/innkeeper/internal/errors"
	redisclient "github.com/KirkDiggler/innkeeper/internal/redis"
)

const (
	// Key pattern: wallet:{wallet_id}
	walletKeyPrefix = "wallet:"

	maxDebitAttempts = 3
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client         redisclient.Client
	InitialBalance int64
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := apperrors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	apperrors.ValidateNonNegative("InitialBalance", c.InitialBalance, vb)

	return vb.Build()
}

type redisRepository struct {
	client  redisclient.Client
	initial int64
}

// NewRedisRepository creates a wallet store whose balance outlives the process
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:  cfg.Client,
		initial: cfg.InitialBalance,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) buildKey(walletID string) string {
	return walletKeyPrefix + walletID
}

// Balance returns the stored balance, or the starting balance for a new wallet
func (r *redisRepository) Balance(ctx context.Context, input BalanceInput) (*BalanceOutput, error) {
	if input.WalletID == "" {
		return nil, apperrors.InvalidArgument(errWalletIDEmpty)
	}

	bal, err := r.client.Get(ctx, r.buildKey(input.WalletID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &BalanceOutput{Balance: r.initial}, nil
		}
		return nil, apperrors.Wrapf(err, "failed to read wallet %s", input.WalletID)
	}

	return &BalanceOutput{Balance: bal}, nil
}

// Credit seeds a new wallet with the starting balance, then increments it
func (r *redisRepository) Credit(ctx context.Context, input CreditInput) (*CreditOutput, error) {
	if input.WalletID == "" {
		return nil, apperrors.InvalidArgument(errWalletIDEmpty)
	}
	if input.Amount < 0 {
		return nil, apperrors.InvalidArgument(errAmountNegative)
	}

	key := r.buildKey(input.WalletID)
	if err := r.client.SetNX(ctx, key, r.initial, 0).Err(); err != nil {
		return nil, apperrors.Wrapf(err, "failed to open wallet %s", input.WalletID)
	}

	bal, err := r.client.IncrBy(ctx, key, input.Amount).Result()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to credit wallet %s", input.WalletID)
	}

	return &CreditOutput{Balance: bal}, nil
}

// Debit checks and decrements the balance inside an optimistic transaction
func (r *redisRepository) Debit(ctx context.Context, input DebitInput) (*DebitOutput, error) {
	if input.WalletID == "" {
		return nil, apperrors.InvalidArgument(errWalletIDEmpty)
	}
	if input.Amount < 0 {
		return nil, apperrors.InvalidArgument(errAmountNegative)
	}

	key := r.buildKey(input.WalletID)
	var remaining int64

	txf := func(tx *redis.Tx) error {
		bal, err := tx.Get(ctx, key).Int64()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				return err
			}
			bal = r.initial
		}
		if bal < input.Amount {
			return apperrors.FailedPreconditionf(errInsufficientFmt, bal, input.Amount).
				WithMeta("wallet_id", input.WalletID)
		}

		remaining = bal - input.Amount
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, remaining, 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxDebitAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &DebitOutput{Balance: remaining}, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			slog.Debug("Wallet debit raced, retrying", "wallet_id", input.WalletID, "attempt", attempt)
			continue
		}
		if apperrors.IsFailedPrecondition(err) {
			return nil, err
		}
		return nil, apperrors.Wrapf(err, "failed to debit wallet %s", input.WalletID)
	}

	return nil, apperrors.Unavailablef("wallet %s busy after %d attempts", input.WalletID, maxDebitAttempts)
}
