package wallet

import (
	"context"
	"sync"

	"github.com/KirkDiggler/innkeeper/internal/errors"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	InitialBalance int64
}

// Validate checks the starting balance
func (c *InMemoryConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("InitialBalance", c.InitialBalance, vb)
	return vb.Build()
}

type inMemoryRepository struct {
	mu       sync.Mutex
	initial  int64
	balances map[string]int64
}

// NewInMemory creates a process-local wallet store
func NewInMemory(cfg *InMemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &inMemoryRepository{
		initial:  cfg.InitialBalance,
		balances: make(map[string]int64),
	}, nil
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) balance(id string) int64 {
	if bal, ok := r.balances[id]; ok {
		return bal
	}
	return r.initial
}

// Balance returns the current balance
func (r *inMemoryRepository) Balance(_ context.Context, input BalanceInput) (*BalanceOutput, error) {
	if input.WalletID == "" {
		return nil, errors.InvalidArgument(errWalletIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return &BalanceOutput{Balance: r.balance(input.WalletID)}, nil
}

// Credit adds coins
func (r *inMemoryRepository) Credit(_ context.Context, input CreditInput) (*CreditOutput, error) {
	if input.WalletID == "" {
		return nil, errors.InvalidArgument(errWalletIDEmpty)
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument(errAmountNegative)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bal := r.balance(input.WalletID) + input.Amount
	r.balances[input.WalletID] = bal
	return &CreditOutput{Balance: bal}, nil
}

// Debit spends coins if the balance covers them
func (r *inMemoryRepository) Debit(_ context.Context, input DebitInput) (*DebitOutput, error) {
	if input.WalletID == "" {
		return nil, errors.InvalidArgument(errWalletIDEmpty)
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument(errAmountNegative)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bal := r.balance(input.WalletID)
	if bal < input.Amount {
		return nil, errors.FailedPreconditionf(errInsufficientFmt, bal, input.Amount).
			WithMeta("wallet_id", input.WalletID)
	}
	bal -= input.Amount
	r.balances[input.WalletID] = bal
	return &DebitOutput{Balance: bal}, nil
}
