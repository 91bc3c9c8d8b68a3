// Package wallet provides storage for the player's coin balance. The balance
// is the one piece of state that lives for the whole session.
package wallet

import "context"

//go:generate mockgen -destination=mock/mock_repository.go -package=walletmock github.com/KirkDiggler/innkeeper/internal/repositories/wallet Repository

const (
	errWalletIDEmpty   = "wallet ID cannot be empty"
	errAmountNegative  = "amount cannot be negative"
	errInsufficientFmt = "insufficient funds: balance %d, cost %d"
)

// BalanceInput contains parameters for reading a balance
type BalanceInput struct {
	WalletID string
}

// BalanceOutput contains the current balance
type BalanceOutput struct {
	Balance int64
}

// CreditInput contains parameters for adding coins
type CreditInput struct {
	WalletID string
	Amount   int64
}

// CreditOutput contains the balance after the credit
type CreditOutput struct {
	Balance int64
}

// DebitInput contains parameters for spending coins
type DebitInput struct {
	WalletID string
	Amount   int64
}

// DebitOutput contains the balance after the debit
type DebitOutput struct {
	Balance int64
}

// Repository defines the interface for wallet storage operations
type Repository interface {
	// Balance returns the balance, the configured starting balance for a new wallet
	Balance(ctx context.Context, input BalanceInput) (*BalanceOutput, error)

	// Credit adds Amount to the balance
	Credit(ctx context.Context, input CreditInput) (*CreditOutput, error)

	// Debit removes Amount, failing with FAILED_PRECONDITION when the balance is short
	Debit(ctx context.Context, input DebitInput) (*DebitOutput, error)
}
