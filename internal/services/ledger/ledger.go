// Package ledger tracks what each guest owes and pays it into the wallet.
package ledger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/pkg/clock"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/repositories/wallet"
)

//go:generate mockgen -destination=mock/mock_ledger.go -package=ledgermock github.com/KirkDiggler/innkeeper/internal/services/ledger Ledger

// DefaultPaymentLogSize bounds the settled payment history
const DefaultPaymentLogSize = 100

// Ledger records charges and settles them against the wallet
type Ledger interface {
	PostCharge(ctx context.Context, input *PostChargeInput) (*PostChargeOutput, error)

	// Settle pays every unpaid charge of an agent at once. A second call
	// returns zero and leaves the wallet untouched.
	Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error)

	HasUnpaid(agentID string) bool
	TotalUnpaid(agentID string) int64
	PaymentLog() []entities.PaymentRecord
}

// PostChargeInput is a charge for one room stay
type PostChargeInput struct {
	AgentID string
	Amount  int64
	RoomID  string
}

// PostChargeOutput returns the agent's outstanding total after the charge
type PostChargeOutput struct {
	Unpaid int64
}

// SettleInput names the paying agent
type SettleInput struct {
	AgentID string
}

// SettleOutput reports what was paid and the wallet balance afterwards
type SettleOutput struct {
	Amount  int64
	Balance int64
	Records []entities.PaymentRecord
}

// Config holds the dependencies for the ledger
type Config struct {
	Wallet         wallet.Repository
	WalletID       string
	Clock          clock.Clock
	EventBus       events.EventBus
	PaymentLogSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Wallet == nil {
		vb.RequiredField("Wallet")
	}
	errors.ValidateRequired("WalletID", c.WalletID, vb)
	errors.ValidateNonNegative("PaymentLogSize", c.PaymentLogSize, vb)

	return vb.Build()
}

type ledger struct {
	wallet   wallet.Repository
	walletID string
	clock    clock.Clock
	bus      events.EventBus
	source   *notify.Source
	logSize  int

	mu      sync.Mutex
	pending []entities.PaymentRecord
	log     []entities.PaymentRecord
}

// New creates an empty ledger paying into cfg.WalletID
func New(cfg *Config) (Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	size := cfg.PaymentLogSize
	if size == 0 {
		size = DefaultPaymentLogSize
	}

	return &ledger{
		wallet:   cfg.Wallet,
		walletID: cfg.WalletID,
		clock:    c,
		bus:      cfg.EventBus,
		source:   notify.NewSource("ledger", "payment_ledger"),
		logSize:  size,
	}, nil
}

func (l *ledger) PostCharge(_ context.Context, input *PostChargeInput) (*PostChargeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("AgentID", input.AgentID, vb)
	errors.ValidateRequired("RoomID", input.RoomID, vb)
	errors.ValidateNonNegative("Amount", input.Amount, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, entities.PaymentRecord{
		AgentID:   input.AgentID,
		Amount:    input.Amount,
		RoomID:    input.RoomID,
		CreatedAt: l.clock.Now(),
	})

	return &PostChargeOutput{Unpaid: l.unpaidLocked(input.AgentID)}, nil
}

func (l *ledger) Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error) {
	if input == nil || input.AgentID == "" {
		return nil, errors.InvalidArgument("agent ID is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		settled []entities.PaymentRecord
		keep    []entities.PaymentRecord
		amount  int64
	)
	for _, rec := range l.pending {
		if rec.AgentID == input.AgentID && !rec.Paid {
			rec.Paid = true
			amount += rec.Amount
			settled = append(settled, rec)
			continue
		}
		keep = append(keep, rec)
	}

	if len(settled) == 0 {
		return &SettleOutput{}, nil
	}

	// nothing is marked paid unless the wallet accepted the credit
	credit, err := l.wallet.Credit(ctx, wallet.CreditInput{WalletID: l.walletID, Amount: amount})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to credit %d for %s", amount, input.AgentID)
	}

	l.pending = keep
	l.log = append(l.log, settled...)
	if over := len(l.log) - l.logSize; over > 0 {
		l.log = append(l.log[:0:0], l.log[over:]...)
	}

	slog.Info("Payment settled",
		"agent_id", input.AgentID,
		"amount", amount,
		"charges", len(settled),
		"balance", credit.Balance,
	)

	err = notify.Publish(ctx, l.bus, notify.TopicPaymentSettled, l.source, notify.Data{
		"agent_id": input.AgentID,
		"amount":   amount,
		"balance":  credit.Balance,
	})
	if err != nil {
		slog.Warn("Failed to publish settlement", "error", err)
	}

	return &SettleOutput{Amount: amount, Balance: credit.Balance, Records: settled}, nil
}

func (l *ledger) HasUnpaid(agentID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, rec := range l.pending {
		if rec.AgentID == agentID && !rec.Paid {
			return true
		}
	}
	return false
}

func (l *ledger) TotalUnpaid(agentID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unpaidLocked(agentID)
}

func (l *ledger) unpaidLocked(agentID string) int64 {
	var total int64
	for _, rec := range l.pending {
		if rec.AgentID == agentID && !rec.Paid {
			total += rec.Amount
		}
	}
	return total
}

func (l *ledger) PaymentLog() []entities.PaymentRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entities.PaymentRecord(nil), l.log...)
}
