package wallet_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/repositories/wallet"
	"github.com/KirkDiggler/innkeeper/internal/testutils"
)

const walletID = "session_1"

type WalletTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func(initial int64) wallet.Repository
	cleanup func()
}

func TestInMemoryWalletSuite(t *testing.T) {
	suite.Run(t, &WalletTestSuite{
		newRepo: func(initial int64) wallet.Repository {
			repo, err := wallet.NewInMemory(&wallet.InMemoryConfig{InitialBalance: initial})
			if err != nil {
				t.Fatal(err)
			}
			return repo
		},
	})
}

func TestRedisWalletSuite(t *testing.T) {
	s := &WalletTestSuite{}
	s.newRepo = func(initial int64) wallet.Repository {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		s.cleanup = cleanup
		repo, err := wallet.NewRedisRepository(&wallet.RedisConfig{Client: client, InitialBalance: initial})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *WalletTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cleanup = nil
}

func (s *WalletTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *WalletTestSuite) TestNewWalletStartsAtInitialBalance() {
	repo := s.newRepo(500)

	out, err := repo.Balance(s.ctx, wallet.BalanceInput{WalletID: walletID})
	s.Require().NoError(err)
	s.Equal(int64(500), out.Balance)
}

func (s *WalletTestSuite) TestCreditAndDebit() {
	repo := s.newRepo(100)

	credit, err := repo.Credit(s.ctx, wallet.CreditInput{WalletID: walletID, Amount: 250})
	s.Require().NoError(err)
	s.Equal(int64(350), credit.Balance)

	debit, err := repo.Debit(s.ctx, wallet.DebitInput{WalletID: walletID, Amount: 300})
	s.Require().NoError(err)
	s.Equal(int64(50), debit.Balance)

	out, err := repo.Balance(s.ctx, wallet.BalanceInput{WalletID: walletID})
	s.Require().NoError(err)
	s.Equal(int64(50), out.Balance)
}

func (s *WalletTestSuite) TestDebitInsufficientFunds() {
	repo := s.newRepo(40)

	_, err := repo.Debit(s.ctx, wallet.DebitInput{WalletID: walletID, Amount: 41})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	out, err := repo.Balance(s.ctx, wallet.BalanceInput{WalletID: walletID})
	s.Require().NoError(err)
	s.Equal(int64(40), out.Balance, "failed debit leaves the balance alone")

	exact, err := repo.Debit(s.ctx, wallet.DebitInput{WalletID: walletID, Amount: 40})
	s.Require().NoError(err)
	s.Zero(exact.Balance)
}

func (s *WalletTestSuite) TestInvalidInput() {
	repo := s.newRepo(0)

	_, err := repo.Balance(s.ctx, wallet.BalanceInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = repo.Credit(s.ctx, wallet.CreditInput{WalletID: walletID, Amount: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = repo.Debit(s.ctx, wallet.DebitInput{WalletID: walletID, Amount: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *WalletTestSuite) TestWalletsAreIndependent() {
	repo := s.newRepo(10)

	_, err := repo.Credit(s.ctx, wallet.CreditInput{WalletID: "a", Amount: 5})
	s.Require().NoError(err)

	out, err := repo.Balance(s.ctx, wallet.BalanceInput{WalletID: "b"})
	s.Require().NoError(err)
	s.Equal(int64(10), out.Balance)
}

func TestRedisWallet_ExistingBalanceSurvives(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithContext(t, func(mr *miniredis.Miniredis) {
		_ = mr.Set("wallet:"+walletID, "1200")
	})
	defer cleanup()

	repo, err := wallet.NewRedisRepository(&wallet.RedisConfig{Client: client, InitialBalance: 100})
	if err != nil {
		t.Fatal(err)
	}

	out, err := repo.Credit(context.Background(), wallet.CreditInput{WalletID: walletID, Amount: 1})
	if err != nil {
		t.Fatal(err)
	}
	if out.Balance != 1201 {
		t.Fatalf("expected 1201, got %d", out.Balance)
	}
}

func TestNewRedisRepository_RequiresClient(t *testing.T) {
	_, err := wallet.NewRedisRepository(&wallet.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
