package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// TransferResult reports both balances after a transfer
type TransferResult struct {
	FromBalance int64 `json:"from_balance"`
	ToBalance   int64 `json:"to_balance"`
}

// Service defines the interface for currency operations
type Service interface {
	GetBalance(ctx context.Context, communityID, userID string) (*domain.Account, error)
	Credit(ctx context.Context, communityID, userID string, amount int64) (int64, error)
	Debit(ctx context.Context, communityID, userID string, amount int64) (int64, error)
	Transfer(ctx context.Context, communityID, fromID, toID string, amount int64) (*TransferResult, error)
	ClaimDaily(ctx context.Context, communityID, userID string) (*domain.DailyClaim, error)
	Leaderboard(ctx context.Context, communityID string, limit int) ([]domain.Account, error)

	GetGlobalProfile(ctx context.Context, userID string) (*domain.GlobalProfile, error)
	CreditGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error)
	DebitGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error)
	TransferGlobal(ctx context.Context, fromID, toID string, amount *big.Int) error
}

type service struct {
	repo repository.Ledger
	now  func() time.Time
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo, now: time.Now}
}

func validAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return nil
}

func validBigAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAmount, amount)
	}
	return nil
}

func (s *service) GetBalance(ctx context.Context, communityID, userID string) (*domain.Account, error) {
	acct, err := s.repo.GetOrCreateAccount(ctx, communityID, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	return acct, nil
}

func (s *service) Credit(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	if err := validAmount(amount); err != nil {
		return 0, err
	}
	bal, err := s.repo.CreditAccount(ctx, communityID, userID, amount)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCreditFailed, err)
	}
	return bal, nil
}

func (s *service) Debit(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	if err := validAmount(amount); err != nil {
		return 0, err
	}
	bal, err := s.repo.DebitAccount(ctx, communityID, userID, amount)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgDebitFailed, err)
	}
	return bal, nil
}

func (s *service) Transfer(ctx context.Context, communityID, fromID, toID string, amount int64) (*TransferResult, error) {
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, domain.ErrSelfTrade
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockAccounts(ctx, communityID, fromID, toID); err != nil {
		return nil, fmt.Errorf(ErrMsgLockFailed, err)
	}

	var res TransferResult
	if res.FromBalance, err = tx.DebitAccount(ctx, communityID, fromID, amount); err != nil {
		return nil, fmt.Errorf(ErrMsgDebitFailed, err)
	}
	if res.ToBalance, err = tx.CreditAccount(ctx, communityID, toID, amount); err != nil {
		return nil, fmt.Errorf(ErrMsgCreditFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgTransferred, "community", communityID, "from", fromID, "to", toID, "amount", amount)
	return &res, nil
}

func (s *service) ClaimDaily(ctx context.Context, communityID, userID string) (*domain.DailyClaim, error) {
	log := logger.FromContext(ctx)
	now := s.now().UTC()

	acct, claimed, err := s.repo.ClaimDaily(ctx, communityID, userID, domain.DailyRewardAmount, now, domain.DailyClaimWindow)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgClaimDailyFailed, err)
	}

	if !claimed {
		next := now.Add(domain.DailyClaimWindow)
		if acct.DailyClaimedAt != nil {
			next = acct.DailyClaimedAt.Add(domain.DailyClaimWindow)
		}
		log.Debug(LogMsgDailyRejected, "community", communityID, "user", userID, "next_claim_at", next)
		return nil, &domain.DailyClaimError{NextClaimAt: next}
	}

	log.Info(LogMsgDailyClaimed, "community", communityID, "user", userID, "balance", acct.Balance)
	return &domain.DailyClaim{
		Amount:      domain.DailyRewardAmount,
		Balance:     acct.Balance,
		NextClaimAt: now.Add(domain.DailyClaimWindow),
	}, nil
}

func (s *service) Leaderboard(ctx context.Context, communityID string, limit int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	accts, err := s.repo.TopAccounts(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLeaderboardFailed, err)
	}
	return accts, nil
}

func (s *service) GetGlobalProfile(ctx context.Context, userID string) (*domain.GlobalProfile, error) {
	p, err := s.repo.GetOrCreateGlobalProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}
	return p, nil
}

func (s *service) CreditGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	if err := validBigAmount(amount); err != nil {
		return nil, err
	}
	bal, err := s.repo.CreditGlobal(ctx, userID, amount)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreditGlobalFailed, err)
	}
	return bal, nil
}

func (s *service) DebitGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	if err := validBigAmount(amount); err != nil {
		return nil, err
	}
	bal, err := s.repo.DebitGlobal(ctx, userID, amount)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDebitGlobalFailed, err)
	}
	return bal, nil
}

func (s *service) TransferGlobal(ctx context.Context, fromID, toID string, amount *big.Int) error {
	if err := validBigAmount(amount); err != nil {
		return err
	}
	if fromID == toID {
		return domain.ErrSelfTrade
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockGlobalProfiles(ctx, fromID, toID); err != nil {
		return fmt.Errorf(ErrMsgLockFailed, err)
	}
	if _, err := tx.DebitGlobal(ctx, fromID, amount); err != nil {
		return fmt.Errorf(ErrMsgDebitGlobalFailed, err)
	}
	if _, err := tx.CreditGlobal(ctx, toID, amount); err != nil {
		return fmt.Errorf(ErrMsgCreditGlobalFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgGlobalTransferred, "from", fromID, "to", toID, "amount", amount.String())
	return nil
}
