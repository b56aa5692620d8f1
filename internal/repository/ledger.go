package repository

import (
	"context"
	"math/big"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// AccountOps are the per-community balance primitives.
// DebitAccount must be a single conditional update that fails with
// domain.ErrInsufficientFunds instead of going negative.
type AccountOps interface {
	GetOrCreateAccount(ctx context.Context, communityID, userID string) (*domain.Account, error)
	CreditAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error)
	DebitAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error)
}

// GlobalOps are the cross-community balance primitives
type GlobalOps interface {
	GetOrCreateGlobalProfile(ctx context.Context, userID string) (*domain.GlobalProfile, error)
	CreditGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error)
	DebitGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error)
}

// LedgerTx is a transaction over both balance scopes.
// LockAccounts and LockGlobalProfiles take row locks in a stable order so
// opposing transfers can't deadlock.
type LedgerTx interface {
	Tx
	AccountOps
	GlobalOps
	LockAccounts(ctx context.Context, communityID string, userIDs ...string) error
	LockGlobalProfiles(ctx context.Context, userIDs ...string) error
}

// Ledger defines the interface for balance persistence
type Ledger interface {
	AccountOps
	GlobalOps

	// ClaimDaily credits amount and stamps now only if the previous claim is at
	// least window old. The returned account reflects the stored state either way.
	ClaimDaily(ctx context.Context, communityID, userID string, amount int64, now time.Time, window time.Duration) (*domain.Account, bool, error)
	TopAccounts(ctx context.Context, communityID string, limit int) ([]domain.Account, error)

	BeginTx(ctx context.Context) (LedgerTx, error)
}
