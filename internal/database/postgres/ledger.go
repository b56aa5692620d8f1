package postgres

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	queries
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{queries: queries{db: pool}, pool: pool}
}

func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	return beginTx(ctx, r.pool)
}

// Upserting with a no-op update returns the row whether it was inserted or not
const upsertAccount = `
	INSERT INTO accounts (community_id, user_id)
	VALUES ($1, $2)
	ON CONFLICT (community_id, user_id) DO UPDATE SET community_id = EXCLUDED.community_id
	RETURNING balance, daily_claimed_at
`

func (q queries) GetOrCreateAccount(ctx context.Context, communityID, userID string) (*domain.Account, error) {
	acct := domain.Account{CommunityID: communityID, UserID: userID}
	if err := q.db.QueryRow(ctx, upsertAccount, communityID, userID).Scan(&acct.Balance, &acct.DailyClaimedAt); err != nil {
		return nil, storeErr(OpGetAccount, err)
	}
	return &acct, nil
}

func (q queries) CreditAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	const query = `
		INSERT INTO accounts (community_id, user_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (community_id, user_id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance
		RETURNING balance
	`
	var bal int64
	if err := q.db.QueryRow(ctx, query, communityID, userID, amount).Scan(&bal); err != nil {
		return 0, storeErr(OpCreditAccount, err)
	}
	return bal, nil
}

// DebitAccount is a single guarded update; a missing row reads as insufficient funds
func (q queries) DebitAccount(ctx context.Context, communityID, userID string, amount int64) (int64, error) {
	const query = `
		UPDATE accounts SET balance = balance - $3
		WHERE community_id = $1 AND user_id = $2 AND balance >= $3
		RETURNING balance
	`
	var bal int64
	err := q.db.QueryRow(ctx, query, communityID, userID, amount).Scan(&bal)
	if errors.Is(err, pgx.ErrNoRows) || isPgError(err, PgErrorCodeCheckViolation) {
		return 0, domain.ErrInsufficientFunds
	}
	if err != nil {
		return 0, storeErr(OpDebitAccount, err)
	}
	return bal, nil
}

const upsertProfile = `
	INSERT INTO global_profiles (user_id)
	VALUES ($1)
	ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
	RETURNING global_xp, global_level, reputation, balance, total_earnings, last_daily_at, last_weekly_at
`

func scanProfile(row pgx.Row, userID string) (*domain.GlobalProfile, error) {
	var xp, balance, earnings pgtype.Numeric
	p := domain.GlobalProfile{UserID: userID}
	if err := row.Scan(&xp, &p.GlobalLevel, &p.Reputation, &balance, &earnings, &p.LastDailyAt, &p.LastWeeklyAt); err != nil {
		return nil, err
	}
	var err error
	if p.GlobalXP, err = numericToBig(xp); err != nil {
		return nil, err
	}
	if p.Balance, err = numericToBig(balance); err != nil {
		return nil, err
	}
	if p.TotalEarnings, err = numericToBig(earnings); err != nil {
		return nil, err
	}
	return &p, nil
}

func (q queries) GetOrCreateGlobalProfile(ctx context.Context, userID string) (*domain.GlobalProfile, error) {
	p, err := scanProfile(q.db.QueryRow(ctx, upsertProfile, userID), userID)
	if err != nil {
		return nil, storeErr(OpGetProfile, err)
	}
	return p, nil
}

func (q queries) CreditGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	const query = `
		INSERT INTO global_profiles (user_id, balance, total_earnings)
		VALUES ($1, $2, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = global_profiles.balance + EXCLUDED.balance,
			total_earnings = global_profiles.total_earnings + EXCLUDED.balance
		RETURNING balance
	`
	var bal pgtype.Numeric
	if err := q.db.QueryRow(ctx, query, userID, bigToNumeric(amount)).Scan(&bal); err != nil {
		return nil, storeErr(OpCreditGlobal, err)
	}
	out, err := numericToBig(bal)
	if err != nil {
		return nil, storeErr(OpCreditGlobal, err)
	}
	return out, nil
}

func (q queries) DebitGlobal(ctx context.Context, userID string, amount *big.Int) (*big.Int, error) {
	const query = `
		UPDATE global_profiles SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`
	var bal pgtype.Numeric
	err := q.db.QueryRow(ctx, query, userID, bigToNumeric(amount)).Scan(&bal)
	if errors.Is(err, pgx.ErrNoRows) || isPgError(err, PgErrorCodeCheckViolation) {
		return nil, domain.ErrInsufficientFunds
	}
	if err != nil {
		return nil, storeErr(OpDebitGlobal, err)
	}
	out, err := numericToBig(bal)
	if err != nil {
		return nil, storeErr(OpDebitGlobal, err)
	}
	return out, nil
}

// ClaimDaily credits only when the previous stamp is at least window old.
// The guard lives in the UPDATE so two concurrent claims can't both pass.
func (r *LedgerRepository) ClaimDaily(ctx context.Context, communityID, userID string, amount int64, now time.Time, window time.Duration) (*domain.Account, bool, error) {
	const query = `
		UPDATE accounts SET balance = balance + $3, daily_claimed_at = $4
		WHERE community_id = $1 AND user_id = $2
		  AND (daily_claimed_at IS NULL OR daily_claimed_at <= $5)
		RETURNING balance, daily_claimed_at
	`
	if _, err := r.GetOrCreateAccount(ctx, communityID, userID); err != nil {
		return nil, false, err
	}

	acct := domain.Account{CommunityID: communityID, UserID: userID}
	err := r.db.QueryRow(ctx, query, communityID, userID, amount, now, now.Add(-window)).Scan(&acct.Balance, &acct.DailyClaimedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		current, err := r.GetOrCreateAccount(ctx, communityID, userID)
		if err != nil {
			return nil, false, err
		}
		return current, false, nil
	}
	if err != nil {
		return nil, false, storeErr(OpClaimDaily, err)
	}
	return &acct, true, nil
}

func (r *LedgerRepository) TopAccounts(ctx context.Context, communityID string, limit int) ([]domain.Account, error) {
	const query = `
		SELECT user_id, balance, daily_claimed_at
		FROM accounts
		WHERE community_id = $1
		ORDER BY balance DESC, user_id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, communityID, limit)
	if err != nil {
		return nil, storeErr(OpTopAccounts, err)
	}
	defer rows.Close()

	accts := []domain.Account{}
	for rows.Next() {
		a := domain.Account{CommunityID: communityID}
		if err := rows.Scan(&a.UserID, &a.Balance, &a.DailyClaimedAt); err != nil {
			return nil, storeErr(OpTopAccounts, err)
		}
		accts = append(accts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(OpTopAccounts, err)
	}
	return accts, nil
}

// LockAccounts locks (creating if needed) each account row in ascending user order
func (t *pgTx) LockAccounts(ctx context.Context, communityID string, userIDs ...string) error {
	for _, id := range sortedUnique(userIDs) {
		var bal int64
		var claimed *time.Time
		if err := t.tx.QueryRow(ctx, upsertAccount, communityID, id).Scan(&bal, &claimed); err != nil {
			return storeErr(OpLockAccounts, err)
		}
	}
	return nil
}

func (t *pgTx) LockGlobalProfiles(ctx context.Context, userIDs ...string) error {
	for _, id := range sortedUnique(userIDs) {
		if _, err := scanProfile(t.tx.QueryRow(ctx, upsertProfile, id), id); err != nil {
			return storeErr(OpLockProfiles, err)
		}
	}
	return nil
}

var _ repository.Ledger = (*LedgerRepository)(nil)
