// Package postgres implements the repository interfaces on PostgreSQL with pgx.
package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queries holds the statements shared by repositories and transactions
type queries struct {
	db querier
}

// storeErr wraps a driver failure so callers can classify it as StoreUnavailable
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// bigToNumeric encodes an integer for a NUMERIC column
func bigToNumeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		v = new(big.Int)
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Exp: 0, Valid: true}
}

// numericToBig decodes a NUMERIC column, truncating any fractional part
func numericToBig(n pgtype.Numeric) (*big.Int, error) {
	if !n.Valid {
		return new(big.Int), nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return nil, fmt.Errorf("%s: non-finite value", OpDecodeNumeric)
	}
	out := new(big.Int).Set(n.Int)
	if n.Exp == 0 {
		return out, nil
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(n.Exp))), nil)
	if n.Exp > 0 {
		return out.Mul(out, scale), nil
	}
	return out.Quo(out, scale), nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// sortedUnique returns the distinct ids in ascending order, the global lock order
func sortedUnique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// advisoryKey maps an owner id onto the positive bigint advisory lock space
func advisoryKey(ownerID string) int64 {
	sum := sha256.Sum256([]byte(AdvisoryLockPrefix + ownerID))
	return int64(binary.BigEndian.Uint64(sum[:8]) & AdvisoryLockKeyMask)
}

// pgTx implements every repository transaction interface on one pgx.Tx
type pgTx struct {
	queries
	tx pgx.Tx
}

func beginTx(ctx context.Context, pool *pgxpool.Pool) (*pgTx, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, storeErr(OpBeginTx, err)
	}
	return &pgTx{queries: queries{db: tx}, tx: tx}, nil
}

func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return storeErr(OpCommit, err)
	}
	return nil
}

func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return storeErr(OpRollback, err)
	}
	return nil
}

// LockOwner takes a transaction-scoped advisory lock on the owner
func (t *pgTx) LockOwner(ctx context.Context, ownerID string) error {
	if _, err := t.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, advisoryKey(ownerID)); err != nil {
		return storeErr(OpLockOwner, err)
	}
	return nil
}

var (
	_ repository.LedgerTx      = (*pgTx)(nil)
	_ repository.ProgressionTx = (*pgTx)(nil)
	_ repository.InventoryTx   = (*pgTx)(nil)
	_ repository.MarketTx      = (*pgTx)(nil)
	_ repository.CasinoTx      = (*pgTx)(nil)
	_ repository.DungeonTx     = (*pgTx)(nil)
)
