package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	queries
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{queries: queries{db: pool}, pool: pool}
}

func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return beginTx(ctx, r.pool)
}

const relicColumns = `id, owner_id, name, rarity, stats, is_equipped, source, obtained_at`

func scanRelic(row pgx.Row) (*domain.Relic, error) {
	var r domain.Relic
	var stats []byte
	if err := row.Scan(&r.ID, &r.OwnerID, &r.Name, &r.Rarity, &stats, &r.Equipped, &r.Source, &r.ObtainedAt); err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &r.Stats); err != nil {
			return nil, fmt.Errorf("%s: %w", OpDecodeStats, err)
		}
	}
	return &r, nil
}

func (q queries) CreateRelic(ctx context.Context, relic *domain.Relic) error {
	const query = `
		INSERT INTO relics (owner_id, name, rarity, stats, is_equipped, source, obtained_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING id, obtained_at
	`
	stats, err := json.Marshal(relic.Stats)
	if err != nil {
		return fmt.Errorf("%s: %w", OpEncodeStats, err)
	}
	var obtained *time.Time
	if !relic.ObtainedAt.IsZero() {
		obtained = &relic.ObtainedAt
	}
	err = q.db.QueryRow(ctx, query, relic.OwnerID, relic.Name, relic.Rarity, stats, relic.Equipped, relic.Source, obtained).
		Scan(&relic.ID, &relic.ObtainedAt)
	if err != nil {
		return storeErr(OpCreateRelic, err)
	}
	return nil
}

func (q queries) getRelic(ctx context.Context, relicID int64, forUpdate bool) (*domain.Relic, error) {
	query := `SELECT ` + relicColumns + ` FROM relics WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	r, err := scanRelic(q.db.QueryRow(ctx, query, relicID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRelicNotFound
	}
	if err != nil {
		return nil, storeErr(OpGetRelic, err)
	}
	return r, nil
}

func (q queries) GetRelic(ctx context.Context, relicID int64) (*domain.Relic, error) {
	return q.getRelic(ctx, relicID, false)
}

func (q queries) listRelics(ctx context.Context, ownerID string, equippedOnly bool) ([]domain.Relic, error) {
	query := `SELECT ` + relicColumns + ` FROM relics WHERE owner_id = $1`
	if equippedOnly {
		query += ` AND is_equipped`
	}
	query += ` ORDER BY is_equipped DESC, obtained_at DESC, id DESC`

	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, storeErr(OpListRelics, err)
	}
	defer rows.Close()

	relics := []domain.Relic{}
	for rows.Next() {
		r, err := scanRelic(rows)
		if err != nil {
			return nil, storeErr(OpListRelics, err)
		}
		relics = append(relics, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(OpListRelics, err)
	}
	return relics, nil
}

// ListRelics returns equipped relics first, then newest first
func (q queries) ListRelics(ctx context.Context, ownerID string) ([]domain.Relic, error) {
	return q.listRelics(ctx, ownerID, false)
}

func (q queries) ListEquipped(ctx context.Context, ownerID string) ([]domain.Relic, error) {
	return q.listRelics(ctx, ownerID, true)
}

// SetEquipped reports false when the relic is missing or owned by someone else
func (q queries) SetEquipped(ctx context.Context, ownerID string, relicID int64, equipped bool) (bool, error) {
	const query = `UPDATE relics SET is_equipped = $3 WHERE id = $2 AND owner_id = $1`
	tag, err := q.db.Exec(ctx, query, ownerID, relicID, equipped)
	if err != nil {
		return false, storeErr(OpSetEquipped, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *pgTx) CountEquipped(ctx context.Context, ownerID string) (int, error) {
	const query = `SELECT COUNT(*) FROM relics WHERE owner_id = $1 AND is_equipped`
	var n int
	if err := t.tx.QueryRow(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, storeErr(OpCountEquipped, err)
	}
	return n, nil
}

func (t *pgTx) GetRelicForUpdate(ctx context.Context, relicID int64) (*domain.Relic, error) {
	return t.getRelic(ctx, relicID, true)
}

// TransferRelic moves ownership only if fromID still owns the relic and always unequips it
func (t *pgTx) TransferRelic(ctx context.Context, relicID int64, fromID, toID string) (bool, error) {
	const query = `UPDATE relics SET owner_id = $3, is_equipped = FALSE WHERE id = $1 AND owner_id = $2`
	tag, err := t.tx.Exec(ctx, query, relicID, fromID, toID)
	if err != nil {
		return false, storeErr(OpTransferRelic, err)
	}
	return tag.RowsAffected() == 1, nil
}

var _ repository.Inventory = (*InventoryRepository)(nil)
