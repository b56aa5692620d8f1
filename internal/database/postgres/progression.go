package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// ProgressionRepository implements repository.Progression for PostgreSQL
type ProgressionRepository struct {
	queries
	pool *pgxpool.Pool
}

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(pool *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{queries: queries{db: pool}, pool: pool}
}

func (r *ProgressionRepository) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	return beginTx(ctx, r.pool)
}

const upsertLevelSQL = `
	INSERT INTO levels (community_id, user_id)
	VALUES ($1, $2)
	ON CONFLICT (community_id, user_id) DO UPDATE SET community_id = EXCLUDED.community_id
	RETURNING xp, level, last_xp_at
`

func (q queries) upsertLevel(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error) {
	rec := domain.LevelRecord{CommunityID: communityID, UserID: userID}
	if err := q.db.QueryRow(ctx, upsertLevelSQL, communityID, userID).Scan(&rec.XP, &rec.Level, &rec.LastXPAt); err != nil {
		return nil, storeErr(OpGetLevel, err)
	}
	return &rec, nil
}

func (r *ProgressionRepository) GetLevel(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error) {
	const query = `SELECT xp, level, last_xp_at FROM levels WHERE community_id = $1 AND user_id = $2`
	rec := domain.NewLevelRecord(communityID, userID)
	err := r.db.QueryRow(ctx, query, communityID, userID).Scan(&rec.XP, &rec.Level, &rec.LastXPAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewLevelRecord(communityID, userID), nil
	}
	if err != nil {
		return nil, storeErr(OpGetLevel, err)
	}
	return rec, nil
}

func (r *ProgressionRepository) CountAhead(ctx context.Context, communityID string, level, xp int64) (int, error) {
	const query = `
		SELECT COUNT(*) FROM levels
		WHERE community_id = $1 AND (level > $2 OR (level = $2 AND xp > $3))
	`
	var n int
	if err := r.db.QueryRow(ctx, query, communityID, level, xp).Scan(&n); err != nil {
		return 0, storeErr(OpCountAhead, err)
	}
	return n, nil
}

func (r *ProgressionRepository) TopLevels(ctx context.Context, communityID string, limit int) ([]domain.LevelRecord, error) {
	const query = `
		SELECT user_id, xp, level, last_xp_at
		FROM levels
		WHERE community_id = $1
		ORDER BY level DESC, xp DESC, user_id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, communityID, limit)
	if err != nil {
		return nil, storeErr(OpTopLevels, err)
	}
	defer rows.Close()

	recs := []domain.LevelRecord{}
	for rows.Next() {
		rec := domain.LevelRecord{CommunityID: communityID}
		if err := rows.Scan(&rec.UserID, &rec.XP, &rec.Level, &rec.LastXPAt); err != nil {
			return nil, storeErr(OpTopLevels, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(OpTopLevels, err)
	}
	return recs, nil
}

// GetLevelForUpdate creates the row when missing; the upsert leaves it locked
func (t *pgTx) GetLevelForUpdate(ctx context.Context, communityID, userID string) (*domain.LevelRecord, error) {
	return t.upsertLevel(ctx, communityID, userID)
}

func (t *pgTx) SaveLevel(ctx context.Context, rec *domain.LevelRecord) error {
	const query = `
		INSERT INTO levels (community_id, user_id, xp, level, last_xp_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (community_id, user_id) DO UPDATE SET
			xp = EXCLUDED.xp, level = EXCLUDED.level, last_xp_at = EXCLUDED.last_xp_at
	`
	if _, err := t.tx.Exec(ctx, query, rec.CommunityID, rec.UserID, rec.XP, rec.Level, rec.LastXPAt); err != nil {
		return storeErr(OpSaveLevel, err)
	}
	return nil
}

func (t *pgTx) GetGlobalProfileForUpdate(ctx context.Context, userID string) (*domain.GlobalProfile, error) {
	p, err := scanProfile(t.tx.QueryRow(ctx, upsertProfile, userID), userID)
	if err != nil {
		return nil, storeErr(OpGetProfile, err)
	}
	return p, nil
}

func (t *pgTx) SaveGlobalLevel(ctx context.Context, profile *domain.GlobalProfile) error {
	const query = `UPDATE global_profiles SET global_xp = $2, global_level = $3 WHERE user_id = $1`
	if _, err := t.tx.Exec(ctx, query, profile.UserID, bigToNumeric(profile.GlobalXP), profile.GlobalLevel); err != nil {
		return storeErr(OpSaveGlobalXP, err)
	}
	return nil
}

var _ repository.Progression = (*ProgressionRepository)(nil)
