package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// GamesRepository implements repository.Casino and repository.Dungeon for PostgreSQL
type GamesRepository struct {
	queries
	pool *pgxpool.Pool
}

// NewGamesRepository creates a new GamesRepository
func NewGamesRepository(pool *pgxpool.Pool) *GamesRepository {
	return &GamesRepository{queries: queries{db: pool}, pool: pool}
}

func (r *GamesRepository) BeginCasinoTx(ctx context.Context) (repository.CasinoTx, error) {
	return beginTx(ctx, r.pool)
}

func (r *GamesRepository) BeginDungeonTx(ctx context.Context) (repository.DungeonTx, error) {
	return beginTx(ctx, r.pool)
}

func (t *pgTx) InsertCasinoRound(ctx context.Context, round *domain.CasinoRound) error {
	const query = `
		INSERT INTO casino_rounds (user_id, community_id, game, bet, outcome, payout, played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := t.tx.QueryRow(ctx, query, round.UserID, round.CommunityID, round.Game, round.Bet, round.Outcome, round.Payout, round.PlayedAt).
		Scan(&round.ID)
	if err != nil {
		return storeErr(OpInsertRound, err)
	}
	return nil
}

func (t *pgTx) InsertDungeonRun(ctx context.Context, run *domain.DungeonRun) error {
	const query = `
		INSERT INTO dungeon_runs (user_id, community_id, rank, entry_fee, outcome, payout, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := t.tx.QueryRow(ctx, query, run.UserID, run.CommunityID, run.Rank, run.EntryFee, run.Outcome, run.Payout, run.CompletedAt).
		Scan(&run.ID)
	if err != nil {
		return storeErr(OpInsertRun, err)
	}
	return nil
}

var (
	_ repository.Casino  = (*GamesRepository)(nil)
	_ repository.Dungeon = (*GamesRepository)(nil)
)
