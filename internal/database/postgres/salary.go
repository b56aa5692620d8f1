package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// SalaryRepository implements repository.Salary for PostgreSQL.
// Every payout is one set-based statement, so a batch is all-or-nothing per community.
type SalaryRepository struct {
	db *pgxpool.Pool
}

// NewSalaryRepository creates a new SalaryRepository
func NewSalaryRepository(db *pgxpool.Pool) *SalaryRepository {
	return &SalaryRepository{db: db}
}

func (r *SalaryRepository) PayLinearSalary(ctx context.Context, communityID string, base int64) (int64, error) {
	const query = `
		INSERT INTO accounts (community_id, user_id, balance)
		SELECT community_id, user_id, level * $2
		FROM levels
		WHERE community_id = $1
		ON CONFLICT (community_id, user_id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance
	`
	tag, err := r.db.Exec(ctx, query, communityID, base)
	if err != nil {
		return 0, storeErr(OpLinearSalary, err)
	}
	return tag.RowsAffected(), nil
}

// PayTieredSalary picks, per member, the highest-ordinal tier containing the level
func (r *SalaryRepository) PayTieredSalary(ctx context.Context, communityID string, tiers []domain.SalaryTier) (int64, error) {
	const query = `
		INSERT INTO accounts (community_id, user_id, balance)
		SELECT l.community_id, l.user_id, t.amount
		FROM levels l
		CROSS JOIN LATERAL (
			SELECT tier.amount
			FROM unnest($2::bigint[], $3::bigint[], $4::bigint[]) WITH ORDINALITY AS tier(min_level, max_level, amount, ord)
			WHERE l.level BETWEEN tier.min_level AND tier.max_level
			ORDER BY tier.ord DESC
			LIMIT 1
		) t
		WHERE l.community_id = $1
		ON CONFLICT (community_id, user_id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance
	`
	if len(tiers) == 0 {
		return 0, nil
	}
	mins := make([]int64, len(tiers))
	maxs := make([]int64, len(tiers))
	amounts := make([]int64, len(tiers))
	for i, tier := range tiers {
		mins[i], maxs[i], amounts[i] = tier.Min, tier.Max, tier.Amount
	}

	tag, err := r.db.Exec(ctx, query, communityID, mins, maxs, amounts)
	if err != nil {
		return 0, storeErr(OpTieredSalary, err)
	}
	return tag.RowsAffected(), nil
}

// PayWeeklyGlobalSalary credits round(level^exponent * constant) to every global profile
func (r *SalaryRepository) PayWeeklyGlobalSalary(ctx context.Context, exponent float64, constant int64) (int64, error) {
	const query = `
		UPDATE global_profiles SET
			balance = balance + w.amount,
			total_earnings = total_earnings + w.amount,
			last_weekly_at = NOW()
		FROM (
			SELECT user_id, ROUND(POWER(global_level::numeric, $1::float8::numeric) * $2) AS amount
			FROM global_profiles
		) w
		WHERE global_profiles.user_id = w.user_id
	`
	tag, err := r.db.Exec(ctx, query, exponent, constant)
	if err != nil {
		return 0, storeErr(OpWeeklySalary, err)
	}
	return tag.RowsAffected(), nil
}

var _ repository.Salary = (*SalaryRepository)(nil)
