package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// CommunityRepository implements repository.Community for PostgreSQL
type CommunityRepository struct {
	db *pgxpool.Pool
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{db: db}
}

const configColumns = `community_id, casino_enabled, dungeons_enabled, market_enabled, salary_mode,
	salary_base, salary_data, xp_rate_chat, xp_rate_vc, xp_channel_mode, xp_channels, updated_at`

func scanConfig(row pgx.Row) (*domain.CommunityConfig, error) {
	var cfg domain.CommunityConfig
	var data []byte
	if err := row.Scan(&cfg.CommunityID, &cfg.CasinoEnabled, &cfg.DungeonsEnabled, &cfg.MarketEnabled, &cfg.SalaryMode,
		&cfg.SalaryBase, &data, &cfg.XPRateChat, &cfg.XPRateVC, &cfg.XPChannelMode, &cfg.XPChannels, &cfg.UpdatedAt); err != nil {
		return nil, err
	}
	if cfg.XPChannels == nil {
		cfg.XPChannels = []string{}
	}
	cfg.SalaryData = map[string]int64{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &cfg.SalaryData); err != nil {
			return nil, fmt.Errorf("%s: %w", OpDecodeSalary, err)
		}
	}
	return &cfg, nil
}

func (r *CommunityRepository) getConfig(ctx context.Context, communityID string) (*domain.CommunityConfig, error) {
	return scanConfig(r.db.QueryRow(ctx, `SELECT `+configColumns+` FROM community_configs WHERE community_id = $1`, communityID))
}

// GetOrCreateConfig inserts the defaults on first access. Concurrent first reads
// both fall through to the same stored row.
func (r *CommunityRepository) GetOrCreateConfig(ctx context.Context, communityID string) (*domain.CommunityConfig, error) {
	cfg, err := r.getConfig(ctx, communityID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storeErr(OpGetConfig, err)
	}

	if err := r.insertConfig(ctx, domain.DefaultCommunityConfig(communityID), false); err != nil {
		return nil, err
	}
	cfg, err = r.getConfig(ctx, communityID)
	if err != nil {
		return nil, storeErr(OpGetConfig, err)
	}
	return cfg, nil
}

func (r *CommunityRepository) SaveConfig(ctx context.Context, cfg *domain.CommunityConfig) error {
	return r.insertConfig(ctx, cfg, true)
}

func (r *CommunityRepository) insertConfig(ctx context.Context, cfg *domain.CommunityConfig, overwrite bool) error {
	query := `
		INSERT INTO community_configs (community_id, casino_enabled, dungeons_enabled, market_enabled,
			salary_mode, salary_base, salary_data, xp_rate_chat, xp_rate_vc, xp_channel_mode, xp_channels, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`
	if overwrite {
		query += `
		ON CONFLICT (community_id) DO UPDATE SET
			casino_enabled = EXCLUDED.casino_enabled,
			dungeons_enabled = EXCLUDED.dungeons_enabled,
			market_enabled = EXCLUDED.market_enabled,
			salary_mode = EXCLUDED.salary_mode,
			salary_base = EXCLUDED.salary_base,
			salary_data = EXCLUDED.salary_data,
			xp_rate_chat = EXCLUDED.xp_rate_chat,
			xp_rate_vc = EXCLUDED.xp_rate_vc,
			xp_channel_mode = EXCLUDED.xp_channel_mode,
			xp_channels = EXCLUDED.xp_channels,
			updated_at = NOW()`
	} else {
		query += ` ON CONFLICT (community_id) DO NOTHING`
	}

	data := cfg.SalaryData
	if data == nil {
		data = map[string]int64{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", OpEncodeSalary, err)
	}

	mode := cfg.XPChannelMode
	if mode == "" {
		mode = domain.XPChannelBlacklist
	}
	channels := cfg.XPChannels
	if channels == nil {
		channels = []string{}
	}

	_, err = r.db.Exec(ctx, query, cfg.CommunityID, cfg.CasinoEnabled, cfg.DungeonsEnabled, cfg.MarketEnabled,
		string(cfg.SalaryMode), cfg.SalaryBase, encoded, cfg.XPRateChat, cfg.XPRateVC, string(mode), channels)
	if err != nil {
		return storeErr(OpSaveConfig, err)
	}
	return nil
}

func (r *CommunityRepository) ListConfigs(ctx context.Context) ([]domain.CommunityConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT `+configColumns+` FROM community_configs ORDER BY community_id`)
	if err != nil {
		return nil, storeErr(OpListConfigs, err)
	}
	defer rows.Close()

	configs := []domain.CommunityConfig{}
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, storeErr(OpListConfigs, err)
		}
		configs = append(configs, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(OpListConfigs, err)
	}
	return configs, nil
}

var _ repository.Community = (*CommunityRepository)(nil)
