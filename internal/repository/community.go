package repository

import (
	"context"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// Community defines the interface for community config persistence
type Community interface {
	// GetOrCreateConfig returns the stored config, inserting defaults when absent
	GetOrCreateConfig(ctx context.Context, communityID string) (*domain.CommunityConfig, error)
	SaveConfig(ctx context.Context, cfg *domain.CommunityConfig) error
	ListConfigs(ctx context.Context) ([]domain.CommunityConfig, error)
}
