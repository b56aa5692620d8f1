package repository

import (
	"context"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

// Salary defines the interface for batch salary payouts.
// Each method is one atomic statement and returns the number of members paid.
type Salary interface {
	PayLinearSalary(ctx context.Context, communityID string, base int64) (int64, error)

	// PayTieredSalary pays each member the amount of the last tier (in slice order) containing their level
	PayTieredSalary(ctx context.Context, communityID string, tiers []domain.SalaryTier) (int64, error)

	// PayWeeklyGlobalSalary adds round(level^exponent * constant) to every global balance
	PayWeeklyGlobalSalary(ctx context.Context, exponent float64, constant int64) (int64, error)
}
