package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhanushlnaik/mimisanv2/internal/database/postgres"
	"github.com/dhanushlnaik/mimisanv2/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Ledger      repository.Ledger
	Progression repository.Progression
	Inventory   repository.Inventory
	Market      repository.Market
	Casino      repository.Casino
	Dungeon     repository.Dungeon
	Salary      repository.Salary
	Community   repository.Community
}

// InitializeRepositories creates the PostgreSQL repositories over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	games := postgres.NewGamesRepository(dbPool)
	return &Repositories{
		Ledger:      postgres.NewLedgerRepository(dbPool),
		Progression: postgres.NewProgressionRepository(dbPool),
		Inventory:   postgres.NewInventoryRepository(dbPool),
		Market:      postgres.NewMarketRepository(dbPool),
		Casino:      games,
		Dungeon:     games,
		Salary:      postgres.NewSalaryRepository(dbPool),
		Community:   postgres.NewCommunityRepository(dbPool),
	}
}
