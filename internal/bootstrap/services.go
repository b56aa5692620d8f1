package bootstrap

import (
	"github.com/dhanushlnaik/mimisanv2/internal/casino"
	"github.com/dhanushlnaik/mimisanv2/internal/community"
	"github.com/dhanushlnaik/mimisanv2/internal/config"
	"github.com/dhanushlnaik/mimisanv2/internal/cooldown"
	"github.com/dhanushlnaik/mimisanv2/internal/dungeon"
	"github.com/dhanushlnaik/mimisanv2/internal/inventory"
	"github.com/dhanushlnaik/mimisanv2/internal/ledger"
	"github.com/dhanushlnaik/mimisanv2/internal/market"
	"github.com/dhanushlnaik/mimisanv2/internal/progression"
	"github.com/dhanushlnaik/mimisanv2/internal/reward"
	"github.com/dhanushlnaik/mimisanv2/internal/salary"
	"github.com/dhanushlnaik/mimisanv2/internal/server"
	"github.com/dhanushlnaik/mimisanv2/internal/voice"
)

// Services is the wired service graph plus the voice tracker the scheduler drives
type Services struct {
	server.Services
	VoiceTracker *voice.Tracker
}

// InitializeServices builds every service over repos. notifier may be nil.
func InitializeServices(cfg *config.Config, repos *Repositories, notifier community.Notifier) *Services {
	communitySvc := community.NewService(repos.Community, community.Config{
		CacheSize: cfg.ConfigCacheSize,
		CacheTTL:  cfg.ConfigCacheTTL,
	}, notifier)

	src := reward.NewSource()
	engine := reward.NewEngine(src, nil)

	cooldowns := cooldown.NewTracker(cooldown.Config{
		DevMode:    cfg.DevMode,
		Duration:   cfg.XPCooldown,
		MaxEntries: cfg.CooldownEntries,
	})

	progressionSvc := progression.NewService(repos.Progression, communitySvc, cooldowns, src)
	tracker := voice.NewTracker(progressionSvc)

	return &Services{
		Services: server.Services{
			Ledger:      ledger.NewService(repos.Ledger),
			Progression: progressionSvc,
			Inventory:   inventory.NewService(repos.Inventory),
			Market:      market.NewService(repos.Market, communitySvc),
			Casino:      casino.NewService(repos.Casino, communitySvc, engine),
			Dungeon:     dungeon.NewService(repos.Dungeon, communitySvc, engine),
			Salary:      salary.NewService(repos.Salary, repos.Community),
			Community:   communitySvc,
			Voice:       tracker,
		},
		VoiceTracker: tracker,
	}
}
