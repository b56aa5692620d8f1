package progression

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dhanushlnaik/mimisanv2/internal/cooldown"
	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/reward"
	"github.com/dhanushlnaik/mimisanv2/internal/testing/fakestore"
)

const community = "guild-1"

// MockConfigProvider implements ConfigProvider for testing
type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) Get(ctx context.Context, communityID string) (*domain.CommunityConfig, error) {
	args := m.Called(ctx, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityConfig), args.Error(1)
}

func configWithRates(chat, vc float64) *domain.CommunityConfig {
	cfg := domain.DefaultCommunityConfig(community)
	cfg.XPRateChat = chat
	cfg.XPRateVC = vc
	return cfg
}

func setup(src reward.Source, cfg *domain.CommunityConfig) (*service, *fakestore.Store, *MockConfigProvider) {
	store := fakestore.New()
	configs := new(MockConfigProvider)
	if cfg != nil {
		configs.On("Get", mock.Anything, community).Return(cfg, nil)
	}
	svc := NewService(store.Progression(), configs, cooldown.NewTracker(cooldown.Config{}), src).(*service)
	return svc, store, configs
}

func TestAddXp_LevelUpWithCarry(t *testing.T) {
	svc, store, _ := setup(&reward.FixedSource{}, nil)
	ctx := context.Background()
	store.SetLevel(domain.LevelRecord{CommunityID: community, UserID: "u1", Level: 1, XP: 140})

	res, err := svc.AddXp(ctx, XPGrant{CommunityID: community, UserID: "u1", Amount: 20})
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, int64(2), res.Level)
	assert.Equal(t, int64(5), res.XP)

	rec, err := svc.GetLevel(ctx, community, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.Level)
	assert.Equal(t, int64(5), rec.XP)
	assert.NotNil(t, rec.LastXPAt)
}

func TestAddXp_Cooldown(t *testing.T) {
	svc, store, _ := setup(&reward.FixedSource{}, nil)
	ctx := context.Background()

	_, err := svc.AddXp(ctx, XPGrant{CommunityID: community, UserID: "u1", Amount: 10})
	require.NoError(t, err)

	_, err = svc.AddXp(ctx, XPGrant{CommunityID: community, UserID: "u1", Amount: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOnCooldown))
	assert.Equal(t, domain.KindOnCooldown, domain.KindOf(err))

	// No state change from the rejected call
	rec, _ := store.GetLevel(ctx, community, "u1")
	assert.Equal(t, int64(10), rec.XP)

	// A zero-length window admits immediately
	_, err = svc.AddXp(ctx, XPGrant{CommunityID: community, UserID: "u1", Amount: 10, Cooldown: time.Nanosecond})
	require.NoError(t, err)
}

func TestAddXp_DefaultDrawScaledByRate(t *testing.T) {
	// IntN(11) -> 10 gives the top of the range, 25
	svc, _, configs := setup(&reward.FixedSource{Ints: []int{10}}, configWithRates(1.5, 1))
	ctx := context.Background()

	res, err := svc.AddXp(ctx, XPGrant{CommunityID: community, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(37), res.Granted)
	assert.Equal(t, int64(37), res.XP)
	configs.AssertExpectations(t)
}

func TestAddXp_StoreFailureResetsCooldown(t *testing.T) {
	svc, store, _ := setup(&reward.FixedSource{}, nil)
	ctx := context.Background()
	store.FailOn("SaveLevel", errors.New("boom"))

	_, err := svc.AddXp(ctx, XPGrant{CommunityID: community, UserID: "u1", Amount: 10})
	require.Error(t, err)
	assert.Equal(t, domain.KindStoreUnavailable, domain.KindOf(err))

	store.FailOn("SaveLevel", nil)
	_, err = svc.AddXp(ctx, XPGrant{CommunityID: community, UserID: "u1", Amount: 10})
	assert.NoError(t, err)
}

func TestAddXp_ConfigFailure(t *testing.T) {
	store := fakestore.New()
	configs := new(MockConfigProvider)
	configs.On("Get", mock.Anything, community).Return(nil, errors.New("down")).Once()
	configs.On("Get", mock.Anything, community).Return(configWithRates(1, 1), nil)
	svc := NewService(store.Progression(), configs, cooldown.NewTracker(cooldown.Config{}), &reward.FixedSource{Ints: []int{0}})

	_, err := svc.AddXp(context.Background(), XPGrant{CommunityID: community, UserID: "u1"})
	require.Error(t, err)

	// Cooldown was released
	res, err := svc.AddXp(context.Background(), XPGrant{CommunityID: community, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.Granted)
}

func TestAddXp_NegativeAmount(t *testing.T) {
	svc, _, _ := setup(&reward.FixedSource{}, nil)
	_, err := svc.AddXp(context.Background(), XPGrant{CommunityID: community, UserID: "u1", Amount: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
}

func TestGrantXp_IgnoresCooldown(t *testing.T) {
	svc, _, _ := setup(&reward.FixedSource{}, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.GrantXp(ctx, community, "u1", 50)
		require.NoError(t, err)
	}
	rec, err := svc.GetLevel(ctx, community, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(150), rec.XP)

	// At most one level per grant
	res, err := svc.GrantXp(ctx, community, "u1", 5000)
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, int64(2), res.Level)
	assert.Equal(t, int64(150+5000-155), res.XP)
}

func TestAddGlobalXp(t *testing.T) {
	svc, _, _ := setup(&reward.FixedSource{}, nil)
	ctx := context.Background()

	res, err := svc.AddGlobalXp(ctx, "u1", 100)
	require.NoError(t, err)
	assert.False(t, res.LeveledUp)
	assert.Equal(t, int64(1), res.Level)

	res, err = svc.AddGlobalXp(ctx, "u1", 600)
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, int64(4), res.Level)
	assert.Equal(t, int64(30), res.XP.Int64())

	_, err = svc.AddGlobalXp(ctx, "u1", 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
}

func TestRecordMessage(t *testing.T) {
	// Draw 20 with a 0.5 chat rate grants 10 community XP and 20 global XP
	svc, store, _ := setup(&reward.FixedSource{Ints: []int{5, 5}}, configWithRates(0.5, 1))
	ctx := context.Background()

	res, err := svc.RecordMessage(ctx, community, "general", "u1")
	require.NoError(t, err)
	require.NotNil(t, res.Community)
	assert.Equal(t, int64(10), res.Community.Granted)
	require.NotNil(t, res.Global)
	assert.Equal(t, int64(20), res.Global.XP.Int64())

	// Inside the cooldown the community track is skipped but global XP still accrues
	res, err = svc.RecordMessage(ctx, community, "general", "u1")
	require.NoError(t, err)
	assert.Nil(t, res.Community)
	require.NotNil(t, res.Global)
	assert.Equal(t, int64(40), res.Global.XP.Int64())

	rec, err := svc.GetLevel(ctx, community, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), rec.XP)

	profile, err := store.GetOrCreateGlobalProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(40), profile.GlobalXP.Int64())
}

func TestRecordMessage_ChannelRules(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.XPChannelMode
		channels []string
		channel  string
		earns    bool
	}{
		{"no rules", domain.XPChannelBlacklist, nil, "general", true},
		{"blacklisted", domain.XPChannelBlacklist, []string{"spam"}, "spam", false},
		{"not blacklisted", domain.XPChannelBlacklist, []string{"spam"}, "general", true},
		{"whitelisted", domain.XPChannelWhitelist, []string{"general"}, "general", true},
		{"not whitelisted", domain.XPChannelWhitelist, []string{"general"}, "memes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := configWithRates(1, 1)
			cfg.XPChannelMode = tt.mode
			cfg.XPChannels = tt.channels
			svc, _, _ := setup(&reward.FixedSource{Ints: []int{0}}, cfg)

			res, err := svc.RecordMessage(context.Background(), community, tt.channel, "u1")
			require.NoError(t, err)
			if tt.earns {
				require.NotNil(t, res.Community)
				assert.Equal(t, int64(ChatXPMin), res.Community.Granted)
				assert.NotNil(t, res.Global)
			} else {
				assert.Nil(t, res.Community)
				assert.Nil(t, res.Global)
			}
		})
	}
}

func TestRecordVoiceMinute(t *testing.T) {
	svc, _, _ := setup(&reward.FixedSource{}, configWithRates(1, 2))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := svc.RecordVoiceMinute(ctx, community, "u1")
		require.NoError(t, err)
		require.NotNil(t, res.Community)
		assert.Equal(t, int64(20), res.Community.Granted)
	}
	rec, _ := svc.GetLevel(ctx, community, "u1")
	assert.Equal(t, int64(40), rec.XP)
}

func TestGetRankAndLeaderboard(t *testing.T) {
	svc, store, _ := setup(&reward.FixedSource{}, nil)
	ctx := context.Background()
	store.SetLevel(domain.LevelRecord{CommunityID: community, UserID: "a", Level: 3, XP: 10})
	store.SetLevel(domain.LevelRecord{CommunityID: community, UserID: "b", Level: 3, XP: 50})
	store.SetLevel(domain.LevelRecord{CommunityID: community, UserID: "c", Level: 2, XP: 200})
	store.SetLevel(domain.LevelRecord{CommunityID: "other", UserID: "z", Level: 99})

	rank, err := svc.GetRank(ctx, community, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, rank.Rank)
	assert.Equal(t, XPForLevel(3), rank.Next)

	rank, err = svc.GetRank(ctx, community, "b")
	require.NoError(t, err)
	assert.Equal(t, 1, rank.Rank)

	// Looking up a member with no XP does not enrol them
	rank, err = svc.GetRank(ctx, community, "ghost")
	require.NoError(t, err)
	assert.Equal(t, 4, rank.Rank)
	assert.Equal(t, int64(1), rank.Level)
	assert.Zero(t, rank.XP)

	top, err := svc.Leaderboard(ctx, community, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{top[0].UserID, top[1].UserID, top[2].UserID})
}
