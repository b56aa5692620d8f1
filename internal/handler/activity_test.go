package handler

import (
	"context"
	"math/big"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/inventory"
	"github.com/dhanushlnaik/mimisanv2/internal/progression"
	"github.com/dhanushlnaik/mimisanv2/internal/voice"
)

func progressionRoutes(h *ProgressionHandler) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/communities/{communityID}/messages", h.HandleRecordMessage)
		r.Get("/communities/{communityID}/rank", h.HandleGetRank)
		r.Get("/communities/{communityID}/leaderboard/levels", h.HandleLevelLeaderboard)
	}
}

func TestHandleRecordMessage(t *testing.T) {
	t.Run("level up", func(t *testing.T) {
		svc := &MockProgressionService{}
		svc.On("RecordMessage", mock.Anything, "c1", "general", "u1").Return(&domain.ActivityResult{
			Community: &domain.XPResult{Granted: 20, LeveledUp: true, Level: 3, XP: 5},
			Global:    &domain.GlobalXPResult{Level: 1, XP: big.NewInt(40)},
		}, nil)

		w := doRequest(t, progressionRoutes(NewProgressionHandler(svc)), http.MethodPost, "/communities/c1/messages", MessageRequest{UserID: "u1", ChannelID: "general"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Level up! You reached level 3")
	})

	t.Run("cooldown is not an error", func(t *testing.T) {
		svc := &MockProgressionService{}
		svc.On("RecordMessage", mock.Anything, "c1", "", "u1").Return(&domain.ActivityResult{}, nil)

		w := doRequest(t, progressionRoutes(NewProgressionHandler(svc)), http.MethodPost, "/communities/c1/messages", MessageRequest{UserID: "u1"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"community"`)
		assert.NotContains(t, w.Body.String(), `"message"`)
	})

	t.Run("missing user", func(t *testing.T) {
		svc := &MockProgressionService{}
		w := doRequest(t, progressionRoutes(NewProgressionHandler(svc)), http.MethodPost, "/communities/c1/messages", MessageRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "RecordMessage")
	})
}

func TestHandleGetRank(t *testing.T) {
	svc := &MockProgressionService{}
	svc.On("GetRank", mock.Anything, "c1", "u1").Return(&progression.RankInfo{Rank: 2, Level: 10, XP: 1200, Next: 3500}, nil)

	w := doRequest(t, progressionRoutes(NewProgressionHandler(svc)), http.MethodGet, "/communities/c1/rank?user_id=u1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rank #2, level 10 (1,200/3,500 XP)")
}

func TestHandleLevelLeaderboard_StoreDown(t *testing.T) {
	svc := &MockProgressionService{}
	svc.On("Leaderboard", mock.Anything, "c1", 0).Return(nil, domain.ErrStoreUnavailable)

	w := doRequest(t, progressionRoutes(NewProgressionHandler(svc)), http.MethodGet, "/communities/c1/leaderboard/levels", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

type countingGranter struct{ calls int }

func (g *countingGranter) RecordVoiceMinute(context.Context, string, string) (*domain.ActivityResult, error) {
	g.calls++
	return &domain.ActivityResult{}, nil
}

func TestVoiceHandler_JoinTickLeave(t *testing.T) {
	granter := &countingGranter{}
	tracker := voice.NewTracker(granter)
	h := NewVoiceHandler(tracker)
	routes := func(r chi.Router) {
		r.Post("/communities/{communityID}/voice/join", h.HandleJoin)
		r.Post("/communities/{communityID}/voice/leave", h.HandleLeave)
		r.Get("/communities/{communityID}/voice", h.HandleActive)
	}

	w := doRequest(t, routes, http.MethodPost, "/communities/c1/voice/join", UserRequest{UserID: "u1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, routes, http.MethodGet, "/communities/c1/voice", nil)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)

	tracker.Tick(context.Background())
	tracker.Tick(context.Background())
	assert.Equal(t, 2, granter.calls)

	w = doRequest(t, routes, http.MethodPost, "/communities/c1/voice/leave", UserRequest{UserID: "u1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Voice session ended after 2 minutes")

	w = doRequest(t, routes, http.MethodPost, "/communities/c1/voice/leave", UserRequest{UserID: "u1"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, routes, http.MethodGet, "/communities/c1/voice", nil)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) ListRelics(ctx context.Context, userID string) ([]domain.Relic, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Relic), args.Error(1)
}

func (m *MockInventoryService) Equip(ctx context.Context, userID string, relicID int64) (*domain.Relic, error) {
	args := m.Called(ctx, userID, relicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Relic), args.Error(1)
}

func (m *MockInventoryService) Unequip(ctx context.Context, userID string, relicID int64) error {
	return m.Called(ctx, userID, relicID).Error(0)
}

func (m *MockInventoryService) AggregateStats(ctx context.Context, userID string) (domain.AggregateStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.AggregateStats), args.Error(1)
}

var _ inventory.Service = (*MockInventoryService)(nil)

func TestInventoryHandler(t *testing.T) {
	svc := &MockInventoryService{}
	h := NewInventoryHandler(svc)
	routes := func(r chi.Router) {
		r.Get("/users/{userID}/relics", h.HandleListRelics)
		r.Post("/users/{userID}/relics/{relicID}/equip", h.HandleEquip)
		r.Post("/users/{userID}/relics/{relicID}/unequip", h.HandleUnequip)
		r.Get("/users/{userID}/stats", h.HandleStats)
	}

	svc.On("Equip", mock.Anything, "u1", int64(3)).Return(nil, domain.ErrSlotLimitExceeded).Once()
	svc.On("Equip", mock.Anything, "u1", int64(4)).Return(&domain.Relic{ID: 4, Name: "Ancient Ring of E", Equipped: true}, nil).Once()
	svc.On("Unequip", mock.Anything, "u1", int64(5)).Return(domain.ErrRelicNotFound).Once()
	svc.On("AggregateStats", mock.Anything, "u1").Return(domain.AggregateStats{SalaryMult: 1.1025, XPMult: 1, DungeonBonus: 5}, nil).Once()
	svc.On("ListRelics", mock.Anything, "u1").Return([]domain.Relic{}, nil).Once()

	w := doRequest(t, routes, http.MethodPost, "/users/u1/relics/3/equip", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgSlotsFull)

	w = doRequest(t, routes, http.MethodPost, "/users/u1/relics/4/equip", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Equipped Ancient Ring of E")

	w = doRequest(t, routes, http.MethodPost, "/users/u1/relics/0/equip", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, routes, http.MethodPost, "/users/u1/relics/5/unequip", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, routes, http.MethodGet, "/users/u1/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dungeon_bonus":5`)

	w = doRequest(t, routes, http.MethodGet, "/users/u1/relics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	svc.AssertExpectations(t)
}
