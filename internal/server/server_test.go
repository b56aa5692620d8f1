package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/voice"
)

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

type noopGranter struct{}

func (noopGranter) RecordVoiceMinute(context.Context, string, string) (*domain.ActivityResult, error) {
	return &domain.ActivityResult{}, nil
}

const testAPIKey = "test-key"

func newTestRouter(pool stubPool) http.Handler {
	return NewRouter(testAPIKey, nil, pool, Services{Voice: voice.NewTracker(noopGranter{})})
}

func serve(h http.Handler, method, path string, withKey bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if withKey {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router := newTestRouter(stubPool{})

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := serve(router, http.MethodGet, path, false)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_ReadyzReportsDatabaseDown(t *testing.T) {
	router := newTestRouter(stubPool{err: errors.New("dial tcp: refused")})

	rec := serve(router, http.MethodGet, "/readyz", false)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "refused")
}

func TestRouter_APIRequiresKey(t *testing.T) {
	router := newTestRouter(stubPool{})

	rec := serve(router, http.MethodGet, "/api/v1/communities/c1/balance?user_id=u1", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(router, http.MethodPost, "/api/v1/admin/salary/daily", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(stubPool{})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		// handlers reject these before reaching a service
		{"balance needs user", http.MethodGet, "/api/v1/communities/c1/balance", http.StatusBadRequest},
		{"rank needs user", http.MethodGet, "/api/v1/communities/c1/rank", http.StatusBadRequest},
		{"transfer needs body", http.MethodPost, "/api/v1/communities/c1/transfer", http.StatusBadRequest},
		{"buy needs numeric listing", http.MethodPost, "/api/v1/communities/c1/market/listings/x/buy", http.StatusBadRequest},
		{"equip needs numeric relic", http.MethodPost, "/api/v1/users/u1/relics/x/equip", http.StatusBadRequest},
		{"admin credit needs body", http.MethodPost, "/api/v1/admin/communities/c1/credit", http.StatusBadRequest},
		{"global credit needs body", http.MethodPost, "/api/v1/admin/users/u1/global/credit", http.StatusBadRequest},
		{"voice roster", http.MethodGet, "/api/v1/communities/c1/voice", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nowhere", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/api/v1/communities/c1/transfer", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path, true)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
