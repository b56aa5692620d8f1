package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dhanushlnaik/mimisanv2/internal/casino"
	"github.com/dhanushlnaik/mimisanv2/internal/community"
	"github.com/dhanushlnaik/mimisanv2/internal/database"
	"github.com/dhanushlnaik/mimisanv2/internal/dungeon"
	"github.com/dhanushlnaik/mimisanv2/internal/handler"
	"github.com/dhanushlnaik/mimisanv2/internal/inventory"
	"github.com/dhanushlnaik/mimisanv2/internal/ledger"
	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/market"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
	"github.com/dhanushlnaik/mimisanv2/internal/progression"
	"github.com/dhanushlnaik/mimisanv2/internal/salary"
)

// Services bundles everything the HTTP surface dispatches to
type Services struct {
	Ledger      ledger.Service
	Progression progression.Service
	Inventory   inventory.Service
	Market      market.Service
	Casino      casino.Service
	Dungeon     dungeon.Service
	Salary      salary.Service
	Community   community.Service
	Voice       handler.VoiceSessions
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	ledgerHandler := handler.NewLedgerHandler(svc.Ledger)
	progressionHandler := handler.NewProgressionHandler(svc.Progression)
	voiceHandler := handler.NewVoiceHandler(svc.Voice)
	inventoryHandler := handler.NewInventoryHandler(svc.Inventory)
	marketHandler := handler.NewMarketHandler(svc.Market)
	gamesHandler := handler.NewGamesHandler(svc.Casino, svc.Dungeon)
	communityHandler := handler.NewCommunityHandler(svc.Community)
	adminHandler := handler.NewAdminHandler(svc.Ledger, svc.Progression, svc.Salary, svc.Community)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/communities/{communityID}", func(r chi.Router) {
			r.Get("/balance", ledgerHandler.HandleGetBalance)
			r.Post("/transfer", ledgerHandler.HandleTransfer)
			r.Post("/daily", ledgerHandler.HandleClaimDaily)

			r.Route("/leaderboard", func(r chi.Router) {
				r.Get("/coins", ledgerHandler.HandleCoinLeaderboard)
				r.Get("/levels", progressionHandler.HandleLevelLeaderboard)
			})

			r.Post("/messages", progressionHandler.HandleRecordMessage)
			r.Get("/rank", progressionHandler.HandleGetRank)

			r.Route("/voice", func(r chi.Router) {
				r.Get("/", voiceHandler.HandleActive)
				r.Post("/join", voiceHandler.HandleJoin)
				r.Post("/leave", voiceHandler.HandleLeave)
			})

			r.Post("/casino/play", gamesHandler.HandlePlay)
			r.Post("/dungeons/enter", gamesHandler.HandleEnterDungeon)

			r.Route("/market", func(r chi.Router) {
				r.Get("/", marketHandler.HandleListActive)
				r.Post("/listings", marketHandler.HandleCreateListing)
				r.Post("/listings/{listingID}/buy", marketHandler.HandleBuyListing)
				r.Post("/listings/{listingID}/cancel", marketHandler.HandleCancelListing)
			})

			r.Get("/config", communityHandler.HandleGetConfig)
			r.Patch("/config", communityHandler.HandleUpdateConfig)
		})

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/profile", ledgerHandler.HandleGetProfile)
			r.Get("/relics", inventoryHandler.HandleListRelics)
			r.Post("/relics/{relicID}/equip", inventoryHandler.HandleEquip)
			r.Post("/relics/{relicID}/unequip", inventoryHandler.HandleUnequip)
			r.Get("/stats", inventoryHandler.HandleStats)
		})

		r.Post("/global/transfer", ledgerHandler.HandleGlobalTransfer)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/salary/daily", adminHandler.HandlePayDailySalary)
			r.Post("/salary/weekly", adminHandler.HandlePayWeeklySalary)
			r.Get("/communities", adminHandler.HandleListCommunities)

			r.Route("/communities/{communityID}", func(r chi.Router) {
				r.Post("/salary", adminHandler.HandlePayCommunitySalary)
				r.Post("/credit", adminHandler.HandleCredit)
				r.Post("/debit", adminHandler.HandleDebit)
				r.Post("/xp", adminHandler.HandleGrantXP)
			})

			r.Route("/users/{userID}/global", func(r chi.Router) {
				r.Post("/credit", adminHandler.HandleCreditGlobal)
				r.Post("/xp", adminHandler.HandleGrantGlobalXP)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range quietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
