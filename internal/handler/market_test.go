package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
	"github.com/dhanushlnaik/mimisanv2/internal/market"
)

func marketRoutes(h *MarketHandler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/communities/{communityID}/market", h.HandleListActive)
		r.Post("/communities/{communityID}/market/listings", h.HandleCreateListing)
		r.Post("/communities/{communityID}/market/listings/{listingID}/buy", h.HandleBuyListing)
		r.Post("/communities/{communityID}/market/listings/{listingID}/cancel", h.HandleCancelListing)
	}
}

func TestHandleListActive_Paging(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		svc := &MockMarketService{}
		svc.On("ListActive", mock.Anything, "c1", 1, market.DefaultPageSize).
			Return(&domain.ListingPage{Listings: []domain.ListingView{}, Page: 1, PageSize: market.DefaultPageSize}, nil)

		w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodGet, "/communities/c1/market", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"listings":[]`)
		svc.AssertExpectations(t)
	})

	t.Run("explicit page", func(t *testing.T) {
		svc := &MockMarketService{}
		svc.On("ListActive", mock.Anything, "c1", 3, 20).Return(&domain.ListingPage{Listings: []domain.ListingView{}, Total: 41, Page: 3, PageSize: 20}, nil)

		w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodGet, "/communities/c1/market?page=3&page_size=20", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":41`)
		svc.AssertExpectations(t)
	})
}

func TestHandleCreateListing(t *testing.T) {
	tests := []struct {
		name       string
		body       CreateListingRequest
		setup      func(*MockMarketService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing relic",
			body:       CreateListingRequest{SellerID: "s", Price: 100},
			setup:      func(*MockMarketService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"relicid"`,
		},
		{
			name: "equipped relic",
			body: CreateListingRequest{SellerID: "s", RelicID: 4, Price: 100},
			setup: func(m *MockMarketService) {
				m.On("CreateListing", mock.Anything, "s", "c1", int64(4), int64(100)).Return(nil, domain.ErrRelicEquipped)
			},
			wantStatus: http.StatusConflict,
			wantBody:   ErrMsgEquippedRelic,
		},
		{
			name: "market disabled",
			body: CreateListingRequest{SellerID: "s", RelicID: 4, Price: 100},
			setup: func(m *MockMarketService) {
				m.On("CreateListing", mock.Anything, "s", "c1", int64(4), int64(100)).
					Return(nil, &domain.FeatureDisabledError{Feature: domain.FeatureMarket})
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "Market is disabled in this community",
		},
		{
			name: "listed",
			body: CreateListingRequest{SellerID: "s", RelicID: 4, Price: 2500},
			setup: func(m *MockMarketService) {
				m.On("CreateListing", mock.Anything, "s", "c1", int64(4), int64(2500)).
					Return(&domain.MarketListing{ID: 9, SellerID: "s", RelicID: 4, Price: 2500, Status: domain.ListingActive}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   "Listed for 2,500 coins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockMarketService{}
			tt.setup(svc)

			w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodPost, "/communities/c1/market/listings", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleBuyListing(t *testing.T) {
	t.Run("bad listing id", func(t *testing.T) {
		svc := &MockMarketService{}
		w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodPost, "/communities/c1/market/listings/abc/buy", BuyListingRequest{BuyerID: "b"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid listingID")
		svc.AssertNotCalled(t, "BuyListing")
	})

	t.Run("sold to someone else", func(t *testing.T) {
		svc := &MockMarketService{}
		svc.On("BuyListing", mock.Anything, "b", "c1", int64(9)).Return(nil, domain.ErrAlreadySold)

		w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodPost, "/communities/c1/market/listings/9/buy", BuyListingRequest{BuyerID: "b"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"kind":"already_sold"`)
	})

	t.Run("bought", func(t *testing.T) {
		svc := &MockMarketService{}
		svc.On("BuyListing", mock.Anything, "b", "c1", int64(9)).Return(&domain.Purchase{
			Listing:      domain.MarketListing{ID: 9, Price: 2500, Status: domain.ListingSold},
			Relic:        domain.Relic{ID: 4, OwnerID: "b", Name: "Ancient Ring of A"},
			BuyerBalance: 500,
		}, nil)

		w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodPost, "/communities/c1/market/listings/9/buy", BuyListingRequest{BuyerID: "b"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bought Ancient Ring of A for 2,500 coins")
		svc.AssertExpectations(t)
	})
}

func TestHandleCancelListing(t *testing.T) {
	t.Run("not the seller", func(t *testing.T) {
		svc := &MockMarketService{}
		svc.On("CancelListing", mock.Anything, "intruder", int64(9)).Return(domain.ErrListingNotFound)

		w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodPost, "/communities/c1/market/listings/9/cancel", CancelListingRequest{SellerID: "intruder"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgListingNotFound)
	})

	t.Run("cancelled", func(t *testing.T) {
		svc := &MockMarketService{}
		svc.On("CancelListing", mock.Anything, "s", int64(9)).Return(nil)

		w := doRequest(t, marketRoutes(NewMarketHandler(svc)), http.MethodPost, "/communities/c1/market/listings/9/cancel", CancelListingRequest{SellerID: "s"})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}
