package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhanushlnaik/mimisanv2/internal/market"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
)

// MarketHandler handles the relic marketplace of a community
type MarketHandler struct {
	service market.Service
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(service market.Service) *MarketHandler {
	return &MarketHandler{service: service}
}

// CreateListingRequest offers a relic for sale.
// Price is checked by the market so a non-positive value surfaces as invalid_amount.
type CreateListingRequest struct {
	SellerID string `json:"seller_id" validate:"required,max=64"`
	RelicID  int64  `json:"relic_id" validate:"required,gt=0"`
	Price    int64  `json:"price"`
}

// BuyListingRequest identifies the buyer
type BuyListingRequest struct {
	BuyerID string `json:"buyer_id" validate:"required,max=64"`
}

// CancelListingRequest identifies the seller withdrawing a listing
type CancelListingRequest struct {
	SellerID string `json:"seller_id" validate:"required,max=64"`
}

// HandleListActive returns one page of active listings, newest first
func (h *MarketHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListActive(r.Context(), chi.URLParam(r, ParamCommunityID),
		getQueryInt(r, QueryPage, 1), getQueryInt(r, QueryPageSize, market.DefaultPageSize))
	if err != nil {
		respondServiceError(w, r, OpListMarket, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: page})
}

// HandleCreateListing lists a relic the seller owns
func (h *MarketHandler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create listing"); err != nil {
		return
	}

	listing, err := h.service.CreateListing(r.Context(), req.SellerID, chi.URLParam(r, ParamCommunityID), req.RelicID, req.Price)
	if err != nil {
		respondServiceError(w, r, OpCreateListing, err)
		return
	}

	metrics.ListingsCreated.Inc()
	respondJSON(w, http.StatusCreated, DataResponse{
		Message: printer.Sprintf("Listed for %s", coins(listing.Price)),
		Data:    listing,
	})
}

// HandleBuyListing completes a purchase
func (h *MarketHandler) HandleBuyListing(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, w, ParamListingID)
	if !ok {
		return
	}
	var req BuyListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy listing"); err != nil {
		return
	}

	purchase, err := h.service.BuyListing(r.Context(), req.BuyerID, chi.URLParam(r, ParamCommunityID), listingID)
	if err != nil {
		respondServiceError(w, r, OpBuyListing, err)
		return
	}

	metrics.RecordSale(purchase.Listing.Price)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: printer.Sprintf("Bought %s for %s", purchase.Relic.Name, coins(purchase.Listing.Price)),
		Data:    purchase,
	})
}

// HandleCancelListing withdraws an active listing
func (h *MarketHandler) HandleCancelListing(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, w, ParamListingID)
	if !ok {
		return
	}
	var req CancelListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel listing"); err != nil {
		return
	}

	if err := h.service.CancelListing(r.Context(), req.SellerID, listingID); err != nil {
		respondServiceError(w, r, OpCancelListing, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Listing cancelled"})
}
