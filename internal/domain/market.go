package domain

import "time"

// ListingStatus is the lifecycle state of a market listing
type ListingStatus string

const (
	ListingActive    ListingStatus = "active"
	ListingSold      ListingStatus = "sold"
	ListingCancelled ListingStatus = "cancelled"
)

// MarketListing offers one relic for sale inside a community
type MarketListing struct {
	ID          int64         `json:"id"`
	SellerID    string        `json:"seller_id"`
	BuyerID     *string       `json:"buyer_id,omitempty"`
	RelicID     int64         `json:"relic_id"`
	Price       int64         `json:"price"`
	CommunityID string        `json:"community_id"`
	Status      ListingStatus `json:"status"`
	ListedAt    time.Time     `json:"listed_at"`
	SoldAt      *time.Time    `json:"sold_at,omitempty"`
}

// ListingView is an active listing joined with relic display attributes
type ListingView struct {
	MarketListing
	RelicName   string `json:"relic_name"`
	RelicRarity string `json:"relic_rarity"`
}

// ListingPage is one page of active listings
type ListingPage struct {
	Listings []ListingView `json:"listings"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Purchase is the result of a completed market buy
type Purchase struct {
	Listing      MarketListing `json:"listing"`
	Relic        Relic         `json:"relic"`
	BuyerBalance int64         `json:"buyer_balance"`
}
