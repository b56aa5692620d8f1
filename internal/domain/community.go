package domain

import (
	"slices"
	"time"
)

// SalaryMode selects how the daily community salary is computed
type SalaryMode string

const (
	SalaryLinear SalaryMode = "linear"
	SalaryTiered SalaryMode = "tiered"
)

// XPChannelMode decides how XPChannels filters chat XP
type XPChannelMode string

const (
	XPChannelWhitelist XPChannelMode = "whitelist"
	XPChannelBlacklist XPChannelMode = "blacklist"
)

// DefaultSalaryBase is used when a linear community has no positive base
const DefaultSalaryBase int64 = 50

// CommunityConfig holds the per-community toggles consumed by the core
type CommunityConfig struct {
	CommunityID     string           `json:"community_id"`
	CasinoEnabled   bool             `json:"casino_enabled"`
	DungeonsEnabled bool             `json:"dungeons_enabled"`
	MarketEnabled   bool             `json:"market_enabled"`
	SalaryMode      SalaryMode       `json:"salary_mode"`
	SalaryBase      int64            `json:"salary_base"`
	SalaryData      map[string]int64 `json:"salary_data"`
	XPRateChat      float64          `json:"xp_rate_chat"`
	XPRateVC        float64          `json:"xp_rate_vc"`
	XPChannelMode   XPChannelMode    `json:"xp_channel_mode"`
	XPChannels      []string         `json:"xp_channels"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// DefaultCommunityConfig returns the config a community starts with
func DefaultCommunityConfig(communityID string) *CommunityConfig {
	return &CommunityConfig{
		CommunityID:     communityID,
		CasinoEnabled:   true,
		DungeonsEnabled: true,
		MarketEnabled:   true,
		SalaryMode:      SalaryLinear,
		SalaryBase:      DefaultSalaryBase,
		SalaryData:      map[string]int64{},
		XPRateChat:      1.0,
		XPRateVC:        1.0,
		XPChannelMode:   XPChannelBlacklist,
		XPChannels:      []string{},
	}
}

// CommunityConfigPatch is a partial update; nil fields are left unchanged
type CommunityConfigPatch struct {
	CasinoEnabled   *bool            `json:"casino_enabled,omitempty"`
	DungeonsEnabled *bool            `json:"dungeons_enabled,omitempty"`
	MarketEnabled   *bool            `json:"market_enabled,omitempty"`
	SalaryMode      *SalaryMode      `json:"salary_mode,omitempty" validate:"omitempty,oneof=linear tiered"`
	SalaryBase      *int64           `json:"salary_base,omitempty" validate:"omitempty,min=0"`
	SalaryData      map[string]int64 `json:"salary_data,omitempty"`
	XPRateChat      *float64         `json:"xp_rate_chat,omitempty" validate:"omitempty,min=0"`
	XPRateVC        *float64         `json:"xp_rate_vc,omitempty" validate:"omitempty,min=0"`
	XPChannelMode   *XPChannelMode   `json:"xp_channel_mode,omitempty" validate:"omitempty,oneof=whitelist blacklist"`
	XPChannels      []string         `json:"xp_channels,omitempty" validate:"omitempty,dive,required"`
}

// ApplyTo returns a copy of cfg with the patch applied
func (p CommunityConfigPatch) ApplyTo(cfg CommunityConfig) CommunityConfig {
	if p.CasinoEnabled != nil {
		cfg.CasinoEnabled = *p.CasinoEnabled
	}
	if p.DungeonsEnabled != nil {
		cfg.DungeonsEnabled = *p.DungeonsEnabled
	}
	if p.MarketEnabled != nil {
		cfg.MarketEnabled = *p.MarketEnabled
	}
	if p.SalaryMode != nil {
		cfg.SalaryMode = *p.SalaryMode
	}
	if p.SalaryBase != nil {
		cfg.SalaryBase = *p.SalaryBase
	}
	if p.SalaryData != nil {
		data := make(map[string]int64, len(p.SalaryData))
		for k, v := range p.SalaryData {
			data[k] = v
		}
		cfg.SalaryData = data
	}
	if p.XPRateChat != nil {
		cfg.XPRateChat = *p.XPRateChat
	}
	if p.XPRateVC != nil {
		cfg.XPRateVC = *p.XPRateVC
	}
	if p.XPChannelMode != nil {
		cfg.XPChannelMode = *p.XPChannelMode
	}
	if p.XPChannels != nil {
		cfg.XPChannels = slices.Clone(p.XPChannels)
	}
	return cfg
}

// SalaryTier pays Amount to members whose level is within [Min, Max]
type SalaryTier struct {
	Min    int64 `json:"min"`
	Max    int64 `json:"max"`
	Amount int64 `json:"amount"`
}

// Enabled reports whether the named feature is switched on
func (c *CommunityConfig) Enabled(feature string) bool {
	switch feature {
	case FeatureCasino:
		return c.CasinoEnabled
	case FeatureDungeons:
		return c.DungeonsEnabled
	case FeatureMarket:
		return c.MarketEnabled
	default:
		return false
	}
}

// RequireFeature returns a FeatureDisabledError when the feature is off
func (c *CommunityConfig) RequireFeature(feature string) error {
	if !c.Enabled(feature) {
		return &FeatureDisabledError{Feature: feature}
	}
	return nil
}

// EarnsChatXP applies the channel rules. An empty channel list allows every channel.
func (c *CommunityConfig) EarnsChatXP(channelID string) bool {
	if len(c.XPChannels) == 0 {
		return true
	}
	listed := slices.Contains(c.XPChannels, channelID)
	if c.XPChannelMode == XPChannelWhitelist {
		return listed
	}
	return !listed
}
