package model

import (
	"fmt"
	"slices"

	"tripbook/shared/failure"
	"tripbook/shared/money"
)

// Tier selects one column of an item's price table.
type Tier string

const (
	TierEconomy        Tier = "economy"
	TierPremiumEconomy Tier = "premium_economy"
	TierBusiness       Tier = "business"
	TierFirst          Tier = "first"

	TierStandard Tier = "standard"
	TierDeluxe   Tier = "deluxe"
	TierSuite    Tier = "suite"
)

var (
	CabinTiers = []Tier{TierEconomy, TierPremiumEconomy, TierBusiness, TierFirst}
	RoomTiers  = []Tier{TierStandard, TierDeluxe, TierSuite}
)

func parseTier(value string, allowed []Tier, fallback Tier) (Tier, error) {
	if value == "" {
		return fallback, nil
	}

	tier := Tier(value)
	if !slices.Contains(allowed, tier) {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown tier %q, expected one of %v", value, allowed))
	}

	return tier, nil
}

// ParseCabinTier maps a cabinClass value to a Tier. An empty value means economy.
func ParseCabinTier(value string) (Tier, error) {
	return parseTier(value, CabinTiers, TierEconomy)
}

// ParseRoomTier maps a roomType value to a Tier. An empty value means standard.
func ParseRoomTier(value string) (Tier, error) {
	return parseTier(value, RoomTiers, TierStandard)
}

// PriceTable holds one price per tier of a single item variant.
type PriceTable map[Tier]money.Money

// Resolve returns the price of tier, or of lowest when the table has no such tier.
func (p PriceTable) Resolve(tier, lowest Tier) money.Money {
	if price, ok := p[tier]; ok {
		return price
	}

	return p[lowest]
}
