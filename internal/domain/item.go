package domain

import (
	"fmt"
	"strings"
)

// Rarity represents the visual rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// Rarities lists every rarity from lowest to highest tier
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Tier returns the position of the rarity from 0 (common) to 4 (legendary), or -1 if unknown
func (r Rarity) Tier() int {
	for i, candidate := range Rarities {
		if candidate == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the known rarities
func (r Rarity) Valid() bool {
	return r.Tier() >= 0
}

// ParseRarity converts a case-insensitive rarity name into a Rarity
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRarity, s)
	}
	return r, nil
}
