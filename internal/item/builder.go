package item

import (
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/logger"
)

// Builder assembles a custom item step by step
type Builder struct {
	name        string
	price       decimal.Decimal
	rarity      domain.Rarity
	stats       map[string]int
	description string
	effects     []string
}

// NewBuilder returns a builder with default name, zero price, COMMON rarity
// and no stats
func NewBuilder() *Builder {
	return &Builder{
		name:   DefaultBuilderName,
		price:  decimal.Zero,
		rarity: domain.RarityCommon,
		stats:  make(map[string]int),
	}
}

func (b *Builder) Name(name string) *Builder {
	if strings.TrimSpace(name) == "" {
		logger.Warn(LogMsgEmptyNameIgnored)
		return b
	}
	b.name = name
	return b
}

// Price sets the price. Negative prices clamp to zero.
func (b *Builder) Price(price decimal.Decimal) *Builder {
	if price.IsNegative() {
		price = decimal.Zero
	}
	b.price = price
	return b
}

// Rarity sets the rarity from its name. Unknown names fall back to COMMON.
func (b *Builder) Rarity(rarity string) *Builder {
	r, err := domain.ParseRarity(rarity)
	if err != nil {
		logger.Warn(LogMsgInvalidRarityWarn, "rarity", rarity)
		r = domain.RarityCommon
	}
	b.rarity = r
	return b
}

func (b *Builder) Stat(key string, value int) *Builder {
	if strings.TrimSpace(key) == "" {
		logger.Warn(LogMsgEmptyStatKeyIgnored)
		return b
	}
	b.stats[key] = value
	return b
}

func (b *Builder) Description(description string) *Builder {
	b.description = description
	return b
}

func (b *Builder) Effect(effect string) *Builder {
	if effect != "" {
		b.effects = append(b.effects, effect)
	}
	return b
}

// Build returns a custom item. The builder can be reused; later changes do not
// affect items already built.
func (b *Builder) Build() *Base {
	return &Base{
		kind:        KindCustom,
		name:        b.name,
		price:       b.price,
		rarity:      b.rarity,
		stats:       maps.Clone(b.stats),
		description: b.description,
		effects:     slices.Clone(b.effects),
	}
}
