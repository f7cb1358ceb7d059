// Package item defines the read-only capability every tradeable object exposes,
// the base item kinds, and the modifier wrapper used to upgrade items.
package item

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/domain"
)

// Item is the capability set shared by base items and modifier layers.
// Implementations are immutable and handled by pointer, so two references are
// the same item exactly when they compare equal.
type Item interface {
	Name() string
	Price() decimal.Decimal
	Rarity() domain.Rarity
	// Stats returns a fresh copy on every call.
	Stats() map[string]int
	Description() string
}

// Kind identifies a base item variant
type Kind string

const (
	KindWeapon     Kind = "WEAPON"
	KindArmor      Kind = "ARMOR"
	KindPotion     Kind = "POTION"
	KindConsumable Kind = "CONSUMABLE"
	KindAccessory  Kind = "ACCESSORY"
	KindCustom     Kind = "CUSTOM"
)

// Base is an unmodified item of one of the base kinds
type Base struct {
	kind        Kind
	name        string
	price       decimal.Decimal
	rarity      domain.Rarity
	stats       map[string]int
	description string
	effects     []string
}

func (b *Base) Kind() Kind             { return b.kind }
func (b *Base) Name() string           { return b.name }
func (b *Base) Price() decimal.Decimal { return b.price }
func (b *Base) Rarity() domain.Rarity  { return b.rarity }
func (b *Base) Stats() map[string]int  { return maps.Clone(b.stats) }
func (b *Base) Description() string    { return b.description }
func (b *Base) String() string         { return String(b) }

// Effects returns the special effects of a custom item
func (b *Base) Effects() []string {
	return slices.Clone(b.effects)
}

type kindSpec struct {
	rarity      domain.Rarity
	primary     string
	zeroed      []string
	description string
}

var kindSpecs = map[Kind]kindSpec{
	KindWeapon: {
		rarity:      domain.RarityCommon,
		primary:     domain.StatAttack,
		zeroed:      []string{domain.StatDefense, domain.StatHealth},
		description: DescWeapon,
	},
	KindArmor: {
		rarity:      domain.RarityUncommon,
		primary:     domain.StatDefense,
		zeroed:      []string{domain.StatAttack, domain.StatHealth},
		description: DescArmor,
	},
	KindPotion: {
		rarity:      domain.RarityCommon,
		primary:     domain.StatHealth,
		zeroed:      []string{domain.StatAttack, domain.StatDefense},
		description: DescPotion,
	},
	KindConsumable: {
		rarity:      domain.RarityCommon,
		primary:     domain.StatMana,
		zeroed:      []string{domain.StatAttack, domain.StatDefense},
		description: DescConsumable,
	},
	KindAccessory: {
		rarity:      domain.RarityRare,
		primary:     domain.StatMana,
		zeroed:      []string{domain.StatAttack, domain.StatDefense},
		description: DescAccessory,
	},
}

func newBase(kind Kind, name string, price decimal.Decimal, value int) *Base {
	spec := kindSpecs[kind]
	stats := make(map[string]int, len(spec.zeroed)+1)
	for _, key := range spec.zeroed {
		stats[key] = 0
	}
	stats[spec.primary] = value

	return &Base{
		kind:        kind,
		name:        name,
		price:       price,
		rarity:      spec.rarity,
		stats:       stats,
		description: spec.description,
	}
}

// NewWeapon creates a COMMON weapon with the given attack bonus
func NewWeapon(name string, price decimal.Decimal, attack int) *Base {
	return newBase(KindWeapon, name, price, attack)
}

// NewArmor creates an UNCOMMON armor piece with the given defense bonus
func NewArmor(name string, price decimal.Decimal, defense int) *Base {
	return newBase(KindArmor, name, price, defense)
}

// NewPotion creates a COMMON potion restoring the given health
func NewPotion(name string, price decimal.Decimal, health int) *Base {
	return newBase(KindPotion, name, price, health)
}

// NewConsumable creates a COMMON consumable restoring the given mana
func NewConsumable(name string, price decimal.Decimal, mana int) *Base {
	return newBase(KindConsumable, name, price, mana)
}

// NewAccessory creates a RARE trinket with the given mana bonus
func NewAccessory(name string, price decimal.Decimal, mana int) *Base {
	return newBase(KindAccessory, name, price, mana)
}
