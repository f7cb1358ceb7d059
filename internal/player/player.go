// Package player holds the actor of a shop session: a gold ledger, a level
// and the inventory the player owns.
package player

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/inventory"
	"github.com/osse101/shopkeep/internal/logger"
)

// Stats are a player's derived attributes
type Stats struct {
	Attack  int
	Defense int
	Health  int
	Mana    int
	Level   int
}

// Player is a gold balance that never goes negative plus a level kept in
// [MinPlayerLevel, MaxPlayerLevel]
type Player struct {
	name  string
	level int
	gold  decimal.Decimal
	stats Stats
	inv   *inventory.Store
}

// Option customises a new player
type Option func(*Player)

// WithInventory gives the player an existing store
func WithInventory(store *inventory.Store) Option {
	return func(p *Player) {
		if store != nil {
			p.inv = store
		}
	}
}

// New creates a player. When no inventory option is given the player gets
// an empty store with the default capacity.
func New(name string, level int, gold decimal.Decimal, opts ...Option) (*Player, error) {
	if gold.IsNegative() {
		return nil, fmt.Errorf(ErrMsgNegativeGoldFmt, domain.ErrInvalidAmount, gold.String())
	}
	p := &Player{name: name, gold: gold}
	for _, opt := range opts {
		opt(p)
	}
	if p.inv == nil {
		store, err := inventory.New(domain.DefaultInventoryCapacity)
		if err != nil {
			return nil, err
		}
		p.inv = store
	}
	p.SetLevel(level)
	return p, nil
}

func (p *Player) Name() string          { return p.name }
func (p *Player) Level() int            { return p.level }
func (p *Player) Gold() decimal.Decimal { return p.gold }

// Inventory is a read-only view of the player's items
func (p *Player) Inventory() inventory.View { return p.inv }

// Store is the mutable inventory. Only commands write through it, so every
// change is reversible and announced on the bus.
func (p *Player) Store() *inventory.Store { return p.inv }

// Stats returns a copy of the base stats
func (p *Player) Stats() Stats {
	return p.stats
}

// SetLevel clamps level to the allowed range and recomputes stats
func (p *Player) SetLevel(level int) {
	clamped := min(max(level, domain.MinPlayerLevel), domain.MaxPlayerLevel)
	if clamped != level {
		logger.Debug(LogMsgLevelClamped, "player", p.name, "requested", level, "level", clamped)
	}
	p.level = clamped
	p.recomputeStats()
}

func (p *Player) recomputeStats() {
	p.stats = Stats{
		Attack:  domain.BasePlayerAttack,
		Defense: domain.BasePlayerDefense,
		Health:  domain.BasePlayerHealth,
		Mana:    domain.BasePlayerMana,
		Level:   p.level,
	}
}

// EffectiveStats adds the stats of every equipped item to the base stats
func (p *Player) EffectiveStats() Stats {
	s := p.stats
	for _, it := range p.inv.Equipped() {
		stats := it.Stats()
		s.Attack += stats[domain.StatAttack]
		s.Defense += stats[domain.StatDefense]
		s.Health += stats[domain.StatHealth]
		s.Mana += stats[domain.StatMana]
	}
	return s
}

// CanAfford reports whether the balance covers amount
func (p *Player) CanAfford(amount decimal.Decimal) bool {
	return p.gold.GreaterThanOrEqual(amount)
}

// Credit adds amount to the balance
func (p *Player) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf(ErrMsgNegativeAmountFmt, domain.ErrInvalidAmount, amount.String())
	}
	p.gold = p.gold.Add(amount)
	return nil
}

// Debit removes amount from the balance. A debit larger than the balance
// fails with ErrInsufficientFunds and leaves the balance unchanged.
func (p *Player) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf(ErrMsgNegativeAmountFmt, domain.ErrInvalidAmount, amount.String())
	}
	if !p.CanAfford(amount) {
		return fmt.Errorf(ErrMsgDebitFmt, domain.ErrInsufficientFunds, p.gold.String(), amount.String())
	}
	p.gold = p.gold.Sub(amount)
	return nil
}
