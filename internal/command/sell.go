package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/player"
)

// DefaultSellRatio is the share of an item's price paid back on sale
var DefaultSellRatio = decimal.RequireFromString("0.8")

// Sell removes a stored item, credits a share of its price and, when the
// shop has it marked depleted, puts it back on sale
type Sell struct {
	state
	player    *player.Player
	item      item.Item
	amount    decimal.Decimal
	catalog   *catalog.Catalog
	index     int
	listing   int
	restocked bool
}

// SellOption customises a sale
type SellOption func(*Sell)

// WithSellRatio pays ratio times the item's price instead of DefaultSellRatio
func WithSellRatio(ratio decimal.Decimal) SellOption {
	return func(s *Sell) {
		s.amount = s.item.Price().Mul(ratio)
	}
}

// NewSell creates a sale of it. The payout is fixed here from the item's
// current price.
func NewSell(p *player.Player, it item.Item, c *catalog.Catalog, bus event.Publisher, opts ...SellOption) *Sell {
	s := &Sell{
		state:   state{bus: bus},
		player:  p,
		item:    it,
		amount:  it.Price().Mul(DefaultSellRatio),
		catalog: c,
		index:   -1,
		listing: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sell) Description() string {
	return fmt.Sprintf(DescSellFmt, s.item.Name(), s.amount.String())
}

// Amount is the gold the sale pays
func (s *Sell) Amount() decimal.Decimal { return s.amount }

func (s *Sell) Execute(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", s.Description())

	if s.executed {
		log.Warn(LogMsgAlreadyExecuted)
		return false
	}
	if s.amount.IsNegative() {
		log.Warn(LogMsgNegativeAmount, "amount", s.amount.String())
		return false
	}
	idx, ok := s.player.Store().Remove(s.item)
	if !ok {
		log.Warn(LogMsgNotStored, "item", s.item.Name())
		return false
	}
	s.index = idx
	// amount is non-negative, so the credit cannot fail
	_ = s.player.Credit(s.amount)

	s.restocked = false
	if s.catalog != nil && s.catalog.IsDepleted(s.item) {
		s.listing = s.catalog.DepletedIndex(s.item)
		s.restocked = s.catalog.Restock(s.item) == nil
	}
	s.executed = true

	log.Info(LogMsgExecuted, "gold", s.player.Gold().String(), "restocked", s.restocked)
	s.publishAll(ctx)
	return true
}

func (s *Sell) Undo(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", s.Description())

	if !s.executed {
		log.Warn(LogMsgNotExecuted)
		return false
	}
	if !s.player.CanAfford(s.amount) {
		log.Warn(LogMsgUndoFailed, "reason", LogMsgInsufficientGold)
		return false
	}
	if err := s.player.Store().Insert(s.index, s.item); err != nil {
		log.Warn(LogMsgUndoFailed, "error", err)
		return false
	}
	_ = s.player.Debit(s.amount)
	if s.restocked {
		_ = s.catalog.DepleteAt(s.item, s.listing)
	}
	s.executed = false

	log.Info(LogMsgUndone, "gold", s.player.Gold().String())
	s.publishAll(ctx)
	return true
}

func (s *Sell) publishAll(ctx context.Context) {
	s.publish(func(bus event.Publisher) {
		bus.GoldChanged(ctx, s.player)
		bus.InventoryChanged(ctx, s.player)
		if s.restocked {
			bus.CatalogChanged(ctx, s.catalog)
		}
	})
}
