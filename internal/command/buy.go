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

// Buy debits the price, stores the item and marks it depleted in the shop.
// The catalog is optional; without one only gold and inventory move.
type Buy struct {
	state
	player  *player.Player
	item    item.Item
	price   decimal.Decimal
	catalog *catalog.Catalog
	listing int
}

// NewBuy creates a purchase of it at price
func NewBuy(p *player.Player, it item.Item, price decimal.Decimal, c *catalog.Catalog, bus event.Publisher) *Buy {
	return &Buy{
		state:   state{bus: bus},
		player:  p,
		item:    it,
		price:   price,
		catalog: c,
		listing: -1,
	}
}

func (b *Buy) Description() string {
	return fmt.Sprintf(DescBuyFmt, b.item.Name(), b.price.String())
}

func (b *Buy) Price() decimal.Decimal { return b.price }

func (b *Buy) Execute(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", b.Description())
	inv := b.player.Store()

	switch {
	case b.executed:
		log.Warn(LogMsgAlreadyExecuted)
		return false
	case !b.player.CanAfford(b.price):
		log.Warn(LogMsgInsufficientGold, "gold", b.player.Gold().String(), "price", b.price.String())
		return false
	case !inv.HasSpace():
		log.Warn(LogMsgInventoryFull, "capacity", inv.Capacity())
		return false
	case inv.Owns(b.item):
		log.Warn(LogMsgAlreadyOwned, "item", b.item.Name())
		return false
	case b.catalog != nil && !b.catalog.IsAvailable(b.item):
		log.Warn(LogMsgNotInCatalog, "item", b.item.Name())
		return false
	}

	if err := inv.Add(b.item); err != nil {
		log.Warn(LogMsgInventoryFull, "error", err)
		return false
	}
	if err := b.player.Debit(b.price); err != nil {
		inv.Remove(b.item)
		log.Warn(LogMsgInsufficientGold, "error", err)
		return false
	}
	if b.catalog != nil {
		// availability was checked above
		b.listing = b.catalog.AvailableIndex(b.item)
		_ = b.catalog.Deplete(b.item)
	}
	b.executed = true

	log.Info(LogMsgExecuted, "gold", b.player.Gold().String())
	b.publish(func(bus event.Publisher) {
		bus.GoldChanged(ctx, b.player)
		bus.InventoryChanged(ctx, b.player)
		if b.catalog != nil {
			bus.CatalogChanged(ctx, b.catalog)
		}
	})
	return true
}

func (b *Buy) Undo(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", b.Description())

	if !b.executed {
		log.Warn(LogMsgNotExecuted)
		return false
	}
	if !b.player.Store().IsStored(b.item) {
		log.Warn(LogMsgUndoFailed, "reason", LogMsgNotStored)
		return false
	}

	b.player.Store().Remove(b.item)
	if err := b.player.Credit(b.price); err != nil {
		log.Error(LogMsgUndoFailed, "error", err)
	}
	if b.catalog != nil && b.catalog.IsDepleted(b.item) {
		_ = b.catalog.RestockAt(b.item, b.listing)
	}
	b.executed = false

	log.Info(LogMsgUndone, "gold", b.player.Gold().String())
	b.publish(func(bus event.Publisher) {
		bus.GoldChanged(ctx, b.player)
		bus.InventoryChanged(ctx, b.player)
		if b.catalog != nil {
			bus.CatalogChanged(ctx, b.catalog)
		}
	})
	return true
}
