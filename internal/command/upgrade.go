package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/player"
)

// Upgrade swaps an owned item for a modified version of it, in the same
// collection and slot, and charges cost. The modified item is built by the
// caller so redo reinstates the very same reference.
type Upgrade struct {
	state
	player   *player.Player
	base     item.Item
	upgraded item.Item
	cost     decimal.Decimal
}

func NewUpgrade(p *player.Player, base, upgraded item.Item, cost decimal.Decimal, bus event.Publisher) *Upgrade {
	return &Upgrade{
		state:    state{bus: bus},
		player:   p,
		base:     base,
		upgraded: upgraded,
		cost:     cost,
	}
}

func (u *Upgrade) Description() string {
	return fmt.Sprintf(DescUpgradeFmt, u.base.Name(), u.cost.String())
}

// Upgraded is the item that replaces the base on execute
func (u *Upgrade) Upgraded() item.Item { return u.upgraded }

func (u *Upgrade) Execute(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", u.Description())
	inv := u.player.Store()

	switch {
	case u.executed:
		log.Warn(LogMsgAlreadyExecuted)
		return false
	case u.cost.IsNegative():
		log.Warn(LogMsgNegativeAmount, "cost", u.cost.String())
		return false
	case !u.player.CanAfford(u.cost):
		log.Warn(LogMsgInsufficientGold, "gold", u.player.Gold().String(), "cost", u.cost.String())
		return false
	case !inv.Owns(u.base):
		log.Warn(LogMsgNotOwned, "item", u.base.Name())
		return false
	}

	if !inv.Replace(u.base, u.upgraded) {
		log.Warn(LogMsgAlreadyOwned, "item", u.upgraded.Name())
		return false
	}
	_ = u.player.Debit(u.cost)
	u.executed = true

	log.Info(LogMsgExecuted, "upgraded", u.upgraded.Name(), "gold", u.player.Gold().String())
	u.publishAll(ctx)
	return true
}

func (u *Upgrade) Undo(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", u.Description())

	if !u.executed {
		log.Warn(LogMsgNotExecuted)
		return false
	}
	if !u.player.Store().Replace(u.upgraded, u.base) {
		log.Warn(LogMsgUndoFailed, "reason", LogMsgNotOwned)
		return false
	}
	_ = u.player.Credit(u.cost)
	u.executed = false

	log.Info(LogMsgUndone, "gold", u.player.Gold().String())
	u.publishAll(ctx)
	return true
}

func (u *Upgrade) publishAll(ctx context.Context) {
	u.publish(func(bus event.Publisher) {
		bus.GoldChanged(ctx, u.player)
		bus.InventoryChanged(ctx, u.player)
	})
}
