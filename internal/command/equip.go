package command

import (
	"context"
	"fmt"

	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/player"
)

// Equip moves a stored item into the equipped set. Undo puts it back at the
// stored position it came from.
type Equip struct {
	state
	player *player.Player
	item   item.Item
	from   int
}

func NewEquip(p *player.Player, it item.Item, bus event.Publisher) *Equip {
	return &Equip{state: state{bus: bus}, player: p, item: it, from: -1}
}

func (e *Equip) Description() string {
	return fmt.Sprintf(DescEquipFmt, e.item.Name())
}

func (e *Equip) Execute(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", e.Description())

	if e.executed {
		log.Warn(LogMsgAlreadyExecuted)
		return false
	}
	from, err := e.player.Store().Equip(e.item)
	if err != nil {
		log.Warn(LogMsgNotStored, "error", err)
		return false
	}
	e.from = from
	e.executed = true

	log.Info(LogMsgExecuted)
	e.publish(func(bus event.Publisher) {
		bus.ItemEquipped(ctx, e.item, e.player)
		bus.InventoryChanged(ctx, e.player)
	})
	return true
}

func (e *Equip) Undo(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", e.Description())

	if !e.executed {
		log.Warn(LogMsgNotExecuted)
		return false
	}
	if _, err := e.player.Store().UnequipAt(e.item, e.from); err != nil {
		log.Warn(LogMsgUndoFailed, "error", err)
		return false
	}
	e.executed = false

	log.Info(LogMsgUndone)
	e.publish(func(bus event.Publisher) {
		bus.ItemUnequipped(ctx, e.item, e.player)
		bus.InventoryChanged(ctx, e.player)
	})
	return true
}

// Unequip moves an equipped item back to storage. It is refused while
// storage is full. Undo re-equips at the original position regardless.
type Unequip struct {
	state
	player *player.Player
	item   item.Item
	from   int
}

func NewUnequip(p *player.Player, it item.Item, bus event.Publisher) *Unequip {
	return &Unequip{state: state{bus: bus}, player: p, item: it, from: -1}
}

func (u *Unequip) Description() string {
	return fmt.Sprintf(DescUnequipFmt, u.item.Name())
}

func (u *Unequip) Execute(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", u.Description())
	inv := u.player.Store()

	switch {
	case u.executed:
		log.Warn(LogMsgAlreadyExecuted)
		return false
	case !inv.IsEquipped(u.item):
		log.Warn(LogMsgNotEquipped, "item", u.item.Name())
		return false
	case !inv.HasSpace():
		log.Warn(LogMsgInventoryFull, "capacity", inv.Capacity())
		return false
	}

	from, err := inv.Unequip(u.item)
	if err != nil {
		log.Warn(LogMsgUndoFailed, "error", err)
		return false
	}
	u.from = from
	u.executed = true

	log.Info(LogMsgExecuted)
	u.publish(func(bus event.Publisher) {
		bus.ItemUnequipped(ctx, u.item, u.player)
		bus.InventoryChanged(ctx, u.player)
	})
	return true
}

func (u *Unequip) Undo(ctx context.Context) bool {
	log := logger.FromContext(ctx).With("command", u.Description())

	if !u.executed {
		log.Warn(LogMsgNotExecuted)
		return false
	}
	if _, err := u.player.Store().EquipAt(u.item, u.from); err != nil {
		log.Warn(LogMsgUndoFailed, "error", err)
		return false
	}
	u.executed = false

	log.Info(LogMsgUndone)
	u.publish(func(bus event.Publisher) {
		bus.ItemEquipped(ctx, u.item, u.player)
		bus.InventoryChanged(ctx, u.player)
	})
	return true
}
