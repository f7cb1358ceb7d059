package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/shopkeep/internal/command"
	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/validation"
)

// Equip moves the named backpack item into an equipment slot
func (s *service) Equip(ctx context.Context, itemName string) error {
	ctx = withRequestID(ctx)
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "action", ActionTypeEquip, "item", itemName)

	it, err := s.findStored(itemName)
	if err != nil {
		return err
	}
	if err := s.run(ctx, command.NewEquip(s.player, it, s.bus)); err != nil {
		return err
	}

	log.Info(LogMsgItemEquipped, "item", it.Name())
	return nil
}

// Unequip moves the named equipped item back to the backpack. It fails with
// ErrInventoryFull when the backpack has no free slot.
func (s *service) Unequip(ctx context.Context, itemName string) error {
	ctx = withRequestID(ctx)
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "action", ActionTypeUnequip, "item", itemName)

	it, err := s.findEquipped(itemName)
	if err != nil {
		return err
	}
	inv := s.player.Inventory()
	if !inv.HasSpace() {
		return fmt.Errorf(ErrMsgValidationFmt, domain.ErrValidationFailed, validation.StageSpace, domain.ErrInventoryFull)
	}
	if err := s.run(ctx, command.NewUnequip(s.player, it, s.bus)); err != nil {
		return err
	}

	log.Info(LogMsgItemUnequipped, "item", it.Name())
	return nil
}

func (s *service) findStored(name string) (item.Item, error) {
	for _, it := range s.player.Inventory().Stored() {
		if strings.EqualFold(it.Name(), name) {
			return it, nil
		}
	}
	if _, ok := s.player.Inventory().FindByName(name); ok {
		return nil, fmt.Errorf(ErrMsgItemNotStoredFmt, domain.ErrNotInInventory, name)
	}
	return nil, fmt.Errorf(ErrMsgItemNotOwnedFmt, domain.ErrItemNotFound, name)
}

func (s *service) findEquipped(name string) (item.Item, error) {
	for _, it := range s.player.Inventory().Equipped() {
		if strings.EqualFold(it.Name(), name) {
			return it, nil
		}
	}
	if _, ok := s.player.Inventory().FindByName(name); ok {
		return nil, fmt.Errorf(ErrMsgItemNotEquippedFmt, domain.ErrNotEquipped, name)
	}
	return nil, fmt.Errorf(ErrMsgItemNotOwnedFmt, domain.ErrItemNotFound, name)
}

// findOwned returns the named item from either collection
func (s *service) findOwned(name string) (item.Item, error) {
	if it, ok := s.player.Inventory().FindByName(name); ok {
		return it, nil
	}
	return nil, fmt.Errorf(ErrMsgItemNotOwnedFmt, domain.ErrItemNotFound, name)
}
