package validation

import (
	"context"
	"fmt"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/item"
)

// Handler is one purchase check. Check must not change the request or
// anything it points to. A non-nil error fails the check; its message is
// the human-readable reason and it wraps the domain sentinel for the stage.
type Handler interface {
	Stage() string
	Check(ctx context.Context, req Request) error
}

// GoldHandler requires the player's balance to cover the price
type GoldHandler struct{}

func (GoldHandler) Stage() string { return StageGold }

func (GoldHandler) Check(_ context.Context, req Request) error {
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: "+ReasonNegativePriceFmt, domain.ErrInvalidPrice, req.Price.String())
	}
	if !req.Player.CanAfford(req.Price) {
		return fmt.Errorf("%w: "+ReasonGoldFmt, domain.ErrInsufficientFunds, req.Player.Gold().String(), req.Price.String())
	}
	return nil
}

// SpaceHandler requires a free stored slot
type SpaceHandler struct{}

func (SpaceHandler) Stage() string { return StageSpace }

func (SpaceHandler) Check(_ context.Context, req Request) error {
	inv := req.Player.Inventory()
	if !inv.HasSpace() {
		return fmt.Errorf("%w: "+ReasonSpaceFmt, domain.ErrInventoryFull, len(inv.Stored()), inv.Capacity())
	}
	return nil
}

// LevelRequirement reports the level needed to buy an item
type LevelRequirement func(it item.Item) int

// MinimumLevel is the requirement every item currently has
func MinimumLevel(item.Item) int {
	return domain.MinimumLevelRequirement
}

// LevelHandler requires the player to meet the item's level requirement
type LevelHandler struct {
	Requirement LevelRequirement
}

func (LevelHandler) Stage() string { return StageLevel }

func (h LevelHandler) Check(_ context.Context, req Request) error {
	requirement := h.Requirement
	if requirement == nil {
		requirement = MinimumLevel
	}
	needed := requirement(req.Item)
	if req.Player.Level() < needed {
		return fmt.Errorf("%w: "+ReasonLevelFmt, domain.ErrLevelTooLow, needed, req.Player.Level())
	}
	return nil
}

// AvailabilityHandler requires the item to be listed as available
type AvailabilityHandler struct {
	Catalog *catalog.Catalog
}

func (AvailabilityHandler) Stage() string { return StageAvailability }

func (h AvailabilityHandler) Check(_ context.Context, req Request) error {
	if h.Catalog == nil {
		return fmt.Errorf("%w: %s", domain.ErrItemUnavailable, ReasonNoCatalog)
	}
	if !h.Catalog.IsAvailable(req.Item) {
		return fmt.Errorf("%w: "+ReasonUnavailableFmt, domain.ErrItemUnavailable, req.Item.Name())
	}
	return nil
}
