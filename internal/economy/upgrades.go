package economy

import (
	"context"
	"fmt"

	"github.com/osse101/shopkeep/internal/command"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
)

// Upgrade applies the named preset upgrades to an owned item and returns the
// upgraded item, which takes the original's slot
func (s *service) Upgrade(ctx context.Context, itemName string, upgrades ...string) (item.Item, error) {
	ctx = withRequestID(ctx)
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpgradeCalled, "action", ActionTypeUpgrade, "item", itemName, "upgrades", upgrades)

	base, err := s.findOwned(itemName)
	if err != nil {
		return nil, err
	}
	plan, err := item.NewUpgradePlan(upgrades...)
	if err != nil {
		return nil, err
	}

	// Funds first so a poor player never gets a built item
	if err := check(ctx, s.funds, s.newRequest(ctx, base).WithPrice(plan.Cost())); err != nil {
		return nil, err
	}

	upgraded, err := plan.Apply(base)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildUpgradeFmt, base.Name(), err)
	}
	if err := s.run(ctx, command.NewUpgrade(s.player, base, upgraded, plan.Cost(), s.bus)); err != nil {
		return nil, err
	}

	log.Info(LogMsgItemUpgraded, "item", upgraded.Name(), "cost", plan.Cost().String(), "gold", s.player.Gold().String())
	return upgraded, nil
}
