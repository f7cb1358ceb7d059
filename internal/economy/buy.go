package economy

import (
	"context"

	"github.com/osse101/shopkeep/internal/command"
	"github.com/osse101/shopkeep/internal/logger"
)

// Buy purchases the named catalog item at its listed price
func (s *service) Buy(ctx context.Context, itemName string) error {
	ctx = withRequestID(ctx)
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "action", ActionTypeBuy, "item", itemName)

	// 1. Resolve the listing
	it, err := s.findListed(itemName)
	if err != nil {
		return err
	}

	// 2. Gold, space, level, availability
	req := s.newRequest(ctx, it)
	if err := check(ctx, s.chain, req); err != nil {
		return err
	}

	// 3. Apply and record
	if err := s.run(ctx, command.NewBuy(s.player, it, req.Price, s.catalog, s.bus)); err != nil {
		return err
	}

	log.Info(LogMsgItemPurchased, "item", it.Name(), "price", req.Price.String(), "gold", s.player.Gold().String())
	return nil
}
