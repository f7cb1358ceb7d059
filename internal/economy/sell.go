package economy

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/command"
	"github.com/osse101/shopkeep/internal/logger"
)

// Sell sells the named backpack item and returns the gold paid for it.
// Equipped items must be unequipped first.
func (s *service) Sell(ctx context.Context, itemName string) (decimal.Decimal, error) {
	ctx = withRequestID(ctx)
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "action", ActionTypeSell, "item", itemName)

	it, err := s.findStored(itemName)
	if err != nil {
		return decimal.Zero, err
	}

	cmd := command.NewSell(s.player, it, s.catalog, s.bus, command.WithSellRatio(s.sellRatio))
	if err := s.run(ctx, cmd); err != nil {
		return decimal.Zero, err
	}

	log.Info(LogMsgItemSold, "item", it.Name(), "amount", cmd.Amount().String(), "gold", s.player.Gold().String())
	return cmd.Amount(), nil
}
