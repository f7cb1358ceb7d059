package main

import (
	"context"
	"strings"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/economy"
	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/player"
)

// step is one scripted shop action
type step struct {
	action string
	target string
	extra  []string
}

var defaultScript = []step{
	{action: "buy", target: "Longsword"},
	{action: "buy", target: "Iron Armor"},
	{action: "equip", target: "Longsword"},
	{action: "upgrade", target: "Longsword", extra: []string{item.UpgradeAttack}},
	{action: "undo"},
	{action: "redo"},
	{action: "buy", target: "Health Potion"},
	{action: "sell", target: "Health Potion"},
	{action: "undo"},
	{action: "buy", target: "Infinity Stone"},
	{action: "unequip", target: "Longsword (+ATK +15)"},
}

// playSession runs every step, logging failures instead of stopping
func playSession(ctx context.Context, svc economy.Service, script []step) {
	for _, s := range script {
		if ctx.Err() != nil {
			return
		}
		stepCtx := logger.WithRequestID(ctx, logger.GenerateRequestID())
		if err := apply(stepCtx, svc, s); err != nil {
			logger.FromContext(stepCtx).Warn("Step refused",
				"action", s.action,
				"target", s.target,
				"error", err)
		}
	}
}

func apply(ctx context.Context, svc economy.Service, s step) error {
	switch strings.ToLower(s.action) {
	case "buy":
		return svc.Buy(ctx, s.target)
	case "sell":
		_, err := svc.Sell(ctx, s.target)
		return err
	case "equip":
		return svc.Equip(ctx, s.target)
	case "unequip":
		return svc.Unequip(ctx, s.target)
	case "upgrade":
		_, err := svc.Upgrade(ctx, s.target, s.extra...)
		return err
	case "undo":
		return svc.Undo(ctx)
	case "redo":
		return svc.Redo(ctx)
	default:
		logger.FromContext(ctx).Warn("Unknown step", "action", s.action)
		return nil
	}
}

// logListener writes every bus notification to the session log
type logListener struct {
	event.NopListener
}

func newLogListener() *logListener { return &logListener{} }

func (logListener) OnGoldChanged(ctx context.Context, p *player.Player) {
	logger.FromContext(ctx).Info("Gold changed", "player", p.Name(), "gold", p.Gold().String())
}

func (logListener) OnInventoryChanged(ctx context.Context, p *player.Player) {
	inv := p.Inventory()
	logger.FromContext(ctx).Info("Inventory changed",
		"player", p.Name(),
		"stored", len(inv.Stored()),
		"equipped", len(inv.Equipped()),
		"free_slots", inv.AvailableSlots())
}

func (logListener) OnCatalogChanged(ctx context.Context, c *catalog.Catalog) {
	logger.FromContext(ctx).Info("Catalog changed",
		"available", len(c.Available()),
		"depleted", len(c.Depleted()))
}

func (logListener) OnItemEquipped(ctx context.Context, it item.Item, p *player.Player) {
	logger.FromContext(ctx).Info("Item equipped", "player", p.Name(), "item", item.String(it))
}

func (logListener) OnItemUnequipped(ctx context.Context, it item.Item, p *player.Player) {
	logger.FromContext(ctx).Info("Item unequipped", "player", p.Name(), "item", item.String(it))
}
