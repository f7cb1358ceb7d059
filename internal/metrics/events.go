package metrics

import (
	"context"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/player"
)

// EventMetricsCollector listens on the shop bus and records metrics
type EventMetricsCollector struct {
	m *Metrics
}

var _ event.Listener = (*EventMetricsCollector)(nil)

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector(m *Metrics) *EventMetricsCollector {
	return &EventMetricsCollector{m: m}
}

// Register subscribes the collector to bus
func (e *EventMetricsCollector) Register(bus *event.Bus) {
	bus.Register(e)
}

func (e *EventMetricsCollector) OnGoldChanged(ctx context.Context, p *player.Player) {
	e.record(ctx, domain.EventTypeGoldChanged)
	e.m.PlayerGold.WithLabelValues(p.Name()).Set(p.Gold().InexactFloat64())
}

func (e *EventMetricsCollector) OnInventoryChanged(ctx context.Context, p *player.Player) {
	e.record(ctx, domain.EventTypeInventoryChanged)
	inv := p.Inventory()
	e.m.ItemsStored.WithLabelValues(p.Name()).Set(float64(len(inv.Stored())))
	e.m.ItemsEquipped.WithLabelValues(p.Name()).Set(float64(len(inv.Equipped())))
}

func (e *EventMetricsCollector) OnCatalogChanged(ctx context.Context, c *catalog.Catalog) {
	e.record(ctx, domain.EventTypeCatalogChanged)
	e.m.CatalogAvailable.Set(float64(len(c.Available())))
	e.m.CatalogDepleted.Set(float64(len(c.Depleted())))
}

func (e *EventMetricsCollector) OnItemEquipped(ctx context.Context, it item.Item, _ *player.Player) {
	e.record(ctx, domain.EventTypeItemEquipped)
	e.m.EquipChanges.WithLabelValues(it.Name(), DirectionEquip).Inc()
}

func (e *EventMetricsCollector) OnItemUnequipped(ctx context.Context, it item.Item, _ *player.Player) {
	e.record(ctx, domain.EventTypeItemUnequipped)
	e.m.EquipChanges.WithLabelValues(it.Name(), DirectionUnequip).Inc()
}

func (e *EventMetricsCollector) record(ctx context.Context, eventType string) {
	e.m.EventsPublished.WithLabelValues(eventType).Inc()
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", eventType)
}
