// Package event is the shop's notification bus. Listeners are called
// synchronously in registration order after a transaction has mutated state.
package event

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/player"
)

// Listener receives shop notifications. Implementations must be comparable
// (pointer types in practice) so they can be unregistered.
type Listener interface {
	OnGoldChanged(ctx context.Context, p *player.Player)
	OnInventoryChanged(ctx context.Context, p *player.Player)
	OnCatalogChanged(ctx context.Context, c *catalog.Catalog)
	OnItemEquipped(ctx context.Context, it item.Item, p *player.Player)
	OnItemUnequipped(ctx context.Context, it item.Item, p *player.Player)
}

// NopListener implements every Listener method as a no-op. Embed it to
// handle only some notifications.
type NopListener struct{}

func (NopListener) OnGoldChanged(context.Context, *player.Player)               {}
func (NopListener) OnInventoryChanged(context.Context, *player.Player)          {}
func (NopListener) OnCatalogChanged(context.Context, *catalog.Catalog)          {}
func (NopListener) OnItemEquipped(context.Context, item.Item, *player.Player)   {}
func (NopListener) OnItemUnequipped(context.Context, item.Item, *player.Player) {}

// Publisher is the notification side of the bus used by commands
type Publisher interface {
	GoldChanged(ctx context.Context, p *player.Player)
	InventoryChanged(ctx context.Context, p *player.Player)
	CatalogChanged(ctx context.Context, c *catalog.Catalog)
	ItemEquipped(ctx context.Context, it item.Item, p *player.Player)
	ItemUnequipped(ctx context.Context, it item.Item, p *player.Player)
}

// Bus is an ordered listener registry. It is not safe for concurrent use.
type Bus struct {
	listeners []Listener
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Register adds l at the end of the dispatch order. Registering a listener
// that is already present does nothing. Listeners that cannot be compared,
// such as struct values holding a map, are refused.
func (b *Bus) Register(l Listener) {
	if l == nil {
		return
	}
	if !isComparable(l) {
		logger.Warn(LogMsgListenerNotComparable, "listener", fmt.Sprintf("%T", l))
		return
	}
	if b.registered(l) {
		return
	}
	b.listeners = append(b.listeners, l)
	logger.Debug(LogMsgListenerRegistered, "listener", fmt.Sprintf("%T", l), "count", len(b.listeners))
}

// Unregister removes l. Removing an unknown listener does nothing.
func (b *Bus) Unregister(l Listener) {
	if l == nil || !isComparable(l) {
		return
	}
	idx := slices.Index(b.listeners, l)
	if idx < 0 {
		return
	}
	b.listeners = slices.Delete(b.listeners, idx, idx+1)
	logger.Debug(LogMsgListenerUnregistered, "listener", fmt.Sprintf("%T", l), "count", len(b.listeners))
}

// Len is the number of registered listeners
func (b *Bus) Len() int {
	return len(b.listeners)
}

func (b *Bus) registered(l Listener) bool {
	return slices.Contains(b.listeners, l)
}

// isComparable reports whether l can be compared with == without panicking
func isComparable(l Listener) bool {
	return reflect.ValueOf(l).Comparable()
}

// dispatch calls fn for every listener registered when dispatch starts,
// skipping any that have been unregistered by an earlier call. A nil bus
// drops the notification.
func (b *Bus) dispatch(ctx context.Context, eventType string, fn func(Listener)) {
	if b == nil {
		return
	}
	log := logger.FromContext(ctx)
	snapshot := slices.Clone(b.listeners)
	log.Debug(LogMsgDispatch, "event_type", eventType, "listeners", len(snapshot))

	for _, l := range snapshot {
		if !b.registered(l) {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error(LogMsgListenerPanicked,
						"event_type", eventType,
						"listener", fmt.Sprintf("%T", l),
						"panic", r)
				}
			}()
			fn(l)
		}()
	}
}

func (b *Bus) GoldChanged(ctx context.Context, p *player.Player) {
	b.dispatch(ctx, domain.EventTypeGoldChanged, func(l Listener) { l.OnGoldChanged(ctx, p) })
}

func (b *Bus) InventoryChanged(ctx context.Context, p *player.Player) {
	b.dispatch(ctx, domain.EventTypeInventoryChanged, func(l Listener) { l.OnInventoryChanged(ctx, p) })
}

func (b *Bus) CatalogChanged(ctx context.Context, c *catalog.Catalog) {
	b.dispatch(ctx, domain.EventTypeCatalogChanged, func(l Listener) { l.OnCatalogChanged(ctx, c) })
}

func (b *Bus) ItemEquipped(ctx context.Context, it item.Item, p *player.Player) {
	b.dispatch(ctx, domain.EventTypeItemEquipped, func(l Listener) { l.OnItemEquipped(ctx, it, p) })
}

func (b *Bus) ItemUnequipped(ctx context.Context, it item.Item, p *player.Player) {
	b.dispatch(ctx, domain.EventTypeItemUnequipped, func(l Listener) { l.OnItemUnequipped(ctx, it, p) })
}
