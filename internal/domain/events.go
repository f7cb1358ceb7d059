package domain

// Event type constants used for the notification bus and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "gold.changed")
const (
	// EventTypeGoldChanged is published when a player's gold balance moves
	EventTypeGoldChanged = "gold.changed"

	// EventTypeInventoryChanged is published when a player's equipped or stored items change
	EventTypeInventoryChanged = "inventory.changed"

	// EventTypeCatalogChanged is published when items move between available and depleted
	EventTypeCatalogChanged = "catalog.changed"

	// EventTypeItemEquipped is published when an item moves into the equipped set
	EventTypeItemEquipped = "item.equipped"

	// EventTypeItemUnequipped is published when an item leaves the equipped set
	EventTypeItemUnequipped = "item.unequipped"
)
