package economy

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/player"
)

// Snapshot is a read-only copy of the session state
type Snapshot struct {
	Player    string          `json:"player"`
	Level     int             `json:"level"`
	Gold      decimal.Decimal `json:"gold"`
	Stats     player.Stats    `json:"stats"`
	Stored    []string        `json:"stored"`
	Equipped  []string        `json:"equipped"`
	Available []string        `json:"available"`
	Depleted  []string        `json:"depleted"`
	CanUndo   bool            `json:"can_undo"`
	CanRedo   bool            `json:"can_redo"`
}

func (s *service) Snapshot() Snapshot {
	inv := s.player.Inventory()
	return Snapshot{
		Player:    s.player.Name(),
		Level:     s.player.Level(),
		Gold:      s.player.Gold(),
		Stats:     s.player.EffectiveStats(),
		Stored:    names(inv.Stored()),
		Equipped:  names(inv.Equipped()),
		Available: names(s.catalog.Available()),
		Depleted:  names(s.catalog.Depleted()),
		CanUndo:   s.history.CanUndo(),
		CanRedo:   s.history.CanRedo(),
	}
}

func names(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name()
	}
	return out
}
