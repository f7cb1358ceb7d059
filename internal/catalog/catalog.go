// Package catalog holds the shop's listings. Every listed item is either
// available for purchase or depleted; items move between the two lists and
// are never deleted.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/item"
)

// Catalog is the shop's available and depleted listings
type Catalog struct {
	available []item.Item
	depleted  []item.Item
}

// New creates a catalog with the given items available, in order
func New(items ...item.Item) (*Catalog, error) {
	c := &Catalog{}
	for _, it := range items {
		if err := c.Add(it); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add lists a new item as available
func (c *Catalog) Add(it item.Item) error {
	if it == nil {
		return domain.ErrNilItem
	}
	if c.IsAvailable(it) || c.IsDepleted(it) {
		return fmt.Errorf(ErrMsgAlreadyListedFmt, domain.ErrAlreadyListed, it.Name())
	}
	c.available = append(c.available, it)
	return nil
}

// Deplete moves it from available to the end of depleted
func (c *Catalog) Deplete(it item.Item) error {
	return c.DepleteAt(it, len(c.depleted))
}

// DepleteAt moves it from available to depleted at position, clamped to the
// list bounds
func (c *Catalog) DepleteAt(it item.Item, position int) error {
	idx := indexOf(c.available, it)
	if idx < 0 {
		return fmt.Errorf(ErrMsgUnavailableFmt, domain.ErrItemUnavailable, itemName(it))
	}
	c.available = slices.Delete(c.available, idx, idx+1)
	c.depleted = slices.Insert(c.depleted, clamp(position, len(c.depleted)), it)
	return nil
}

// Restock moves it from depleted to the end of available
func (c *Catalog) Restock(it item.Item) error {
	return c.RestockAt(it, len(c.available))
}

// RestockAt moves it from depleted to available at position, clamped to the
// list bounds
func (c *Catalog) RestockAt(it item.Item, position int) error {
	idx := indexOf(c.depleted, it)
	if idx < 0 {
		return fmt.Errorf(ErrMsgNotDepletedFmt, domain.ErrNotDepleted, itemName(it))
	}
	c.depleted = slices.Delete(c.depleted, idx, idx+1)
	c.available = slices.Insert(c.available, clamp(position, len(c.available)), it)
	return nil
}

// AvailableIndex is the position of it in the available list, or -1
func (c *Catalog) AvailableIndex(it item.Item) int {
	return indexOf(c.available, it)
}

// DepletedIndex is the position of it in the depleted list, or -1
func (c *Catalog) DepletedIndex(it item.Item) int {
	return indexOf(c.depleted, it)
}

func (c *Catalog) IsAvailable(it item.Item) bool {
	return indexOf(c.available, it) >= 0
}

func (c *Catalog) IsDepleted(it item.Item) bool {
	return indexOf(c.depleted, it) >= 0
}

// FindByName returns the first available item whose name matches, ignoring case
func (c *Catalog) FindByName(name string) (item.Item, bool) {
	for _, it := range c.available {
		if strings.EqualFold(it.Name(), name) {
			return it, true
		}
	}
	return nil, false
}

// Available returns a copy of the available listings
func (c *Catalog) Available() []item.Item {
	return slices.Clone(c.available)
}

// Depleted returns a copy of the depleted listings
func (c *Catalog) Depleted() []item.Item {
	return slices.Clone(c.depleted)
}

// Len is the number of listings in both lists
func (c *Catalog) Len() int {
	return len(c.available) + len(c.depleted)
}

func indexOf(items []item.Item, it item.Item) int {
	if it == nil {
		return -1
	}
	return slices.IndexFunc(items, func(candidate item.Item) bool { return candidate == it })
}

func clamp(position, length int) int {
	return max(0, min(position, length))
}

func itemName(it item.Item) string {
	if it == nil {
		return "<nil>"
	}
	return it.Name()
}
