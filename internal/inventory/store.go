// Package inventory holds a player's items split into equipped and stored
// collections. Capacity bounds the stored collection only.
package inventory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/item"
)

// View is the read-only side of a Store. Every slice it returns is a copy.
type View interface {
	Capacity() int
	HasSpace() bool
	AvailableSlots() int
	Stored() []item.Item
	Equipped() []item.Item
	IsStored(it item.Item) bool
	IsEquipped(it item.Item) bool
	Owns(it item.Item) bool
	FindByName(name string) (item.Item, bool)
}

var _ View = (*Store)(nil)

// Store is a two-collection inventory. An item reference lives in at most one
// collection at a time. Items are compared by identity.
type Store struct {
	capacity int
	equipped []item.Item
	stored   []item.Item
}

// New creates an empty store with the given number of stored slots
func New(capacity int) (*Store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf(ErrMsgCapacityFmt, domain.ErrInvalidCapacity, capacity)
	}
	return &Store{capacity: capacity}, nil
}

func (s *Store) Capacity() int { return s.capacity }

// HasSpace reports whether another item fits in stored
func (s *Store) HasSpace() bool {
	return len(s.stored) < s.capacity
}

// AvailableSlots is the number of free stored slots
func (s *Store) AvailableSlots() int {
	return s.capacity - len(s.stored)
}

// Stored returns a copy of the stored collection in order
func (s *Store) Stored() []item.Item {
	return slices.Clone(s.stored)
}

// Equipped returns a copy of the equipped collection in order
func (s *Store) Equipped() []item.Item {
	return slices.Clone(s.equipped)
}

func (s *Store) IsStored(it item.Item) bool {
	return indexOf(s.stored, it) >= 0
}

func (s *Store) IsEquipped(it item.Item) bool {
	return indexOf(s.equipped, it) >= 0
}

// Owns reports whether it is in either collection
func (s *Store) Owns(it item.Item) bool {
	return s.IsStored(it) || s.IsEquipped(it)
}

// Add appends it to stored
func (s *Store) Add(it item.Item) error {
	if it == nil {
		return domain.ErrNilItem
	}
	if s.Owns(it) {
		return fmt.Errorf(ErrMsgAlreadyOwnedFmt, domain.ErrItemAlreadyOwned, it.Name())
	}
	if !s.HasSpace() {
		return fmt.Errorf(ErrMsgStoredFullFmt, domain.ErrInventoryFull, len(s.stored), s.capacity)
	}
	s.stored = append(s.stored, it)
	return nil
}

// Insert places it in stored at index, shifting later items right.
// Used to restore an item to the slot it was removed from.
func (s *Store) Insert(index int, it item.Item) error {
	if it == nil {
		return domain.ErrNilItem
	}
	if s.Owns(it) {
		return fmt.Errorf(ErrMsgAlreadyOwnedFmt, domain.ErrItemAlreadyOwned, it.Name())
	}
	if !s.HasSpace() {
		return fmt.Errorf(ErrMsgStoredFullFmt, domain.ErrInventoryFull, len(s.stored), s.capacity)
	}
	if index < 0 || index > len(s.stored) {
		return fmt.Errorf(ErrMsgIndexFmt, domain.ErrInvalidInput, index, len(s.stored))
	}
	s.stored = slices.Insert(s.stored, index, it)
	return nil
}

// Remove deletes it from stored and returns the index it occupied
func (s *Store) Remove(it item.Item) (int, bool) {
	idx := indexOf(s.stored, it)
	if idx < 0 {
		return -1, false
	}
	s.stored = slices.Delete(s.stored, idx, idx+1)
	return idx, true
}

// Equip moves it from stored to the end of equipped and returns its former
// stored index
func (s *Store) Equip(it item.Item) (int, error) {
	return s.EquipAt(it, len(s.equipped))
}

// EquipAt moves it from stored into equipped at position. A position past
// the end appends.
func (s *Store) EquipAt(it item.Item, position int) (int, error) {
	idx := indexOf(s.stored, it)
	if idx < 0 {
		return -1, fmt.Errorf(ErrMsgNotStoredFmt, domain.ErrNotInInventory, itemName(it))
	}
	s.stored = slices.Delete(s.stored, idx, idx+1)
	s.equipped = slices.Insert(s.equipped, clamp(position, len(s.equipped)), it)
	return idx, nil
}

// Unequip moves it from equipped to the end of stored and returns its former
// equipped index. Fails with ErrInventoryFull when stored has no free slot.
func (s *Store) Unequip(it item.Item) (int, error) {
	idx := indexOf(s.equipped, it)
	if idx < 0 {
		return -1, fmt.Errorf(ErrMsgNotEquippedFmt, domain.ErrNotEquipped, itemName(it))
	}
	if !s.HasSpace() {
		return -1, fmt.Errorf(ErrMsgStoredFullFmt, domain.ErrInventoryFull, len(s.stored), s.capacity)
	}
	s.equipped = slices.Delete(s.equipped, idx, idx+1)
	s.stored = append(s.stored, it)
	return idx, nil
}

// UnequipAt moves it from equipped into stored at position. The move always
// succeeds when it is equipped: an item equipped from a free slot may go back
// to that slot even if stored is full. A position past the end appends.
func (s *Store) UnequipAt(it item.Item, position int) (int, error) {
	idx := indexOf(s.equipped, it)
	if idx < 0 {
		return -1, fmt.Errorf(ErrMsgNotEquippedFmt, domain.ErrNotEquipped, itemName(it))
	}
	s.equipped = slices.Delete(s.equipped, idx, idx+1)
	s.stored = slices.Insert(s.stored, clamp(position, len(s.stored)), it)
	return idx, nil
}

// Replace swaps old for replacement in whichever collection holds old,
// keeping its position
func (s *Store) Replace(old, replacement item.Item) bool {
	if replacement == nil || (old != replacement && s.Owns(replacement)) {
		return false
	}
	if idx := indexOf(s.stored, old); idx >= 0 {
		s.stored[idx] = replacement
		return true
	}
	if idx := indexOf(s.equipped, old); idx >= 0 {
		s.equipped[idx] = replacement
		return true
	}
	return false
}

// FindByName looks up an item by case-insensitive name, equipped items first
func (s *Store) FindByName(name string) (item.Item, bool) {
	for _, it := range s.equipped {
		if strings.EqualFold(it.Name(), name) {
			return it, true
		}
	}
	for _, it := range s.stored {
		if strings.EqualFold(it.Name(), name) {
			return it, true
		}
	}
	return nil, false
}

func indexOf(items []item.Item, it item.Item) int {
	if it == nil {
		return -1
	}
	return slices.IndexFunc(items, func(candidate item.Item) bool { return candidate == it })
}

func clamp(position, length int) int {
	if position < 0 {
		return 0
	}
	if position > length {
		return length
	}
	return position
}

func itemName(it item.Item) string {
	if it == nil {
		return "<nil>"
	}
	return it.Name()
}
