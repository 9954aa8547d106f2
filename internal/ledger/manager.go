// Package ledger keeps a holder's held item stacks.
package ledger

import (
	"slices"

	"github.com/osse101/BattleItems_Go/internal/domain"
)

// RemoveAll passed to Remove drops every copy of an item
const RemoveAll = -1

// Limits supplies per-item stack limits and capability flags, usually the item catalog
type Limits interface {
	MaxStack(id domain.HeldItemID) int
	IsTransferable(id domain.HeldItemID) bool
	IsStealable(id domain.HeldItemID) bool
	IsSuppressable(id domain.HeldItemID) bool
}

// Manager holds one holder's stacks in insertion order. Every stack stays within
// [0, max stack]; an item whose stack reaches zero is removed, and adding it again
// places it last. A Manager is owned by a single holder and is not safe for concurrent use.
type Manager struct {
	limits Limits
	order  []domain.HeldItemID
	stacks map[domain.HeldItemID]int
}

// NewManager creates an empty ledger
func NewManager(limits Limits) *Manager {
	return &Manager{
		limits: limits,
		stacks: make(map[domain.HeldItemID]int),
	}
}

// Stack returns how many copies of id are held
func (m *Manager) Stack(id domain.HeldItemID) int {
	return m.stacks[id]
}

func (m *Manager) Has(id domain.HeldItemID) bool {
	return m.stacks[id] > 0
}

// IsMaxStack reports whether no more copies of id may be added
func (m *Manager) IsMaxStack(id domain.HeldItemID) bool {
	return m.stacks[id] >= m.limits.MaxStack(id)
}

// Add grants up to qty copies, clamped to the item's max stack.
// It reports whether any copy was added.
func (m *Manager) Add(id domain.HeldItemID, qty int) bool {
	if qty <= 0 {
		return false
	}
	current := m.stacks[id]
	next := min(current+qty, m.limits.MaxStack(id))
	if next <= current {
		return false
	}

	if current == 0 {
		m.order = append(m.order, id)
	}
	m.stacks[id] = next
	return true
}

// Remove takes qty copies (RemoveAll for every copy) and deletes the entry at zero.
// It reports whether any copy was removed.
func (m *Manager) Remove(id domain.HeldItemID, qty int) bool {
	current, ok := m.stacks[id]
	if !ok || qty == 0 || qty < RemoveAll {
		return false
	}

	next := current - qty
	if qty == RemoveAll {
		next = 0
	}
	if next > 0 {
		m.stacks[id] = next
		return true
	}

	delete(m.stacks, id)
	m.order = slices.DeleteFunc(m.order, func(held domain.HeldItemID) bool { return held == id })
	return true
}

// Items returns the held ids in insertion order
func (m *Manager) Items() []domain.HeldItemID {
	return slices.Clone(m.order)
}

// TransferableItems returns the held ids that may change holders, in insertion order
func (m *Manager) TransferableItems() []domain.HeldItemID {
	return m.filter(m.limits.IsTransferable)
}

// StealableItems returns the held ids that may be taken by theft, in insertion order
func (m *Manager) StealableItems() []domain.HeldItemID {
	return m.filter(m.limits.IsStealable)
}

// SuppressableItems returns the held ids that item-negating effects switch off
func (m *Manager) SuppressableItems() []domain.HeldItemID {
	return m.filter(m.limits.IsSuppressable)
}

// Len returns the number of distinct items held
func (m *Manager) Len() int {
	return len(m.order)
}

// TotalCount returns the number of copies held across all items
func (m *Manager) TotalCount() int {
	total := 0
	for _, n := range m.stacks {
		total += n
	}
	return total
}

// Clear drops every item
func (m *Manager) Clear() {
	m.order = nil
	clear(m.stacks)
}

func (m *Manager) filter(keep func(domain.HeldItemID) bool) []domain.HeldItemID {
	var ids []domain.HeldItemID
	for _, id := range m.order {
		if keep(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
