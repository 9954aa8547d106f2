package helditem

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/osse101/BattleItems_Go/internal/domain"
)

// Catalog maps item ids to definitions. It is populated once, frozen, and then
// read-only: a frozen catalog may be shared by any number of battles without locking.
// Registration itself is not safe for concurrent use.
type Catalog struct {
	defs   map[domain.HeldItemID]*Definition
	frozen atomic.Bool
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[domain.HeldItemID]*Definition)}
}

// Register adds a definition under id. The id must match the definition's own id.
func (c *Catalog) Register(id domain.HeldItemID, def *Definition) error {
	if c.frozen.Load() {
		return fmt.Errorf("%w: %s", domain.ErrCatalogFrozen, id)
	}
	if def == nil {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidDefinition, id, ErrMsgNilDefinition)
	}
	if def.ID() != id {
		return fmt.Errorf("%w: registered as %s, defined as %s", domain.ErrItemIDMismatch, id, def.ID())
	}
	if _, exists := c.defs[id]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateItemID, id)
	}
	c.defs[id] = def
	return nil
}

// Lookup returns the definition for id
func (c *Catalog) Lookup(id domain.HeldItemID) (*Definition, error) {
	def, ok := c.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownItem, id)
	}
	return def, nil
}

// MustLookup returns the definition for id and panics if it is missing.
// Use it only where the catalog is known to be exhaustive.
func (c *Catalog) MustLookup(id domain.HeldItemID) *Definition {
	def, err := c.Lookup(id)
	if err != nil {
		panic(err)
	}
	return def
}

// Freeze rejects any further registration
func (c *Catalog) Freeze() { c.frozen.Store(true) }

// Frozen reports whether the catalog is closed for registration
func (c *Catalog) Frozen() bool { return c.frozen.Load() }

// Len returns the number of registered items
func (c *Catalog) Len() int { return len(c.defs) }

// IDs returns every registered id in ascending order
func (c *Catalog) IDs() []domain.HeldItemID {
	ids := make([]domain.HeldItemID, 0, len(c.defs))
	for id := range c.defs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ByEffect returns the ids of items participating in kind, in ascending order
func (c *Catalog) ByEffect(kind EffectKind) []domain.HeldItemID {
	var ids []domain.HeldItemID
	for _, id := range c.IDs() {
		if c.defs[id].Has(kind) {
			ids = append(ids, id)
		}
	}
	return ids
}

// MaxStack returns the stack limit of id, or 0 for an unknown item
func (c *Catalog) MaxStack(id domain.HeldItemID) int {
	if def, ok := c.defs[id]; ok {
		return def.MaxStack()
	}
	return 0
}

func (c *Catalog) IsTransferable(id domain.HeldItemID) bool {
	def, ok := c.defs[id]
	return ok && def.IsTransferable()
}

func (c *Catalog) IsStealable(id domain.HeldItemID) bool {
	def, ok := c.defs[id]
	return ok && def.IsStealable()
}

func (c *Catalog) IsSuppressable(id domain.HeldItemID) bool {
	def, ok := c.defs[id]
	return ok && def.IsSuppressable()
}
