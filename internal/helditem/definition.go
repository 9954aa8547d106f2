package helditem

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BattleItems_Go/internal/domain"
)

// Flags lock item capabilities off. The zero value leaves every capability on.
type Flags struct {
	Untransferable bool
	Unstealable    bool
	Unsuppressable bool
}

// Definition is the immutable description of one held item
type Definition struct {
	id          domain.HeldItemID
	displayName string
	maxStack    int
	flags       Flags
	behavior    Behavior
}

// NewDefinition validates and builds an item definition. The behavior is copied so later
// changes to the caller's slices do not leak into the catalog.
func NewDefinition(id domain.HeldItemID, maxStack int, behavior Behavior, flags Flags) (*Definition, error) {
	if id == domain.HeldItemNone {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDefinition, ErrMsgNoItemID)
	}
	if maxStack < 1 {
		return nil, fmt.Errorf("%w: %s: "+ErrFmtInvalidMaxStack, domain.ErrInvalidDefinition, id, maxStack)
	}
	if behavior == nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidDefinition, id, ErrMsgNoBehavior)
	}

	return &Definition{
		id:          id,
		displayName: cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(id.String()), "_", " ")),
		maxStack:    maxStack,
		flags:       flags,
		behavior:    behavior.clone(),
	}, nil
}

// ID returns the item's catalog id
func (d *Definition) ID() domain.HeldItemID { return d.id }

// Name returns the catalog key, e.g. "LIGHT_BALL"
func (d *Definition) Name() string { return d.id.String() }

// DisplayName returns the user-facing name, e.g. "Light Ball"
func (d *Definition) DisplayName() string { return d.displayName }

// MaxStack is the most copies one holder may carry
func (d *Definition) MaxStack() int { return d.maxStack }

// Flags returns the locked capability flags
func (d *Definition) Flags() Flags { return d.flags }

func (d *Definition) IsTransferable() bool { return !d.flags.Untransferable }

// IsStealable reports whether the item may be taken by theft. Untransferable items are never stealable.
func (d *Definition) IsStealable() bool { return d.IsTransferable() && !d.flags.Unstealable }

func (d *Definition) IsSuppressable() bool { return !d.flags.Unsuppressable }

// Behavior returns a copy of the item's behavior config
func (d *Definition) Behavior() Behavior { return d.behavior.clone() }

// EffectKinds returns the triggers the item participates in
func (d *Definition) EffectKinds() []EffectKind {
	return []EffectKind{d.behavior.Kind()}
}

// Has reports whether the item participates in kind
func (d *Definition) Has(kind EffectKind) bool {
	return d.behavior.Kind() == kind
}
