package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgConfiguration     = "held item configuration error"
	ErrMsgUnknownItem       = "unknown held item"
	ErrMsgDuplicateItemID   = "duplicate held item id"
	ErrMsgItemIDMismatch    = "held item id does not match its definition"
	ErrMsgCatalogFrozen     = "held item catalog is frozen"
	ErrMsgInvalidDefinition = "invalid held item definition"
	ErrMsgInvalidCatalog    = "invalid held item catalog"
	ErrMsgInvalidSpecies    = "invalid species table"

	// Transfer errors
	ErrMsgTransferRejected = "held item transfer rejected"
	ErrMsgItemNotStealable = "item is not stealable"
	ErrMsgHolderStackFull  = "holder already carries the maximum stack"
	ErrMsgItemNotHeld      = "item is not held"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Root errors. Every configuration or transfer error below wraps one of these.
var (
	ErrConfiguration    = errors.New(ErrMsgConfiguration)
	ErrTransferRejected = errors.New(ErrMsgTransferRejected)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog integrity errors: fatal if ever reached during a battle
	ErrUnknownItem       = fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgUnknownItem)
	ErrDuplicateItemID   = fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgDuplicateItemID)
	ErrItemIDMismatch    = fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgItemIDMismatch)
	ErrCatalogFrozen     = fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgCatalogFrozen)
	ErrInvalidDefinition = fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidDefinition)
	ErrInvalidCatalog    = fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidCatalog)
	ErrInvalidSpecies    = fmt.Errorf("%w: %s", ErrConfiguration, ErrMsgInvalidSpecies)

	// Single rejected draw during a theft; the theft continues
	ErrItemNotStealable = fmt.Errorf("%w: %s", ErrTransferRejected, ErrMsgItemNotStealable)
	ErrHolderStackFull  = fmt.Errorf("%w: %s", ErrTransferRejected, ErrMsgHolderStackFull)
	ErrItemNotHeld      = fmt.Errorf("%w: %s", ErrTransferRejected, ErrMsgItemNotHeld)
)
