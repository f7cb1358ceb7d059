package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgNilItem          = "item is nil"
	ErrMsgUnknownItemKind  = "unknown item kind"
	ErrMsgUnknownModifier  = "unknown modifier"
	ErrMsgUnknownElement   = "unknown element"
	ErrMsgInvalidPrice     = "invalid price"
	ErrMsgInvalidRarity    = "invalid rarity"
	ErrMsgItemAlreadyOwned = "item already owned"

	// Inventory errors
	ErrMsgInventoryFull   = "inventory is full"
	ErrMsgNotInInventory  = "item not in inventory"
	ErrMsgNotEquipped     = "item is not equipped"
	ErrMsgInvalidCapacity = "invalid inventory capacity"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgLevelTooLow       = "level requirement not met"

	// Catalog errors
	ErrMsgItemUnavailable = "item not available in catalog"
	ErrMsgNotDepleted     = "item is not sold out"
	ErrMsgAlreadyListed   = "item already listed"

	// Transaction errors
	ErrMsgValidationFailed = "validation failed"
	ErrMsgCommandRejected  = "command rejected"
	ErrMsgNothingToUndo    = "nothing to undo"
	ErrMsgNothingToRedo    = "nothing to redo"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgSchemaViolation  = "schema validation failed"
	ErrMsgInvalidSeedEntry = "invalid seed entry"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrNilItem          = errors.New(ErrMsgNilItem)
	ErrUnknownItemKind  = errors.New(ErrMsgUnknownItemKind)
	ErrUnknownModifier  = errors.New(ErrMsgUnknownModifier)
	ErrUnknownElement   = errors.New(ErrMsgUnknownElement)
	ErrInvalidPrice     = errors.New(ErrMsgInvalidPrice)
	ErrInvalidRarity    = errors.New(ErrMsgInvalidRarity)
	ErrItemAlreadyOwned = errors.New(ErrMsgItemAlreadyOwned)

	// Inventory errors
	ErrInventoryFull   = errors.New(ErrMsgInventoryFull)
	ErrNotInInventory  = errors.New(ErrMsgNotInInventory)
	ErrNotEquipped     = errors.New(ErrMsgNotEquipped)
	ErrInvalidCapacity = errors.New(ErrMsgInvalidCapacity)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrLevelTooLow       = errors.New(ErrMsgLevelTooLow)

	// Catalog errors
	ErrItemUnavailable = errors.New(ErrMsgItemUnavailable)
	ErrNotDepleted     = errors.New(ErrMsgNotDepleted)
	ErrAlreadyListed   = errors.New(ErrMsgAlreadyListed)

	// Transaction errors
	ErrValidationFailed = errors.New(ErrMsgValidationFailed)
	ErrCommandRejected  = errors.New(ErrMsgCommandRejected)
	ErrNothingToUndo    = errors.New(ErrMsgNothingToUndo)
	ErrNothingToRedo    = errors.New(ErrMsgNothingToRedo)

	// Input errors
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrSchemaViolation  = errors.New(ErrMsgSchemaViolation)
	ErrInvalidSeedEntry = errors.New(ErrMsgInvalidSeedEntry)
)
