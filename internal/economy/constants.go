package economy

// ==================== Error Messages ====================

// Formatted error messages for items
const (
	ErrMsgItemNotListedFmt   = "%w: %q is not in the shop"
	ErrMsgItemNotStoredFmt   = "%w: %q is not in the backpack"
	ErrMsgItemNotEquippedFmt = "%w: %q is not equipped"
	ErrMsgItemNotOwnedFmt    = "%w: %q"
)

// Formatted error messages for transactions
const (
	ErrMsgValidationFmt   = "%w at %s: %w"
	ErrMsgRejectedFmt     = "%w: %s"
	ErrMsgBuildUpgradeFmt = "failed to build upgrade for %q: %w"
	ErrMsgUndoRejectedFmt = "%w: undo of %q"
	ErrMsgRedoRejectedFmt = "%w: redo"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgBuyCalled       = "Buy called"
	LogMsgSellCalled      = "Sell called"
	LogMsgEquipCalled     = "Equip called"
	LogMsgUnequipCalled   = "Unequip called"
	LogMsgUpgradeCalled   = "Upgrade called"
	LogMsgItemPurchased   = "Item purchased"
	LogMsgItemSold        = "Item sold"
	LogMsgItemEquipped    = "Item equipped"
	LogMsgItemUnequipped  = "Item unequipped"
	LogMsgItemUpgraded    = "Item upgraded"
	LogMsgValidationError = "Transaction failed validation"
)

// ==================== Action Types ====================

// Values of the "action" log attribute
const (
	ActionTypeBuy     = "buy"
	ActionTypeSell    = "sell"
	ActionTypeEquip   = "equip"
	ActionTypeUnequip = "unequip"
	ActionTypeUpgrade = "upgrade"
	ActionTypeUndo    = "undo"
	ActionTypeRedo    = "redo"
)
