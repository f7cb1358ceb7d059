package command

// ==================== Descriptions ====================

const (
	DescBuyFmt     = "Buy %s for %s gold"
	DescSellFmt    = "Sell %s for %s gold"
	DescEquipFmt   = "Equip %s"
	DescUnequipFmt = "Unequip %s"
	DescUpgradeFmt = "Upgrade %s for %s gold"
)

// ==================== Log Messages ====================

// Guarded no-ops
const (
	LogMsgAlreadyExecuted  = "Command already executed"
	LogMsgNotExecuted      = "Command has not been executed, nothing to undo"
	LogMsgInsufficientGold = "Not enough gold"
	LogMsgInventoryFull    = "Inventory is full"
	LogMsgNotInCatalog     = "Item is not available in the shop"
	LogMsgAlreadyOwned     = "Item is already owned"
	LogMsgNotStored        = "Item is not in the backpack"
	LogMsgNotEquipped      = "Item is not equipped"
	LogMsgNotOwned         = "Item is not owned"
	LogMsgNegativeAmount   = "Amount must not be negative"
	LogMsgUndoFailed       = "Undo could not be applied"
	LogMsgNilCommand       = "Nil command ignored"
	LogMsgNothingToUndo    = "Nothing to undo"
	LogMsgNothingToRedo    = "Nothing to redo"
	LogMsgRedoRejected     = "Redo could not be applied, history unchanged"
	LogMsgCommandRejected  = "Command not applied, not recorded"
)

// Applied transactions
const (
	LogMsgExecuted = "Command executed"
	LogMsgUndone   = "Command undone"
	LogMsgRedone   = "Command redone"
)
