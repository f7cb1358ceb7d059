package player

// ==================== Error Messages ====================

const (
	ErrMsgNegativeAmountFmt = "%w: amount must not be negative, got %s"
	ErrMsgDebitFmt          = "%w: balance %s, needed %s"
	ErrMsgNegativeGoldFmt   = "%w: starting gold must not be negative, got %s"
)

// ==================== Log Messages ====================

const (
	LogMsgLevelClamped = "Player level clamped"
)
