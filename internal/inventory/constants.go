package inventory

// ==================== Error Messages ====================

const (
	ErrMsgCapacityFmt     = "%w: capacity must be at least 1, got %d"
	ErrMsgStoredFullFmt   = "%w: %d of %d slots used"
	ErrMsgAlreadyOwnedFmt = "%w: %s"
	ErrMsgNotStoredFmt    = "%w: %s is not in the backpack"
	ErrMsgNotEquippedFmt  = "%w: %s"
	ErrMsgIndexFmt        = "%w: index %d out of range [0,%d]"
)
