package validation

// Stage names reported in Result.Stage
const (
	StageRequest      = "request"
	StageGold         = "gold"
	StageSpace        = "inventory_space"
	StageLevel        = "level"
	StageAvailability = "availability"
)

// ==================== Failure Reasons ====================

const (
	ReasonNilPlayer        = "no player in request"
	ReasonNilItem          = "no item in request"
	ReasonGoldFmt          = "not enough gold: have %s, need %s"
	ReasonSpaceFmt         = "inventory full: %d of %d slots used"
	ReasonLevelFmt         = "level %d required, player is level %d"
	ReasonUnavailableFmt   = "%s is not available in the shop"
	ReasonNoCatalog        = "no catalog to check availability against"
	ReasonNegativePriceFmt = "price must not be negative, got %s"
)

// ==================== Log Messages ====================

const (
	LogMsgCheckPassed = "Purchase check passed"
	LogMsgCheckFailed = "Purchase check failed"
	LogMsgAllPassed   = "All purchase checks passed"
)
