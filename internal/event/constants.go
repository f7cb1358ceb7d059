package event

// Log message constants
const (
	LogMsgListenerRegistered   = "Listener registered"
	LogMsgListenerUnregistered = "Listener unregistered"
	LogMsgListenerPanicked     = "Listener panicked during dispatch"
	LogMsgDispatch             = "Dispatching notification"

	LogMsgListenerNotComparable = "Listener refused: type is not comparable"
)
