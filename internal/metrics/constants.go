package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every shop metric
const Namespace = "shopkeep"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNamePlayerGold       = "player_gold"
	MetricNameItemsStored      = "items_stored"
	MetricNameItemsEquipped    = "items_equipped"
	MetricNameCatalogAvailable = "catalog_available_items"
	MetricNameCatalogDepleted  = "catalog_depleted_items"
	MetricNameEquipChanges     = "equipment_changes_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of shop notifications delivered"
)

// Business metric help text
const (
	HelpTextPlayerGold       = "Current gold balance per player"
	HelpTextItemsStored      = "Items currently in the backpack per player"
	HelpTextItemsEquipped    = "Items currently equipped per player"
	HelpTextCatalogAvailable = "Items currently for sale"
	HelpTextCatalogDepleted  = "Items currently sold out"
	HelpTextEquipChanges     = "Equip and unequip operations per item"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelPlayer    = "player"
	LabelDirection = "direction"
)

// Values of LabelDirection
const (
	DirectionEquip   = "equip"
	DirectionUnequip = "unequip"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
