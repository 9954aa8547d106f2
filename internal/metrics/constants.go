package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Held item metric names
const (
	MetricNameHeldItemDispatchPasses = "helditem_dispatch_passes_total"
	MetricNameHeldItemsApplied       = "helditem_applied_total"
	MetricNameHeldItemTransfers      = "helditem_transfers_total"
	MetricNameHeldItemsConsumed      = "helditem_consumed_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Held item metric help text
const (
	HelpTextHeldItemDispatchPasses = "Total number of held item dispatch passes by effect kind"
	HelpTextHeldItemsApplied       = "Total number of held item applications by effect kind and item"
	HelpTextHeldItemTransfers      = "Total number of attempted held item transfers by item and result"
	HelpTextHeldItemsConsumed      = "Total number of held item consumptions by item and whether a copy was removed"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelType    = "type"
	LabelItem    = "item"
	LabelEffect  = "effect"
	LabelResult  = "result"
	LabelRemoved = "removed"
)
