package commands

// LabelGeneratedEvent is published after an expedition is persisted and its
// label rendered.
type LabelGeneratedEvent struct {
	OrderRef string
	Code     string
	RouteID  string
}

// LabelRepeatedEvent is published after a stored expedition's label is
// rendered again.
type LabelRepeatedEvent struct {
	OrderRef string
	Code     string
}

// ExpeditionCancelledEvent is published after an expedition is cancelled.
type ExpeditionCancelledEvent struct {
	OrderRef string
	Code     string
}

// ExpeditionStatusChangedEvent is published by the tracking refresh for every
// shipment whose carrier status moved.
type ExpeditionStatusChangedEvent struct {
	OrderRef string
	Code     string
	From     string
	To       string
}
