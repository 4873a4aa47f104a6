package domain

import "time"

// Fallback display text substituted when the upstream omits optional
// status-event fields.
const (
	FallbackComment  = "Sin comentario"
	FallbackUserName = "Sistema"
)

// StatusEvent is one entry in a shipment's audit trail as received from the
// upstream API. The status label is a free-form string from an externally
// defined vocabulary ("creado", "en tránsito", "entregado", …) and the
// timestamp stays in its wire form; events are immutable once received.
type StatusEvent struct {
	ID        int     `json:"id"`
	Status    string  `json:"status"`
	Comment   *string `json:"comment"`
	Timestamp string  `json:"timestamp"`
	UserName  string  `json:"user_name"`
}

// OccurredAt parses the event timestamp. The zero time is returned for an
// unparseable value so ordering degrades instead of failing.
func (e StatusEvent) OccurredAt() time.Time {
	ts, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// StatusView is a display-ready status entry: fallback text already applied
// for fields the upstream may omit.
type StatusView struct {
	ID        int    `json:"id"`
	Status    string `json:"status"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
	UserName  string `json:"user_name"`
}

// TrackingView is the read-only projection built from a shipment record and
// its status events: the identity, the current status (most recent event, or
// nil when the history is empty) and the full history ordered most recent
// first. It is rebuilt on every query and never persisted.
type TrackingView struct {
	ID            int          `json:"id"`
	TrackingCode  string       `json:"tracking_code"`
	OriginID      int          `json:"origin_id"`
	DestinationID int          `json:"destination_id"`
	CreatedAt     string       `json:"created_at"`
	CurrentStatus *StatusView  `json:"current_status"`
	History       []StatusView `json:"history"`
}
