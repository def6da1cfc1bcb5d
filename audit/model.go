// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Event is one mutation shipped to the external audit index. The embedded audit trail on
// each entity remains the record of truth; events are a searchable copy.
type Event struct {
	Timestamp  time.Time       `json:"timestamp"`
	Actor      string          `json:"actor"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// NewEvent builds an event, marshalling details when present.
func NewEvent(actor, action, entityType, entityID string, details interface{}) Event {
	ev := Event{
		Timestamp:  time.Now().UTC(),
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			ev.Details = raw
		}
	}
	return ev
}
