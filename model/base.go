// api/model/base.go
package model

import "time"

// Entity is implemented by every persisted record.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	EntityRevision() int64
	SetEntityRevision(rev int64)
}

// Base holds the identity and optimistic revision shared by all records.
type Base struct {
	ID        string    `json:"id" bson:"_id"`
	Revision  int64     `json:"revision" bson:"revision"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (b *Base) EntityID() string { return b.ID }

func (b *Base) SetEntityID(id string) { b.ID = id }

func (b *Base) EntityRevision() int64 { return b.Revision }

func (b *Base) SetEntityRevision(rev int64) { b.Revision = rev }

// Touch sets the creation time when unset and always advances UpdatedAt.
func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// AuditEntry is one append-only record of an action taken against an entity.
type AuditEntry struct {
	Action    string                 `json:"action" bson:"action"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
	Actor     string                 `json:"actor" bson:"actor"`
	Details   map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
	IPAddress string                 `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
}

type AuditTrail []AuditEntry

func (t *AuditTrail) Append(action, actor string, at time.Time, details map[string]interface{}) {
	*t = append(*t, AuditEntry{
		Action:    action,
		Timestamp: at,
		Actor:     actor,
		Details:   details,
	})
}

func statusChange(from, to string) map[string]interface{} {
	return map[string]interface{}{"from": from, "to": to}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
