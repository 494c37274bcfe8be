package auditapimodels

import (
	"time"

	apimodels "horeca-jobs-backend/models/api"
	dbmodels "horeca-jobs-backend/models/db"
)

type EventView struct {
	ID         string                  `json:"id"`
	EventType  dbmodels.AuditEventType `json:"event_type"`
	EntityType string                  `json:"entity_type"`
	EntityID   string                  `json:"entity_id"`
	UserID     string                  `json:"user_id,omitempty"`
	Payload    dbmodels.AuditPayload   `json:"payload,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
}

func Convert(rec dbmodels.AuditEvent) EventView {
	return EventView{
		ID:         rec.ID,
		EventType:  rec.EventType,
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		UserID:     rec.UserID,
		Payload:    rec.Payload,
		CreatedAt:  rec.CreatedAt,
	}
}

type EventFilter struct {
	apimodels.Pagination
	EntityID  string                   `json:"entity_id"`
	EventType *dbmodels.AuditEventType `json:"event_type"`
}
