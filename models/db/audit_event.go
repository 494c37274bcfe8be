package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

// AuditEvent - журнал событий системы, только добавление.
// Пишется вне бизнес-транзакции, best-effort
type AuditEvent struct {
	BaseOrgModel
	EventType  AuditEventType `gorm:"type:varchar(100);index"`
	EntityType string         `gorm:"type:varchar(100)"`
	EntityID   string         `gorm:"type:varchar(36);index"`
	UserID     string         `gorm:"type:varchar(36)"`
	Payload    AuditPayload   `gorm:"type:jsonb"`
}

type AuditEventType string

const (
	AuditApplicationCreated   AuditEventType = "application_created"
	AuditApplicationMoved     AuditEventType = "application_moved"
	AuditApplicationWithdrawn AuditEventType = "application_withdrawn"
	AuditPreHireConfirmed     AuditEventType = "pre_hire_confirmed"
	AuditJobPublished         AuditEventType = "job_published"
	AuditJobClosed            AuditEventType = "job_closed"
	AuditDocumentUploaded     AuditEventType = "document_uploaded"
	AuditDocumentShared       AuditEventType = "document_shared"
	AuditSubscriptionChanged  AuditEventType = "subscription_changed"
	AuditOutreachSpent        AuditEventType = "outreach_spent"
	AuditWaitlistInvited      AuditEventType = "waitlist_invited"
)

type AuditPayload map[string]any

func (j AuditPayload) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AuditPayload) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	}
	return nil
}
