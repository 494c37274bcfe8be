package audit

import (
	log "github.com/sirupsen/logrus"
	"github.com/pkg/errors"
	"horeca-jobs-backend/db"
	auditstore "horeca-jobs-backend/lib/audit/store"
	auditapimodels "horeca-jobs-backend/models/api/audit"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Log(eventType dbmodels.AuditEventType, entityType, entityID string, payload dbmodels.AuditPayload, userID, orgID string)
	List(orgID string, filter auditapimodels.EventFilter) ([]auditapimodels.EventView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: auditstore.NewInstance(db.DB),
	}
}

type impl struct {
	store auditstore.Provider
}

// Log - запись события аудита.
// Вызывается после коммита бизнес-транзакции и не участвует в ней:
// успешный перевод отклика не откатывается из-за сбоя аудита,
// сбой фиксируется в логе
func (i impl) Log(eventType dbmodels.AuditEventType, entityType, entityID string, payload dbmodels.AuditPayload, userID, orgID string) {
	rec := dbmodels.AuditEvent{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: orgID,
		},
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		Payload:    payload,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).
			WithField("organization_id", orgID).
			WithField("event_type", eventType).
			WithField("entity_id", entityID).
			Error("ошибка записи события аудита")
	}
}

func (i impl) List(orgID string, filter auditapimodels.EventFilter) ([]auditapimodels.EventView, int64, error) {
	rowCount, err := i.store.ListCount(orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(orgID, filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала событий")
		return nil, 0, errors.New("ошибка получения журнала событий")
	}
	result := make([]auditapimodels.EventView, 0, len(list))
	for _, rec := range list {
		result = append(result, auditapimodels.Convert(rec))
	}
	return result, rowCount, nil
}
