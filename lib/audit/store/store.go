package auditstore

import (
	auditapimodels "horeca-jobs-backend/models/api/audit"
	dbmodels "horeca-jobs-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AuditEvent) (id string, err error)
	List(orgID string, filter auditapimodels.EventFilter) (list []dbmodels.AuditEvent, err error)
	ListCount(orgID string, filter auditapimodels.EventFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditEvent) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(orgID string, filter auditapimodels.EventFilter) (list []dbmodels.AuditEvent, err error) {
	list = []dbmodels.AuditEvent{}
	tx := i.db.
		Model(dbmodels.AuditEvent{}).
		Where("organization_id = ?", orgID)
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(orgID string, filter auditapimodels.EventFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.AuditEvent{}).
		Where("organization_id = ?", orgID)
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) addFilter(tx *gorm.DB, filter auditapimodels.EventFilter) {
	if filter.EntityID != "" {
		tx.Where("entity_id = ?", filter.EntityID)
	}
	if filter.EventType != nil {
		tx.Where("event_type = ?", *filter.EventType)
	}
}
