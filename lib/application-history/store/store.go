package applicationhistorystore

import (
	applicationapimodels "horeca-jobs-backend/models/api/application"
	dbmodels "horeca-jobs-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ApplicationStatusHistory) (id string, err error)
	ListCount(orgID, applicationID string) (count int64, err error)
	List(orgID, applicationID string, filter applicationapimodels.HistoryFilter) (list []dbmodels.ApplicationStatusHistory, err error)
	ListAll(applicationID string) (list []dbmodels.ApplicationStatusHistory, err error)
	GetLast(applicationID string) (rec *dbmodels.ApplicationStatusHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationStatusHistory) (id string, err error) {
	err = i.db.
		Omit("Job").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(orgID, applicationID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.ApplicationStatusHistory{}).
		Where("organization_id = ?", orgID).
		Where("application_id = ?", applicationID).
		Count(&count).
		Error
	return count, err
}

func (i impl) List(orgID, applicationID string, filter applicationapimodels.HistoryFilter) (list []dbmodels.ApplicationStatusHistory, err error) {
	list = []dbmodels.ApplicationStatusHistory{}
	tx := i.db.
		Model(dbmodels.ApplicationStatusHistory{}).
		Where("organization_id = ?", orgID).
		Where("application_id = ?", applicationID)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll(applicationID string) (list []dbmodels.ApplicationStatusHistory, err error) {
	list = []dbmodels.ApplicationStatusHistory{}
	err = i.db.
		Model(dbmodels.ApplicationStatusHistory{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GetLast(applicationID string) (*dbmodels.ApplicationStatusHistory, error) {
	rec := dbmodels.ApplicationStatusHistory{}
	err := i.db.
		Model(&dbmodels.ApplicationStatusHistory{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
