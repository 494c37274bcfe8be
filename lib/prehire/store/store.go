package prehirestore

import (
	dbmodels "horeca-jobs-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PreHireConfirmation) (id string, err error)
	List(applicationID string) (list []dbmodels.PreHireConfirmation, err error)
	IsConfirmed(applicationID string) (confirmed bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PreHireConfirmation) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string) (list []dbmodels.PreHireConfirmation, err error) {
	list = []dbmodels.PreHireConfirmation{}
	err = i.db.
		Model(dbmodels.PreHireConfirmation{}).
		Where("application_id = ?", applicationID).
		Order("confirmed_at").
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

func (i impl) IsConfirmed(applicationID string) (confirmed bool, err error) {
	err = i.db.Model(&dbmodels.PreHireConfirmation{}).
		Select("count(*) > 0").
		Where("application_id = ?", applicationID).
		Where("right_to_work_confirmed = ?", true).
		Find(&confirmed).
		Error
	return confirmed, err
}
