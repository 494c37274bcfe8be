package billingplanstore

import (
	dbmodels "horeca-jobs-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SubscriptionPlan) (id string, err error)
	GetByCode(code string) (rec *dbmodels.SubscriptionPlan, err error)
	List() (list []dbmodels.SubscriptionPlan, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SubscriptionPlan) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByCode(code string) (*dbmodels.SubscriptionPlan, error) {
	rec := dbmodels.SubscriptionPlan{}
	err := i.db.
		Model(&dbmodels.SubscriptionPlan{}).
		Where("code = ?", code).
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

func (i impl) List() (list []dbmodels.SubscriptionPlan, err error) {
	list = []dbmodels.SubscriptionPlan{}
	err = i.db.
		Model(dbmodels.SubscriptionPlan{}).
		Order("cost").
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
