package billingstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"horeca-jobs-backend/models"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Subscription) (id string, err error)
	Update(orgID, id string, updMap map[string]interface{}) error
	GetActiveExt(orgID string) (rec *dbmodels.SubscriptionExt, err error)
	ListToExpire(status models.SubscriptionStatus, expireTime time.Time) (list []dbmodels.Subscription, err error)
	SpendOutreachCredit(orgID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Subscription) (id string, err error) {
	err = i.db.
		Omit("Plan").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(orgID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Subscription{}).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("подписка не найдена")
	}
	return nil
}

func (i impl) GetActiveExt(orgID string) (*dbmodels.SubscriptionExt, error) {
	rec := dbmodels.SubscriptionExt{}
	err := i.db.
		Select("subscriptions.*, p.name as plan_name, p.cost as plan_cost, p.period_days as plan_period_days, p.job_slots as plan_job_slots").
		Model(&dbmodels.Subscription{}).
		Joins("left join subscription_plans as p on subscriptions.plan_id = p.id").
		Where("subscriptions.organization_id = ?", orgID).
		Where("subscriptions.status in ?", []models.SubscriptionStatus{models.SubscriptionStatusActive, models.SubscriptionStatusExpiresSoon}).
		Order("subscriptions.created_at desc").
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

func (i impl) ListToExpire(status models.SubscriptionStatus, expireTime time.Time) (list []dbmodels.Subscription, err error) {
	list = []dbmodels.Subscription{}
	err = i.db.
		Model(dbmodels.Subscription{}).
		Where("status = ?", status).
		Where("ends_at is not null and ends_at < ?", expireTime).
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

// SpendOutreachCredit - атомарное списание кредита,
// условие по остатку отсеивает списание при нулевом балансе
func (i impl) SpendOutreachCredit(orgID, id string) error {
	tx := i.db.
		Model(&dbmodels.Subscription{}).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Where("outreach_credits > 0").
		Update("outreach_credits", gorm.Expr("outreach_credits - 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewInvalidStateError("кредиты на раскрытие контактов закончились")
	}
	return nil
}
