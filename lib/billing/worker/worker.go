package billingworker

import (
	"context"
	"time"

	"horeca-jobs-backend/db"
	billingstore "horeca-jobs-backend/lib/billing/store"
	baseworker "horeca-jobs-backend/lib/utils/base-worker"
	"horeca-jobs-backend/lib/utils/helpers"
	"horeca-jobs-backend/models"
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("SubscriptionWorker", 15*time.Second, 60*time.Minute),
		store:    billingstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store billingstore.Provider
}

func (i impl) handle(ctx context.Context) {
	// Подписки для перевода в EXPIRES_SOON
	expiresSoonDate := time.Now().Add(time.Hour * 24 * 3)
	i.updateStatuses(ctx, expiresSoonDate, models.SubscriptionStatusActive, models.SubscriptionStatusExpiresSoon)

	// Подписки для перевода в EXPIRED
	expiredDate := time.Now()
	i.updateStatuses(ctx, expiredDate, models.SubscriptionStatusExpiresSoon, models.SubscriptionStatusExpired)
}

func (i impl) updateStatuses(ctx context.Context, expireTime time.Time, currentStatus, newStatus models.SubscriptionStatus) {
	logger := i.GetLogger()
	list, err := i.store.ListToExpire(currentStatus, expireTime)
	if err != nil {
		logger.WithError(err).Errorf("Ошибка получения списка подписок для перевода в %v", newStatus)
		return
	}
	for _, sub := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		updMap := map[string]interface{}{
			"Status": newStatus,
		}
		err = i.store.Update(sub.OrganizationID, sub.ID, updMap)
		if err != nil {
			logger.
				WithError(err).
				WithField("organization_id", sub.OrganizationID).
				Errorf("Ошибка перевода статуса подписки в %v", newStatus)
			continue
		}
	}
}
