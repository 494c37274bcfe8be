package db

import (
	planstore "horeca-jobs-backend/lib/billing/plan-store"
	dbmodels "horeca-jobs-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillSubscriptionPlans()
}

// стартовый набор тарифных планов
var defaultPlans = []dbmodels.SubscriptionPlan{
	{Name: "Старт", Code: "start", Cost: 0, Currency: "RUR", PeriodDays: 30, JobSlots: 1, OutreachCredits: 5},
	{Name: "Кафе и бар", Code: "cafe", Cost: 4900, Currency: "RUR", PeriodDays: 30, JobSlots: 5, OutreachCredits: 50},
	{Name: "Ресторан", Code: "restaurant", Cost: 9900, Currency: "RUR", PeriodDays: 30, JobSlots: 15, OutreachCredits: 200},
	{Name: "Сеть", Code: "chain", Cost: 24900, Currency: "RUR", PeriodDays: 30, JobSlots: 100, OutreachCredits: 1000},
}

func fillSubscriptionPlans() {
	store := planstore.NewInstance(DB)
	for _, plan := range defaultPlans {
		existedRec, err := store.GetByCode(plan.Code)
		if err != nil {
			log.WithError(err).Error("ошибка заполнения тарифных планов")
			return
		}
		if existedRec != nil {
			continue
		}
		_, err = store.Create(plan)
		if err != nil {
			log.WithError(err).Error("ошибка заполнения тарифных планов")
			return
		}
	}
}
