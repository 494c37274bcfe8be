package billinghandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"horeca-jobs-backend/db"
	"horeca-jobs-backend/lib/audit"
	billingplanstore "horeca-jobs-backend/lib/billing/plan-store"
	billingstore "horeca-jobs-backend/lib/billing/store"
	"horeca-jobs-backend/models"
	billingapimodels "horeca-jobs-backend/models/api/billing"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	ListPlans() (list []billingapimodels.PlanView, err error)
	Subscribe(orgID, userID string, data billingapimodels.SubscribeRequest) (result billingapimodels.SubscriptionView, err error)
	Cancel(orgID, userID string) error
	GetOrgSubscription(orgID string) (result billingapimodels.SubscriptionView, err error)
	GetActive(orgID string) (rec *dbmodels.SubscriptionExt, err error)
	SpendOutreachCredit(orgID, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     billingstore.NewInstance(db.DB),
		planStore: billingplanstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     billingstore.Provider
	planStore billingplanstore.Provider
}

func (i impl) getLogger(orgID, userID string) *log.Entry {
	logger := log.WithField("organization_id", orgID)
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func (i impl) ListPlans() ([]billingapimodels.PlanView, error) {
	list, err := i.planStore.List()
	if err != nil {
		return nil, err
	}
	result := make([]billingapimodels.PlanView, 0, len(list))
	for _, rec := range list {
		result = append(result, billingapimodels.PlanConvert(rec))
	}
	return result, nil
}

func (i impl) Subscribe(orgID, userID string, data billingapimodels.SubscribeRequest) (billingapimodels.SubscriptionView, error) {
	logger := i.getLogger(orgID, userID)
	plan, err := i.planStore.GetByCode(data.PlanCode)
	if err != nil {
		return billingapimodels.SubscriptionView{}, err
	}
	if plan == nil {
		return billingapimodels.SubscriptionView{}, models.NewNotFoundError("тарифный план не найден")
	}
	existed, err := i.store.GetActiveExt(orgID)
	if err != nil {
		return billingapimodels.SubscriptionView{}, err
	}
	if existed != nil {
		return billingapimodels.SubscriptionView{}, models.NewInvalidStateError("у организации уже есть активная подписка")
	}
	endsAt := time.Now().Add(time.Hour * 24 * time.Duration(plan.PeriodDays))
	rec := dbmodels.Subscription{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: orgID,
		},
		PlanID:          plan.ID,
		Status:          models.SubscriptionStatusActive,
		StartsAt:        time.Now(),
		EndsAt:          &endsAt,
		OutreachCredits: plan.OutreachCredits,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return billingapimodels.SubscriptionView{}, err
	}
	logger.WithField("rec_id", id).
		WithField("plan_code", plan.Code).
		Info("Оформлена подписка")
	audit.Instance.Log(dbmodels.AuditSubscriptionChanged, "subscription", id,
		dbmodels.AuditPayload{"plan_code": plan.Code, "action": "subscribe"}, userID, orgID)
	return i.GetOrgSubscription(orgID)
}

func (i impl) Cancel(orgID, userID string) error {
	rec, err := i.store.GetActiveExt(orgID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("активная подписка не найдена")
	}
	updMap := map[string]interface{}{
		"Status": models.SubscriptionStatusCanceled,
	}
	err = i.store.Update(orgID, rec.ID, updMap)
	if err != nil {
		return err
	}
	i.getLogger(orgID, userID).WithField("rec_id", rec.ID).Info("Подписка отменена")
	audit.Instance.Log(dbmodels.AuditSubscriptionChanged, "subscription", rec.ID,
		dbmodels.AuditPayload{"action": "cancel"}, userID, orgID)
	return nil
}

func (i impl) GetOrgSubscription(orgID string) (billingapimodels.SubscriptionView, error) {
	rec, err := i.store.GetActiveExt(orgID)
	if err != nil {
		return billingapimodels.SubscriptionView{}, err
	}
	if rec == nil {
		return billingapimodels.SubscriptionView{}, models.NewNotFoundError("активная подписка не найдена")
	}
	return billingapimodels.SubscriptionConvert(*rec), nil
}

func (i impl) GetActive(orgID string) (*dbmodels.SubscriptionExt, error) {
	return i.store.GetActiveExt(orgID)
}

func (i impl) SpendOutreachCredit(orgID, userID string) error {
	rec, err := i.store.GetActiveExt(orgID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewInvalidStateError("у организации нет активной подписки")
	}
	err = i.store.SpendOutreachCredit(orgID, rec.ID)
	if err != nil {
		return err
	}
	audit.Instance.Log(dbmodels.AuditOutreachSpent, "subscription", rec.ID, nil, userID, orgID)
	return nil
}
