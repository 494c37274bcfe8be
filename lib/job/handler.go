package jobhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"horeca-jobs-backend/db"
	"horeca-jobs-backend/lib/audit"
	billinghandler "horeca-jobs-backend/lib/billing"
	jobstore "horeca-jobs-backend/lib/job/store"
	"horeca-jobs-backend/models"
	jobapimodels "horeca-jobs-backend/models/api/job"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Create(orgID, userID string, data jobapimodels.JobData) (id string, err error)
	Update(orgID, id string, data jobapimodels.JobData) error
	GetByID(orgID, id string) (item jobapimodels.JobView, err error)
	List(orgID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	Publish(orgID, id, userID string) error
	Close(orgID, id, userID string) error
	ListPublished(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   jobstore.NewInstance(db.DB),
		billing: billinghandler.Instance,
	}
}

type impl struct {
	store   jobstore.Provider
	billing billinghandler.Provider
}

func (i impl) getLogger(orgID, id, userID string) *log.Entry {
	logger := log.WithField("organization_id", orgID)
	if id != "" {
		logger = logger.WithField("rec_id", id)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func (i impl) Create(orgID, userID string, data jobapimodels.JobData) (id string, err error) {
	rec := dbmodels.Job{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: orgID,
		},
		Title:       data.Title,
		Description: data.Description,
		City:        data.City,
		Address:     data.Address,
		Salary: dbmodels.Salary{
			From: data.SalaryFrom,
			To:   data.SalaryTo,
		},
		Employment: data.Employment,
		Status:     models.JobStatusDraft,
		AuthorID:   userID,
	}
	recID, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(orgID, recID, userID).Info("Создана вакансия")
	return recID, nil
}

func (i impl) Update(orgID, id string, data jobapimodels.JobData) error {
	updMap := map[string]interface{}{
		"Title":       data.Title,
		"Description": data.Description,
		"City":        data.City,
		"Address":     data.Address,
		"salary_from": data.SalaryFrom,
		"salary_to":   data.SalaryTo,
		"Employment":  data.Employment,
	}
	return i.store.Update(orgID, id, updMap)
}

func (i impl) GetByID(orgID, id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, models.NewNotFoundError("вакансия не найдена")
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) List(orgID string, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	rowCount, err := i.store.ListCount(orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, rowCount, nil
}

// Publish - публикация вакансии.
// Требует активную подписку со свободным слотом вакансий
func (i impl) Publish(orgID, id, userID string) error {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("вакансия не найдена")
	}
	if rec.Status == models.JobStatusPublished {
		return models.NewInvalidStateError("вакансия уже опубликована")
	}
	sub, err := i.billing.GetActive(orgID)
	if err != nil {
		return err
	}
	if sub == nil {
		return models.NewInvalidStateError("для публикации вакансии нужна активная подписка")
	}
	publishedCount, err := i.store.PublishedCount(orgID)
	if err != nil {
		return err
	}
	if publishedCount >= int64(sub.PlanJobSlots) {
		return models.NewInvalidStateError("исчерпан лимит опубликованных вакансий по тарифу")
	}
	updMap := map[string]interface{}{
		"Status":      models.JobStatusPublished,
		"PublishedAt": time.Now(),
	}
	err = i.store.Update(orgID, id, updMap)
	if err != nil {
		return err
	}
	i.getLogger(orgID, id, userID).Info("Вакансия опубликована")
	audit.Instance.Log(dbmodels.AuditJobPublished, "job", id, nil, userID, orgID)
	return nil
}

func (i impl) Close(orgID, id, userID string) error {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("вакансия не найдена")
	}
	if rec.Status == models.JobStatusClosed {
		return models.NewInvalidStateError("вакансия уже закрыта")
	}
	updMap := map[string]interface{}{
		"Status":   models.JobStatusClosed,
		"ClosedAt": time.Now(),
	}
	err = i.store.Update(orgID, id, updMap)
	if err != nil {
		return err
	}
	i.getLogger(orgID, id, userID).Info("Вакансия закрыта")
	audit.Instance.Log(dbmodels.AuditJobClosed, "job", id, nil, userID, orgID)
	return nil
}

func (i impl) ListPublished(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error) {
	list, err := i.store.ListPublished(filter)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, nil
}
