package applicationhandler

import (
	"bytes"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"horeca-jobs-backend/db"
	applicationhistorystore "horeca-jobs-backend/lib/application-history/store"
	applicationstore "horeca-jobs-backend/lib/application/store"
	"horeca-jobs-backend/lib/audit"
	pdfexport "horeca-jobs-backend/lib/export/pdf"
	xlsexport "horeca-jobs-backend/lib/export/xls"
	jobstore "horeca-jobs-backend/lib/job/store"
	"horeca-jobs-backend/models"
	applicationapimodels "horeca-jobs-backend/models/api/application"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Apply(candidateID string, data applicationapimodels.ApplyRequest) (result applicationapimodels.ApplicationView, err error)
	Withdraw(candidateID, applicationID string) (result applicationapimodels.ApplicationView, err error)
	GetByID(orgID, id string) (result applicationapimodels.ApplicationView, err error)
	ListForJob(orgID, jobID string) (list []applicationapimodels.ApplicationView, err error)
	ListForCandidate(candidateID string) (list []applicationapimodels.ApplicationView, err error)
	History(orgID, applicationID string, filter applicationapimodels.HistoryFilter) (list []applicationapimodels.HistoryView, rowCount int64, err error)
	ExportForJob(orgID, jobID string) (*bytes.Buffer, error)
	ExportSummary(orgID, applicationID string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicationstore.NewInstance(db.DB),
		historyStore: applicationhistorystore.NewInstance(db.DB),
		jobStore:     jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        applicationstore.Provider
	historyStore applicationhistorystore.Provider
	jobStore     jobstore.Provider
}

func (i impl) getLogger(candidateID, applicationID string) *log.Entry {
	logger := log.WithField("candidate_id", candidateID)
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	return logger
}

// Apply - создание отклика на опубликованную вакансию.
// Отклик и первая запись истории пишутся одной транзакцией
func (i impl) Apply(candidateID string, data applicationapimodels.ApplyRequest) (applicationapimodels.ApplicationView, error) {
	logger := i.getLogger(candidateID, "")
	job, err := i.jobStore.GetPublishedByID(data.JobID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if job == nil {
		return applicationapimodels.ApplicationView{}, models.NewInvalidStateError("вакансия не найдена или не опубликована")
	}
	found, err := i.store.IsExistByCandidate(data.JobID, candidateID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if found {
		return applicationapimodels.ApplicationView{}, models.NewInvalidStateError("отклик на эту вакансию уже отправлен")
	}
	rec := dbmodels.Application{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: job.OrganizationID,
		},
		JobID:       job.ID,
		CandidateID: candidateID,
		Status:      models.ApplicationStatusApplied,
		CoverLetter: data.CoverLetter,
		CvURL:       data.CvURL,
		AppliedAt:   time.Now(),
	}
	recID := ""
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)
		recID, err = store.Create(rec)
		if err != nil {
			return err
		}
		historyStore := applicationhistorystore.NewInstance(tx)
		_, err = historyStore.Create(dbmodels.ApplicationStatusHistory{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: job.OrganizationID,
			},
			ApplicationID: recID,
			JobID:         job.ID,
			FromStatus:    nil,
			ToStatus:      models.ApplicationStatusApplied,
			UserName:      models.CandidateUser,
		})
		return err
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	logger.WithField("application_id", recID).
		WithField("job_id", job.ID).
		Info("Создан отклик на вакансию")
	audit.Instance.Log(dbmodels.AuditApplicationCreated, "application", recID,
		dbmodels.AuditPayload{"job_id": job.ID}, candidateID, job.OrganizationID)
	rec.ID = recID
	rec.Job = job
	return applicationapimodels.Convert(rec), nil
}

// Withdraw - отзыв отклика соискателем.
// Недоступен для принятых и терминальных откликов
func (i impl) Withdraw(candidateID, applicationID string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetAny(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, models.NewNotFoundError("отклик не найден")
	}
	if rec.CandidateID != candidateID {
		return applicationapimodels.ApplicationView{}, models.NewForbiddenError("отклик принадлежит другому соискателю")
	}
	if rec.Status == models.ApplicationStatusHired {
		return applicationapimodels.ApplicationView{}, models.NewInvalidStateError("нельзя отозвать отклик принятого кандидата")
	}
	if rec.Status.IsTerminal() {
		return applicationapimodels.ApplicationView{}, models.NewInvalidStateError("отклик уже в терминальном этапе (" + string(rec.Status) + ")")
	}
	fromStatus := rec.Status
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)
		err := store.ChangeStatus(applicationID, fromStatus, models.ApplicationStatusWithdrawn, nil)
		if err != nil {
			return err
		}
		historyStore := applicationhistorystore.NewInstance(tx)
		_, err = historyStore.Create(dbmodels.ApplicationStatusHistory{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: rec.OrganizationID,
			},
			ApplicationID: applicationID,
			JobID:         rec.JobID,
			FromStatus:    &fromStatus,
			ToStatus:      models.ApplicationStatusWithdrawn,
			UserName:      models.CandidateUser,
		})
		return err
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	i.getLogger(candidateID, applicationID).Info("Отклик отозван")
	audit.Instance.Log(dbmodels.AuditApplicationWithdrawn, "application", applicationID,
		dbmodels.AuditPayload{"from_status": string(fromStatus)}, candidateID, rec.OrganizationID)
	updated, err := i.store.GetAny(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return applicationapimodels.Convert(*updated), nil
}

func (i impl) GetByID(orgID, id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, models.NewNotFoundError("отклик не найден")
	}
	return applicationapimodels.Convert(*rec), nil
}

func (i impl) ListForJob(orgID, jobID string) ([]applicationapimodels.ApplicationView, error) {
	job, err := i.jobStore.GetByID(orgID, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, models.NewNotFoundError("вакансия не найдена")
	}
	list, err := i.store.ListForJob(orgID, jobID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) ListForCandidate(candidateID string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListForCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) History(orgID, applicationID string, filter applicationapimodels.HistoryFilter) ([]applicationapimodels.HistoryView, int64, error) {
	rec, err := i.store.GetByID(orgID, applicationID)
	if err != nil {
		return nil, 0, err
	}
	if rec == nil {
		return nil, 0, models.NewNotFoundError("отклик не найден")
	}
	rowCount, err := i.historyStore.ListCount(orgID, applicationID)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.historyStore.List(orgID, applicationID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.HistoryView, 0, len(list))
	for _, item := range list {
		result = append(result, applicationapimodels.HistoryConvert(item))
	}
	return result, rowCount, nil
}

func (i impl) ExportForJob(orgID, jobID string) (*bytes.Buffer, error) {
	job, err := i.jobStore.GetByID(orgID, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, models.NewNotFoundError("вакансия не найдена")
	}
	list, err := i.store.ListForJobExt(orgID, jobID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportApplicationList(list)
}

func (i impl) ExportSummary(orgID, applicationID string) ([]byte, error) {
	rec, err := i.store.GetByID(orgID, applicationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("отклик не найден")
	}
	history, err := i.historyStore.ListAll(applicationID)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateSummary(*rec, history)
}
