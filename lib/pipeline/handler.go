package pipelinehandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"horeca-jobs-backend/db"
	applicationhistorystore "horeca-jobs-backend/lib/application-history/store"
	applicationstore "horeca-jobs-backend/lib/application/store"
	"horeca-jobs-backend/lib/audit"
	jobstore "horeca-jobs-backend/lib/job/store"
	orgstore "horeca-jobs-backend/lib/org/store"
	prehirestore "horeca-jobs-backend/lib/prehire/store"
	connectionhub "horeca-jobs-backend/lib/ws/hub/connection-hub"
	"horeca-jobs-backend/models"
	applicationapimodels "horeca-jobs-backend/models/api/application"
	pipelineapimodels "horeca-jobs-backend/models/api/pipeline"
	dbmodels "horeca-jobs-backend/models/db"
	wsmodels "horeca-jobs-backend/models/ws"
)

type Provider interface {
	MoveApplication(orgID, applicationID, userID string, data pipelineapimodels.MoveRequest) (result applicationapimodels.ApplicationView, err error)
	PipelineView(orgID, jobID string) (result []pipelineapimodels.StageView, err error)
	ConfirmPreHireChecks(orgID, applicationID, userID string, data pipelineapimodels.ConfirmRequest) (result applicationapimodels.ApplicationView, err error)
	CanHire(orgID, applicationID string) (canHire bool, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicationstore.NewInstance(db.DB),
		historyStore: applicationhistorystore.NewInstance(db.DB),
		preHireStore: prehirestore.NewInstance(db.DB),
		jobStore:     jobstore.NewInstance(db.DB),
		orgStore:     orgstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        applicationstore.Provider
	historyStore applicationhistorystore.Provider
	preHireStore prehirestore.Provider
	jobStore     jobstore.Provider
	orgStore     orgstore.Provider
}

func (i impl) getLogger(orgID, applicationID, userID string) *log.Entry {
	logger := log.WithField("organization_id", orgID).
		WithField("application_id", applicationID)
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// getOrgApplication - отклик с проверкой принадлежности организации.
// Проверка выполняется до любых изменений
func (i impl) getOrgApplication(orgID, applicationID string) (*dbmodels.Application, error) {
	rec, err := i.store.GetAny(applicationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("отклик не найден")
	}
	if rec.OrganizationID != orgID {
		return nil, models.NewForbiddenError("отклик принадлежит другой организации")
	}
	return rec, nil
}

func (i impl) getActorName(userID string) string {
	if userID == "" {
		return models.SystemUser
	}
	user, err := i.orgStore.GetUserByID(userID)
	if err != nil || user == nil {
		log.WithField("user_id", userID).Warn("автор перевода не найден")
		return models.SystemUser
	}
	return user.GetFullName()
}

// checkHistoryIntegrity - сверка текущего этапа с последней записью истории.
// Расхождение - повреждение данных, требующее ручного разбора,
// перевод при этом не блокируется
func (i impl) checkHistoryIntegrity(logger *log.Entry, applicationID string, current models.ApplicationStatus) {
	last, err := i.historyStore.GetLast(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения истории отклика")
		return
	}
	if last != nil && last.ToStatus != current {
		logger.WithField("history_status", last.ToStatus).
			WithField("status", current).
			Error("история отклика расходится с текущим этапом")
	}
}

// MoveApplication - перевод отклика на другой этап воронки.
// Проверки выполняются до записи, смена этапа и запись истории
// коммитятся одной транзакцией
func (i impl) MoveApplication(orgID, applicationID, userID string, data pipelineapimodels.MoveRequest) (applicationapimodels.ApplicationView, error) {
	logger := i.getLogger(orgID, applicationID, userID)
	rec, err := i.getOrgApplication(orgID, applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	fromStatus := rec.Status
	toStatus := data.ToStatus
	if !fromStatus.CanMoveTo(toStatus) {
		return applicationapimodels.ApplicationView{},
			models.NewInvalidStateError(errors.Errorf("перевод с этапа (%v) на этап (%v) недопустим", fromStatus, toStatus).Error())
	}
	if toStatus == models.ApplicationStatusHired {
		if fromStatus != models.ApplicationStatusPreHireChecks {
			return applicationapimodels.ApplicationView{},
				models.NewPreconditionError("нанять можно только с этапа проверки перед наймом")
		}
		if !data.PreHireConfirmed {
			return applicationapimodels.ApplicationView{},
				models.NewPreconditionError("не подтверждено право на работу")
		}
		if data.PreHireStatement == "" {
			return applicationapimodels.ApplicationView{},
				models.NewPreconditionError("не указан текст подтверждения права на работу")
		}
	}
	if toStatus == models.ApplicationStatusRejected && data.Notes == "" {
		// отказ без комментария не блокируем
		logger.Warn("отклик отклонен без указания причины")
	}
	i.checkHistoryIntegrity(logger, applicationID, fromStatus)
	actorName := i.getActorName(userID)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)
		updMap := map[string]interface{}{}
		if toStatus == models.ApplicationStatusRejected && data.Notes != "" {
			updMap["reject_reason"] = data.Notes
		}
		err := store.ChangeStatus(applicationID, fromStatus, toStatus, updMap)
		if err != nil {
			return err
		}
		historyStore := applicationhistorystore.NewInstance(tx)
		historyRec := dbmodels.ApplicationStatusHistory{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: orgID,
			},
			ApplicationID: applicationID,
			JobID:         rec.JobID,
			FromStatus:    &fromStatus,
			ToStatus:      toStatus,
			UserName:      actorName,
			Notes:         data.Notes,
		}
		if userID != "" {
			historyRec.UserID = &userID
		}
		if toStatus == models.ApplicationStatusHired {
			historyRec.PreHireConfirmed = data.PreHireConfirmed
			historyRec.PreHireStatement = data.PreHireStatement
		}
		_, err = historyStore.Create(historyRec)
		return err
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	logger.
		WithField("from_status", fromStatus).
		WithField("to_status", toStatus).
		Info("Отклик переведен на другой этап")
	audit.Instance.Log(dbmodels.AuditApplicationMoved, "application", applicationID,
		dbmodels.AuditPayload{"from_status": string(fromStatus), "to_status": string(toStatus)}, userID, orgID)
	i.notifyMoved(orgID, applicationID, fromStatus, toStatus)
	return i.getView(orgID, applicationID)
}

// PipelineView - канбан по вакансии: отклики, сгруппированные по этапам.
// В ответе присутствуют все этапы воронки, включая пустые
func (i impl) PipelineView(orgID, jobID string) ([]pipelineapimodels.StageView, error) {
	job, err := i.jobStore.GetAny(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, models.NewNotFoundError("вакансия не найдена")
	}
	if job.OrganizationID != orgID {
		return nil, models.NewForbiddenError("вакансия принадлежит другой организации")
	}
	list, err := i.store.ListForJob(orgID, jobID)
	if err != nil {
		return nil, err
	}
	cardsByStage := map[models.ApplicationStatus][]pipelineapimodels.CardView{}
	for _, rec := range list {
		cardsByStage[rec.Status] = append(cardsByStage[rec.Status], pipelineapimodels.CardConvert(rec))
	}
	result := make([]pipelineapimodels.StageView, 0, len(models.ApplicationStageOrder))
	for _, stage := range models.ApplicationStageOrder {
		cards := cardsByStage[stage]
		if cards == nil {
			cards = []pipelineapimodels.CardView{}
		}
		result = append(result, pipelineapimodels.StageView{
			Status:     stage,
			StatusName: stage.ToHuman(),
			Cards:      cards,
		})
	}
	return result, nil
}

// ConfirmPreHireChecks - фиксация подтверждения проверки перед наймом.
// Допустима на любом этапе; если отклик еще не дошел до этапа проверки,
// он автоматически переводится на него. Это единственное санкционированное
// исключение из таблицы переводов: автоперевод двигает отклик только
// вперед к проверке и не трогает терминальные этапы и принятых кандидатов
func (i impl) ConfirmPreHireChecks(orgID, applicationID, userID string, data pipelineapimodels.ConfirmRequest) (applicationapimodels.ApplicationView, error) {
	logger := i.getLogger(orgID, applicationID, userID)
	rec, err := i.getOrgApplication(orgID, applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	fromStatus := rec.Status
	autoAdvance := fromStatus != models.ApplicationStatusPreHireChecks &&
		fromStatus != models.ApplicationStatusHired &&
		!fromStatus.IsTerminal()
	actorName := i.getActorName(userID)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		preHireStore := prehirestore.NewInstance(tx)
		_, err := preHireStore.Create(dbmodels.PreHireConfirmation{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: orgID,
			},
			ApplicationID:        applicationID,
			ConfirmedByID:        userID,
			RightToWorkConfirmed: data.RightToWorkConfirmed,
			Statement:            data.Statement,
			ConfirmedAt:          time.Now(),
		})
		if err != nil {
			return err
		}
		if !autoAdvance {
			return nil
		}
		store := applicationstore.NewInstance(tx)
		err = store.ChangeStatus(applicationID, fromStatus, models.ApplicationStatusPreHireChecks, nil)
		if err != nil {
			return err
		}
		historyStore := applicationhistorystore.NewInstance(tx)
		historyRec := dbmodels.ApplicationStatusHistory{
			BaseOrgModel: dbmodels.BaseOrgModel{
				OrganizationID: orgID,
			},
			ApplicationID: applicationID,
			JobID:         rec.JobID,
			FromStatus:    &fromStatus,
			ToStatus:      models.ApplicationStatusPreHireChecks,
			UserName:      actorName,
			Notes:         "автоперевод при подтверждении проверки перед наймом",
		}
		if userID != "" {
			historyRec.UserID = &userID
		}
		_, err = historyStore.Create(historyRec)
		return err
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	logger.WithField("right_to_work_confirmed", data.RightToWorkConfirmed).
		Info("Зафиксировано подтверждение проверки перед наймом")
	audit.Instance.Log(dbmodels.AuditPreHireConfirmed, "application", applicationID,
		dbmodels.AuditPayload{"right_to_work_confirmed": data.RightToWorkConfirmed}, userID, orgID)
	if autoAdvance {
		i.notifyMoved(orgID, applicationID, fromStatus, models.ApplicationStatusPreHireChecks)
	}
	return i.getView(orgID, applicationID)
}

// CanHire - признак готовности к найму, без побочных эффектов
func (i impl) CanHire(orgID, applicationID string) (bool, error) {
	_, err := i.getOrgApplication(orgID, applicationID)
	if err != nil {
		return false, err
	}
	return i.preHireStore.IsConfirmed(applicationID)
}

func (i impl) getView(orgID, applicationID string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(orgID, applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, models.NewNotFoundError("отклик не найден")
	}
	result := applicationapimodels.Convert(*rec)
	confirmed, err := i.preHireStore.IsConfirmed(applicationID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	result.PreHireCheckConfirmed = confirmed
	return result, nil
}

func (i impl) notifyMoved(orgID, applicationID string, fromStatus, toStatus models.ApplicationStatus) {
	if connectionhub.Instance == nil {
		return
	}
	connectionhub.Instance.SendToOrg(wsmodels.ServerMessage{
		ToOrgID: orgID,
		Time:    time.Now().Format("02.01.2006 15:04:05"),
		Code:    wsmodels.CodeApplicationMoved,
		Msg:     toStatus.ToHuman(),
		Data: map[string]any{
			"application_id": applicationID,
			"from_status":    string(fromStatus),
			"to_status":      string(toStatus),
		},
	})
}
