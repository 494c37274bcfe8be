package pipelinehandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"horeca-jobs-backend/db"
	"horeca-jobs-backend/lib/audit"
	"horeca-jobs-backend/models"
	pipelineapimodels "horeca-jobs-backend/models/api/pipeline"
	dbmodels "horeca-jobs-backend/models/db"
)

func setupTest(t *testing.T) {
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.DB = gdb
	require.NoError(t, db.AutoMigrateDB())
	audit.NewHandler()
	NewHandler()
}

func createOrg(t *testing.T, name string) dbmodels.Organization {
	rec := dbmodels.Organization{Name: name}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec
}

func createJob(t *testing.T, orgID string) dbmodels.Job {
	rec := dbmodels.Job{
		BaseOrgModel: dbmodels.BaseOrgModel{OrganizationID: orgID},
		Title:        "Повар горячего цеха",
		City:         "Казань",
		Status:       models.JobStatusPublished,
	}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec
}

func createApplication(t *testing.T, orgID, jobID string, status models.ApplicationStatus) dbmodels.Application {
	rec := dbmodels.Application{
		BaseOrgModel: dbmodels.BaseOrgModel{OrganizationID: orgID},
		JobID:        jobID,
		CandidateID:  uuid.NewString(),
		Status:       status,
		CoverLetter:  "Готов выйти со следующей недели",
		AppliedAt:    time.Now(),
	}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec
}

func loadApplication(t *testing.T, id string) dbmodels.Application {
	rec := dbmodels.Application{}
	require.NoError(t, db.DB.Where("id = ?", id).First(&rec).Error)
	return rec
}

func loadHistory(t *testing.T, applicationID string) []dbmodels.ApplicationStatusHistory {
	list := []dbmodels.ApplicationStatusHistory{}
	require.NoError(t, db.DB.
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).Error)
	return list
}

func confirmPreHire(t *testing.T, orgID, applicationID string) {
	_, err := Instance.ConfirmPreHireChecks(orgID, applicationID, "", pipelineapimodels.ConfirmRequest{
		RightToWorkConfirmed: true,
		Statement:            "Документы проверены, право на работу подтверждено",
	})
	require.NoError(t, err)
}

func TestMoveApplicationFullFlow(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)

	steps := []models.ApplicationStatus{
		models.ApplicationStatusScreening,
		models.ApplicationStatusInterview,
		models.ApplicationStatusPreHireChecks,
	}
	for _, toStatus := range steps {
		view, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{ToStatus: toStatus})
		require.NoError(t, err)
		assert.Equal(t, toStatus, view.Status)
	}

	confirmPreHire(t, org.ID, app.ID)
	view, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus:         models.ApplicationStatusHired,
		PreHireConfirmed: true,
		PreHireStatement: "Документы проверены",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusHired, view.Status)
	assert.True(t, view.PreHireCheckConfirmed)

	rec := loadApplication(t, app.ID)
	assert.NotNil(t, rec.ScreenedAt)
	assert.NotNil(t, rec.InterviewedAt)
	assert.NotNil(t, rec.PreHireStartedAt)
	assert.NotNil(t, rec.HiredAt)
	assert.Nil(t, rec.RejectedAt)

	// история образует непрерывную цепочку переводов
	history := loadHistory(t, app.ID)
	require.Len(t, history, 4)
	prev := models.ApplicationStatusApplied
	for _, item := range history {
		require.NotNil(t, item.FromStatus)
		assert.Equal(t, prev, *item.FromStatus)
		prev = item.ToStatus
	}
	assert.Equal(t, models.ApplicationStatusHired, prev)
	last := history[len(history)-1]
	assert.True(t, last.PreHireConfirmed)
	assert.Equal(t, "Документы проверены", last.PreHireStatement)
}

func TestMoveApplicationInvalidTransition(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)

	_, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus:         models.ApplicationStatusHired,
		PreHireConfirmed: true,
		PreHireStatement: "проверено",
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))

	// статус и история не изменились
	rec := loadApplication(t, app.ID)
	assert.Equal(t, models.ApplicationStatusApplied, rec.Status)
	assert.Empty(t, loadHistory(t, app.ID))
}

func TestMoveToHiredRequiresConfirmation(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusPreHireChecks)

	_, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus: models.ApplicationStatusHired,
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindPrecondition, models.GetErrorKind(err))

	_, err = Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus:         models.ApplicationStatusHired,
		PreHireConfirmed: true,
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindPrecondition, models.GetErrorKind(err))
}

func TestMoveTenantIsolation(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	otherOrg := createOrg(t, "Отель Заря")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)

	_, err := Instance.MoveApplication(otherOrg.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus: models.ApplicationStatusScreening,
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindForbidden, models.GetErrorKind(err))

	_, err = Instance.MoveApplication(org.ID, "unknown-id", "", pipelineapimodels.MoveRequest{
		ToStatus: models.ApplicationStatusScreening,
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestMoveToRejectedStoresReason(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusScreening)

	view, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus: models.ApplicationStatusRejected,
		Notes:    "нет опыта работы на кухне",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, view.Status)

	rec := loadApplication(t, app.ID)
	assert.Equal(t, "нет опыта работы на кухне", rec.RejectReason)
	assert.NotNil(t, rec.RejectedAt)

	// терминальный этап, дальнейшие переводы недоступны
	_, err = Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus: models.ApplicationStatusScreening,
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestStageTimestampSetOnce(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)

	_, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{ToStatus: models.ApplicationStatusScreening})
	require.NoError(t, err)
	first := loadApplication(t, app.ID).ScreenedAt
	require.NotNil(t, first)

	// повторный заход на этап не перезаписывает отметку времени
	_, err = Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{ToStatus: models.ApplicationStatusInterview})
	require.NoError(t, err)
	_, err = Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{ToStatus: models.ApplicationStatusPreHireChecks})
	require.NoError(t, err)
	_, err = Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{ToStatus: models.ApplicationStatusScreening})
	require.NoError(t, err)
	second := loadApplication(t, app.ID).ScreenedAt
	require.NotNil(t, second)
	assert.Equal(t, first.Unix(), second.Unix())
}

func TestPipelineViewBuckets(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)
	createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)
	createApplication(t, org.ID, job.ID, models.ApplicationStatusInterview)

	result, err := Instance.PipelineView(org.ID, job.ID)
	require.NoError(t, err)
	require.Len(t, result, len(models.ApplicationStageOrder))

	cardsByStage := map[models.ApplicationStatus]int{}
	for idx, stage := range result {
		assert.Equal(t, models.ApplicationStageOrder[idx], stage.Status)
		require.NotNil(t, stage.Cards)
		cardsByStage[stage.Status] = len(stage.Cards)
	}
	assert.Equal(t, 2, cardsByStage[models.ApplicationStatusApplied])
	assert.Equal(t, 1, cardsByStage[models.ApplicationStatusInterview])
	assert.Equal(t, 0, cardsByStage[models.ApplicationStatusHired])
}

func TestPipelineViewTenantIsolation(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	otherOrg := createOrg(t, "Отель Заря")
	job := createJob(t, org.ID)

	_, err := Instance.PipelineView(otherOrg.ID, job.ID)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindForbidden, models.GetErrorKind(err))

	_, err = Instance.PipelineView(org.ID, "unknown-id")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestConfirmPreHireAutoAdvance(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusScreening)

	view, err := Instance.ConfirmPreHireChecks(org.ID, app.ID, "", pipelineapimodels.ConfirmRequest{
		RightToWorkConfirmed: true,
		Statement:            "Документы проверены",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPreHireChecks, view.Status)
	assert.True(t, view.PreHireCheckConfirmed)

	history := loadHistory(t, app.ID)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].FromStatus)
	assert.Equal(t, models.ApplicationStatusScreening, *history[0].FromStatus)
	assert.Equal(t, models.ApplicationStatusPreHireChecks, history[0].ToStatus)

	canHire, err := Instance.CanHire(org.ID, app.ID)
	require.NoError(t, err)
	assert.True(t, canHire)
}

func TestConfirmPreHireNoAdvanceOnSameStage(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusPreHireChecks)

	view, err := Instance.ConfirmPreHireChecks(org.ID, app.ID, "", pipelineapimodels.ConfirmRequest{
		RightToWorkConfirmed: true,
		Statement:            "Документы проверены",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPreHireChecks, view.Status)
	assert.Empty(t, loadHistory(t, app.ID))
}

func TestCanHireWithoutConfirmation(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusPreHireChecks)

	canHire, err := Instance.CanHire(org.ID, app.ID)
	require.NoError(t, err)
	assert.False(t, canHire)
}

// Расхождение истории с текущим этапом фиксируется в логе,
// но не блокирует перевод
func TestMoveReportsHistoryMismatch(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)
	// история утверждает, что отклик уже на интервью
	require.NoError(t, db.DB.Create(&dbmodels.ApplicationStatusHistory{
		BaseOrgModel:  dbmodels.BaseOrgModel{OrganizationID: org.ID},
		ApplicationID: app.ID,
		JobID:         job.ID,
		ToStatus:      models.ApplicationStatusInterview,
		UserName:      models.SystemUser,
	}).Error)

	hook := logrustest.NewGlobal()
	view, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus: models.ApplicationStatusScreening,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusScreening, view.Status)

	found := false
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.ErrorLevel && entry.Message == "история отклика расходится с текущим этапом" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMoveConsistentHistoryNotReported(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	job := createJob(t, org.ID)
	app := createApplication(t, org.ID, job.ID, models.ApplicationStatusApplied)
	require.NoError(t, db.DB.Create(&dbmodels.ApplicationStatusHistory{
		BaseOrgModel:  dbmodels.BaseOrgModel{OrganizationID: org.ID},
		ApplicationID: app.ID,
		JobID:         job.ID,
		ToStatus:      models.ApplicationStatusApplied,
		UserName:      models.SystemUser,
	}).Error)

	hook := logrustest.NewGlobal()
	_, err := Instance.MoveApplication(org.ID, app.ID, "", pipelineapimodels.MoveRequest{
		ToStatus: models.ApplicationStatusScreening,
	})
	require.NoError(t, err)

	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, "история отклика расходится с текущим этапом", entry.Message)
	}
}
