package applicationhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"horeca-jobs-backend/db"
	applicationstore "horeca-jobs-backend/lib/application/store"
	"horeca-jobs-backend/lib/audit"
	xlsexport "horeca-jobs-backend/lib/export/xls"
	"horeca-jobs-backend/models"
	applicationapimodels "horeca-jobs-backend/models/api/application"
	dbmodels "horeca-jobs-backend/models/db"
)

func setupTest(t *testing.T) {
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	db.DB = gdb
	require.NoError(t, db.AutoMigrateDB())
	audit.NewHandler()
	xlsexport.NewHandler()
	NewHandler()
}

func createJob(t *testing.T, orgID string, status models.JobStatus) dbmodels.Job {
	rec := dbmodels.Job{
		BaseOrgModel: dbmodels.BaseOrgModel{OrganizationID: orgID},
		Title:        "Официант",
		City:         "Казань",
		Status:       status,
	}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec
}

func TestApplyCreatesSeedHistory(t *testing.T) {
	setupTest(t)
	job := createJob(t, "org-1", models.JobStatusPublished)

	view, err := Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{
		JobID:       job.ID,
		CoverLetter: "Есть опыт работы в зале",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, view.Status)
	assert.Equal(t, "candidate-1", view.CandidateID)
	assert.False(t, view.AppliedAt.IsZero())

	history := []dbmodels.ApplicationStatusHistory{}
	require.NoError(t, db.DB.Where("application_id = ?", view.ID).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Nil(t, history[0].FromStatus)
	assert.Equal(t, models.ApplicationStatusApplied, history[0].ToStatus)
	assert.Equal(t, models.CandidateUser, history[0].UserName)
}

func TestApplyDuplicateRejected(t *testing.T) {
	setupTest(t)
	job := createJob(t, "org-1", models.JobStatusPublished)

	_, err := Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{JobID: job.ID})
	require.NoError(t, err)

	_, err = Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{JobID: job.ID})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))

	// другой соискатель может откликнуться
	_, err = Instance.Apply("candidate-2", applicationapimodels.ApplyRequest{JobID: job.ID})
	require.NoError(t, err)
}

// Два одновременных отклика проходят проверку дубликата по одинаковому
// снимку данных, вторую вставку должен отсечь уникальный индекс
func TestApplyDuplicateConcurrentInsert(t *testing.T) {
	setupTest(t)
	job := createJob(t, "org-1", models.JobStatusPublished)

	_, err := Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{JobID: job.ID})
	require.NoError(t, err)

	// вставка в обход проверки дубликата, как у конкурентного запроса
	store := applicationstore.NewInstance(db.DB)
	_, err = store.Create(dbmodels.Application{
		BaseOrgModel: dbmodels.BaseOrgModel{OrganizationID: job.OrganizationID},
		JobID:        job.ID,
		CandidateID:  "candidate-1",
		Status:       models.ApplicationStatusApplied,
		AppliedAt:    time.Now(),
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))

	var count int64
	require.NoError(t, db.DB.Model(&dbmodels.Application{}).
		Where("job_id = ? and candidate_id = ?", job.ID, "candidate-1").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyToUnpublishedJob(t *testing.T) {
	setupTest(t)
	draft := createJob(t, "org-1", models.JobStatusDraft)
	closed := createJob(t, "org-1", models.JobStatusClosed)

	for _, jobID := range []string{draft.ID, closed.ID, "unknown-id"} {
		_, err := Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{JobID: jobID})
		require.Error(t, err)
		assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
	}
}

func TestWithdraw(t *testing.T) {
	setupTest(t)
	job := createJob(t, "org-1", models.JobStatusPublished)
	view, err := Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{JobID: job.ID})
	require.NoError(t, err)

	result, err := Instance.Withdraw("candidate-1", view.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusWithdrawn, result.Status)

	rec := dbmodels.Application{}
	require.NoError(t, db.DB.Where("id = ?", view.ID).First(&rec).Error)
	assert.NotNil(t, rec.WithdrawnAt)

	// повторный отзыв отклоняется, этап терминальный
	_, err = Instance.Withdraw("candidate-1", view.ID)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestWithdrawForeignApplication(t *testing.T) {
	setupTest(t)
	job := createJob(t, "org-1", models.JobStatusPublished)
	view, err := Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{JobID: job.ID})
	require.NoError(t, err)

	_, err = Instance.Withdraw("candidate-2", view.ID)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindForbidden, models.GetErrorKind(err))

	_, err = Instance.Withdraw("candidate-1", "unknown-id")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestWithdrawHiredRejected(t *testing.T) {
	setupTest(t)
	rec := dbmodels.Application{
		BaseOrgModel: dbmodels.BaseOrgModel{OrganizationID: "org-1"},
		JobID:        "job-1",
		CandidateID:  "candidate-1",
		Status:       models.ApplicationStatusHired,
		AppliedAt:    time.Now(),
	}
	require.NoError(t, db.DB.Create(&rec).Error)

	_, err := Instance.Withdraw("candidate-1", rec.ID)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestExportForJob(t *testing.T) {
	setupTest(t)
	job := createJob(t, "org-1", models.JobStatusPublished)
	_, err := Instance.Apply("candidate-1", applicationapimodels.ApplyRequest{JobID: job.ID})
	require.NoError(t, err)

	buf, err := Instance.ExportForJob("org-1", job.ID)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())

	_, err = Instance.ExportForJob("org-2", job.ID)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}
