package jobhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"horeca-jobs-backend/db"
	"horeca-jobs-backend/lib/audit"
	billinghandler "horeca-jobs-backend/lib/billing"
	"horeca-jobs-backend/models"
	billingapimodels "horeca-jobs-backend/models/api/billing"
	jobapimodels "horeca-jobs-backend/models/api/job"
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
	db.InitPreload()
	audit.NewHandler()
	billinghandler.NewHandler()
	NewHandler()
}

func createOrg(t *testing.T, name string) dbmodels.Organization {
	rec := dbmodels.Organization{Name: name}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec
}

func createJob(t *testing.T, orgID string) string {
	id, err := Instance.Create(orgID, "", jobapimodels.JobData{
		Title:      "Официант",
		City:       "Казань",
		SalaryFrom: 45000,
		SalaryTo:   60000,
		Employment: models.EmploymentFull,
	})
	require.NoError(t, err)
	return id
}

func subscribe(t *testing.T, orgID, planCode string) {
	_, err := billinghandler.Instance.Subscribe(orgID, "", billingapimodels.SubscribeRequest{PlanCode: planCode})
	require.NoError(t, err)
}

func TestCreateJobDraft(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	id := createJob(t, org.ID)

	rec, err := Instance.GetByID(org.ID, id)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusDraft, rec.Status)
	assert.Nil(t, rec.PublishedAt)
}

func TestPublishRequiresSubscription(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	id := createJob(t, org.ID)

	err := Instance.Publish(org.ID, id, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestPublish(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	subscribe(t, org.ID, "start")
	id := createJob(t, org.ID)

	require.NoError(t, Instance.Publish(org.ID, id, ""))

	rec, err := Instance.GetByID(org.ID, id)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPublished, rec.Status)
	require.NotNil(t, rec.PublishedAt)

	// повторная публикация
	err = Instance.Publish(org.ID, id, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestPublishSlotLimit(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	// тариф start дает один слот
	subscribe(t, org.ID, "start")
	first := createJob(t, org.ID)
	second := createJob(t, org.ID)

	require.NoError(t, Instance.Publish(org.ID, first, ""))

	err := Instance.Publish(org.ID, second, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))

	// закрытие освобождает слот
	require.NoError(t, Instance.Close(org.ID, first, ""))
	require.NoError(t, Instance.Publish(org.ID, second, ""))
}

func TestCloseJob(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	subscribe(t, org.ID, "start")
	id := createJob(t, org.ID)
	require.NoError(t, Instance.Publish(org.ID, id, ""))

	require.NoError(t, Instance.Close(org.ID, id, ""))
	rec, err := Instance.GetByID(org.ID, id)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, rec.Status)
	require.NotNil(t, rec.ClosedAt)

	err = Instance.Close(org.ID, id, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestJobTenantIsolation(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	other := createOrg(t, "Бар Север")
	id := createJob(t, org.ID)

	_, err := Instance.GetByID(other.ID, id)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))

	err = Instance.Publish(other.ID, id, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestListPublishedOnly(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	subscribe(t, org.ID, "cafe")
	published := createJob(t, org.ID)
	createJob(t, org.ID)
	require.NoError(t, Instance.Publish(org.ID, published, ""))

	list, err := Instance.ListPublished(jobapimodels.JobFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, published, list[0].ID)
}

func TestListWithFilter(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	createJob(t, org.ID)
	_, err := Instance.Create(org.ID, "", jobapimodels.JobData{
		Title:      "Бармен",
		City:       "Самара",
		Employment: models.EmploymentShift,
	})
	require.NoError(t, err)

	list, rowCount, err := Instance.List(org.ID, jobapimodels.JobFilter{Employment: models.EmploymentShift})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, "Бармен", list[0].Title)
}
