package billinghandler

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
	"horeca-jobs-backend/models"
	billingapimodels "horeca-jobs-backend/models/api/billing"
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
	NewHandler()
}

func createOrg(t *testing.T, name string) dbmodels.Organization {
	rec := dbmodels.Organization{Name: name}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec
}

func subscribe(t *testing.T, orgID, planCode string) billingapimodels.SubscriptionView {
	sub, err := Instance.Subscribe(orgID, "", billingapimodels.SubscribeRequest{PlanCode: planCode})
	require.NoError(t, err)
	return sub
}

func TestListPlansPreloaded(t *testing.T) {
	setupTest(t)
	list, err := Instance.ListPlans()
	require.NoError(t, err)
	require.Len(t, list, 4)
	codes := map[string]bool{}
	for _, plan := range list {
		codes[plan.Code] = true
	}
	assert.True(t, codes["start"])
	assert.True(t, codes["chain"])
}

func TestSubscribe(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")

	sub := subscribe(t, org.ID, "cafe")
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, "Кафе и бар", sub.PlanName)
	assert.Equal(t, 5, sub.JobSlots)
	assert.Equal(t, 50, sub.OutreachCredits)
	require.NotNil(t, sub.EndsAt)
	assert.True(t, sub.EndsAt.After(sub.StartsAt))
}

func TestSubscribeUnknownPlan(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")

	_, err := Instance.Subscribe(org.ID, "", billingapimodels.SubscribeRequest{PlanCode: "enterprise"})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestSubscribeTwiceRejected(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	subscribe(t, org.ID, "start")

	_, err := Instance.Subscribe(org.ID, "", billingapimodels.SubscribeRequest{PlanCode: "cafe"})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))

	// у другой организации своя подписка
	other := createOrg(t, "Бар Север")
	_, err = Instance.Subscribe(other.ID, "", billingapimodels.SubscribeRequest{PlanCode: "cafe"})
	require.NoError(t, err)
}

func TestCancel(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	subscribe(t, org.ID, "start")

	require.NoError(t, Instance.Cancel(org.ID, ""))

	_, err := Instance.GetOrgSubscription(org.ID)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))

	err = Instance.Cancel(org.ID, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestCancelThenResubscribe(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	subscribe(t, org.ID, "start")
	require.NoError(t, Instance.Cancel(org.ID, ""))

	sub := subscribe(t, org.ID, "restaurant")
	assert.Equal(t, 15, sub.JobSlots)
	assert.Equal(t, 200, sub.OutreachCredits)
}

func TestSpendOutreachCredit(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	subscribe(t, org.ID, "start")

	// тариф start дает 5 кредитов
	for i := 0; i < 5; i++ {
		require.NoError(t, Instance.SpendOutreachCredit(org.ID, ""))
	}
	sub, err := Instance.GetOrgSubscription(org.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sub.OutreachCredits)

	err = Instance.SpendOutreachCredit(org.ID, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestSpendOutreachCreditWithoutSubscription(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")

	err := Instance.SpendOutreachCredit(org.ID, "")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}
