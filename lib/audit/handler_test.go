package audit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"horeca-jobs-backend/db"
	auditapimodels "horeca-jobs-backend/models/api/audit"
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
	NewHandler()
}

func TestLogAndList(t *testing.T) {
	setupTest(t)
	Instance.Log(dbmodels.AuditApplicationMoved, "application", "app-1",
		dbmodels.AuditPayload{"from_status": "applied", "to_status": "screening"}, "user-1", "org-1")
	Instance.Log(dbmodels.AuditJobPublished, "job", "job-1", nil, "user-1", "org-1")

	list, rowCount, err := Instance.List("org-1", auditapimodels.EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rowCount)
	require.Len(t, list, 2)

	// журнал отсортирован от новых к старым
	assert.Equal(t, dbmodels.AuditJobPublished, list[0].EventType)
	assert.Equal(t, dbmodels.AuditApplicationMoved, list[1].EventType)
	assert.Equal(t, "screening", list[1].Payload["to_status"])
}

func TestListTenantIsolation(t *testing.T) {
	setupTest(t)
	Instance.Log(dbmodels.AuditApplicationMoved, "application", "app-1", nil, "", "org-1")
	Instance.Log(dbmodels.AuditApplicationMoved, "application", "app-2", nil, "", "org-2")

	list, rowCount, err := Instance.List("org-1", auditapimodels.EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, "app-1", list[0].EntityID)
}

func TestListFilter(t *testing.T) {
	setupTest(t)
	Instance.Log(dbmodels.AuditApplicationMoved, "application", "app-1", nil, "", "org-1")
	Instance.Log(dbmodels.AuditApplicationWithdrawn, "application", "app-1", nil, "", "org-1")
	Instance.Log(dbmodels.AuditApplicationMoved, "application", "app-2", nil, "", "org-1")

	eventType := dbmodels.AuditApplicationMoved
	list, rowCount, err := Instance.List("org-1", auditapimodels.EventFilter{
		EntityID:  "app-1",
		EventType: &eventType,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, "app-1", list[0].EntityID)
	assert.Equal(t, dbmodels.AuditApplicationMoved, list[0].EventType)
}
