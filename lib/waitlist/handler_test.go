package waitlisthandler

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
	"horeca-jobs-backend/lib/smtp"
	"horeca-jobs-backend/models"
	waitlistapimodels "horeca-jobs-backend/models/api/waitlist"
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
	// без настроек отправка писем пропускается
	require.NoError(t, smtp.Connect("", "", "", "", false))
	NewHandler()
}

func join(t *testing.T, email, city string) string {
	id, err := Instance.Join(waitlistapimodels.JoinRequest{
		Email: email,
		Name:  "Мария",
		City:  city,
	})
	require.NoError(t, err)
	return id
}

func TestJoin(t *testing.T) {
	setupTest(t)
	join(t, "maria@example.com", "Воронеж")

	list, rowCount, err := Instance.List(waitlistapimodels.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, "maria@example.com", list[0].Email)
	assert.Equal(t, models.WaitlistStatusNew, list[0].Status)
	assert.Nil(t, list[0].InvitedAt)
}

func TestJoinDeduplicatesByEmail(t *testing.T) {
	setupTest(t)
	first := join(t, "maria@example.com", "Воронеж")
	// почта нормализуется перед проверкой дубликата
	second := join(t, "  Maria@Example.com ", "Тула")
	assert.Equal(t, first, second)

	_, rowCount, err := Instance.List(waitlistapimodels.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCount)
}

func TestInvite(t *testing.T) {
	setupTest(t)
	id := join(t, "maria@example.com", "Воронеж")

	require.NoError(t, Instance.Invite("", id))

	list, _, err := Instance.List(waitlistapimodels.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.WaitlistStatusInvited, list[0].Status)
	require.NotNil(t, list[0].InvitedAt)

	// повторное приглашение отклоняется
	err = Instance.Invite("", id)
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestInviteUnknownEntry(t *testing.T) {
	setupTest(t)
	err := Instance.Invite("", "missing")
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestListFilterByStatus(t *testing.T) {
	setupTest(t)
	invited := join(t, "maria@example.com", "Воронеж")
	join(t, "ivan@example.com", "Тула")
	require.NoError(t, Instance.Invite("", invited))

	status := models.WaitlistStatusNew
	list, rowCount, err := Instance.List(waitlistapimodels.ListFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, "ivan@example.com", list[0].Email)
}
