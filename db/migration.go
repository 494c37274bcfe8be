package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "horeca-jobs-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"Organization", &dbmodels.Organization{}},
		{"OrgUser", &dbmodels.OrgUser{}},
		{"Job", &dbmodels.Job{}},
		{"Application", &dbmodels.Application{}},
		{"ApplicationStatusHistory", &dbmodels.ApplicationStatusHistory{}},
		{"PreHireConfirmation", &dbmodels.PreHireConfirmation{}},
		{"Document", &dbmodels.Document{}},
		{"SubscriptionPlan", &dbmodels.SubscriptionPlan{}},
		{"Subscription", &dbmodels.Subscription{}},
		{"WorkerProfile", &dbmodels.WorkerProfile{}},
		{"WaitlistEntry", &dbmodels.WaitlistEntry{}},
		{"AuditEvent", &dbmodels.AuditEvent{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %v", m.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
