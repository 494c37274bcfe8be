package dbmodels

import (
	"horeca-jobs-backend/models"
)

// ApplicationStatusHistory - журнал переводов отклика по этапам, только добавление.
// Упорядоченные по времени записи восстанавливают путь отклика по воронке
// вплоть до текущего этапа
type ApplicationStatusHistory struct {
	BaseOrgModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	JobID         string `gorm:"type:varchar(36)"`
	Job           *Job   `gorm:"foreignKey:JobID"`

	// FromStatus пустой только у первой записи при создании отклика
	FromStatus *models.ApplicationStatus `gorm:"type:varchar(50)"`
	ToStatus   models.ApplicationStatus  `gorm:"type:varchar(50)"`

	UserID   *string `gorm:"type:varchar(36)"`
	UserName string  `gorm:"type:varchar(255)"`
	Notes    string

	// заполняются только при переводе на этап "Принят"
	PreHireConfirmed bool
	PreHireStatement string
}
