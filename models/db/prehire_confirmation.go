package dbmodels

import "time"

// PreHireConfirmation - подтверждение проверки перед наймом (право на работу).
// Перевод отклика на этап "Принят" возможен только при наличии записи
// с RightToWorkConfirmed = true
type PreHireConfirmation struct {
	BaseOrgModel
	ApplicationID        string `gorm:"type:varchar(36);index"`
	ConfirmedByID        string `gorm:"type:varchar(36)"`
	RightToWorkConfirmed bool
	Statement            string
	ConfirmedAt          time.Time
}
