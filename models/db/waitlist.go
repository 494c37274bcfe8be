package dbmodels

import (
	"time"

	"horeca-jobs-backend/models"
)

type WaitlistEntry struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Name      string `gorm:"type:varchar(255)"`
	City      string `gorm:"type:varchar(255)"`
	Comment   string
	Status    models.WaitlistStatus `gorm:"type:varchar(50);index"`
	InvitedAt *time.Time
}
