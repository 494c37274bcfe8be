package dbmodels

import (
	"time"

	"horeca-jobs-backend/models"
)

type SubscriptionPlan struct {
	BaseModel
	Name            string `gorm:"type:varchar(255)"`
	Code            string `gorm:"type:varchar(100);uniqueIndex"`
	Cost            int
	Currency        string `gorm:"type:varchar(10)"`
	PeriodDays      int
	JobSlots        int
	OutreachCredits int
}

type Subscription struct {
	BaseOrgModel
	PlanID string            `gorm:"type:varchar(36)"`
	Plan   *SubscriptionPlan `gorm:"foreignKey:PlanID"`
	Status models.SubscriptionStatus `gorm:"type:varchar(50);index"`

	StartsAt time.Time
	EndsAt   *time.Time

	// остаток кредитов на раскрытие контактов соискателей
	OutreachCredits int
}

type SubscriptionExt struct {
	Subscription
	PlanName       string
	PlanCost       int
	PlanPeriodDays int
	PlanJobSlots   int
}
