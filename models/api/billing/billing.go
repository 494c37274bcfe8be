package billingapimodels

import (
	"time"

	"github.com/pkg/errors"
	"horeca-jobs-backend/models"
	dbmodels "horeca-jobs-backend/models/db"
)

type PlanView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	Cost            int    `json:"cost"`
	Currency        string `json:"currency"`
	PeriodDays      int    `json:"period_days"`
	JobSlots        int    `json:"job_slots"`
	OutreachCredits int    `json:"outreach_credits"`
}

func PlanConvert(rec dbmodels.SubscriptionPlan) PlanView {
	return PlanView{
		ID:              rec.ID,
		Name:            rec.Name,
		Code:            rec.Code,
		Cost:            rec.Cost,
		Currency:        rec.Currency,
		PeriodDays:      rec.PeriodDays,
		JobSlots:        rec.JobSlots,
		OutreachCredits: rec.OutreachCredits,
	}
}

type SubscribeRequest struct {
	PlanCode string `json:"plan_code"` // Код тарифного плана
}

func (r SubscribeRequest) Validate() error {
	if r.PlanCode == "" {
		return errors.New("не указан тарифный план")
	}
	return nil
}

type SubscriptionView struct {
	ID              string                    `json:"id"`
	PlanName        string                    `json:"plan_name"`
	Status          models.SubscriptionStatus `json:"status"`
	StatusName      string                    `json:"status_name"`
	StartsAt        time.Time                 `json:"starts_at"`
	EndsAt          *time.Time                `json:"ends_at,omitempty"`
	JobSlots        int                       `json:"job_slots"`
	OutreachCredits int                       `json:"outreach_credits"`
}

func SubscriptionConvert(rec dbmodels.SubscriptionExt) SubscriptionView {
	return SubscriptionView{
		ID:              rec.ID,
		PlanName:        rec.PlanName,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		StartsAt:        rec.StartsAt,
		EndsAt:          rec.EndsAt,
		JobSlots:        rec.PlanJobSlots,
		OutreachCredits: rec.OutreachCredits,
	}
}
