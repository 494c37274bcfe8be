package models

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusDraft:     "Черновик",
	JobStatusPublished: "Опубликована",
	JobStatusClosed:    "Закрыта",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type EmploymentType string

const (
	EmploymentFull   EmploymentType = "полная занятость"
	EmploymentPart   EmploymentType = "частичная занятость"
	EmploymentShift  EmploymentType = "сменный график"
	EmploymentSeason EmploymentType = "сезонная работа"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive      SubscriptionStatus = "ACTIVE"
	SubscriptionStatusExpiresSoon SubscriptionStatus = "EXPIRES_SOON"
	SubscriptionStatusExpired     SubscriptionStatus = "EXPIRED"
	SubscriptionStatusCanceled    SubscriptionStatus = "CANCELED"
)

var subscriptionStatusHumanName = map[SubscriptionStatus]string{
	SubscriptionStatusActive:      "Активна",
	SubscriptionStatusExpiresSoon: "Скоро истекает",
	SubscriptionStatusExpired:     "Истекла",
	SubscriptionStatusCanceled:    "Отменена",
}

func (s SubscriptionStatus) ToHuman() string {
	if human, exist := subscriptionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type WaitlistStatus string

const (
	WaitlistStatusNew     WaitlistStatus = "NEW"
	WaitlistStatusInvited WaitlistStatus = "INVITED"
)
