package dbmodels

import (
	"time"

	"horeca-jobs-backend/models"
)

type Application struct {
	BaseOrgModel
	// уникальный индекс закрывает гонку двух одновременных откликов
	JobID       string `gorm:"type:varchar(36);uniqueIndex:idx_app_job_candidate"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	CandidateID string `gorm:"type:varchar(36);uniqueIndex:idx_app_job_candidate"`
	Status      models.ApplicationStatus `gorm:"type:varchar(50);index"`
	CoverLetter string
	CvURL       string `gorm:"type:varchar(1024)"`

	// отметки времени этапов, выставляются один раз при переводе
	AppliedAt        time.Time
	ScreenedAt       *time.Time
	InterviewedAt    *time.Time
	PreHireStartedAt *time.Time
	HiredAt          *time.Time
	RejectedAt       *time.Time
	WithdrawnAt      *time.Time

	RejectReason string
}

// StageTimestampColumn - колонка отметки времени, соответствующая этапу.
// Пустая строка для этапов без собственной отметки
func StageTimestampColumn(status models.ApplicationStatus) string {
	switch status {
	case models.ApplicationStatusScreening:
		return "screened_at"
	case models.ApplicationStatusInterview:
		return "interviewed_at"
	case models.ApplicationStatusPreHireChecks:
		return "pre_hire_started_at"
	case models.ApplicationStatusHired:
		return "hired_at"
	case models.ApplicationStatusRejected:
		return "rejected_at"
	case models.ApplicationStatusWithdrawn:
		return "withdrawn_at"
	}
	return ""
}

type ApplicationWithJob struct {
	Application
	JobTitle string
	JobCity  string
}
