package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"horeca-jobs-backend/models"
	apimodels "horeca-jobs-backend/models/api"
	dbmodels "horeca-jobs-backend/models/db"
)

type ApplyRequest struct {
	JobID       string `json:"job_id"`       // Идентификатор вакансии
	CoverLetter string `json:"cover_letter"` // Сопроводительное письмо
	CvURL       string `json:"cv_url"`       // Ссылка на резюме
}

func (r ApplyRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	return nil
}

type ApplicationView struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	JobTitle    string                   `json:"job_title,omitempty"`
	CandidateID string                   `json:"candidate_id"`
	Status      models.ApplicationStatus `json:"status"`
	StatusName  string                   `json:"status_name"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	CvURL       string                   `json:"cv_url,omitempty"`

	AppliedAt        time.Time  `json:"applied_at"`
	ScreenedAt       *time.Time `json:"screened_at,omitempty"`
	InterviewedAt    *time.Time `json:"interviewed_at,omitempty"`
	PreHireStartedAt *time.Time `json:"pre_hire_started_at,omitempty"`
	HiredAt          *time.Time `json:"hired_at,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`
	WithdrawnAt      *time.Time `json:"withdrawn_at,omitempty"`

	RejectReason          string `json:"reject_reason,omitempty"`
	PreHireCheckConfirmed bool   `json:"pre_hire_check_confirmed"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:               rec.ID,
		JobID:            rec.JobID,
		CandidateID:      rec.CandidateID,
		Status:           rec.Status,
		StatusName:       rec.Status.ToHuman(),
		CoverLetter:      rec.CoverLetter,
		CvURL:            rec.CvURL,
		AppliedAt:        rec.AppliedAt,
		ScreenedAt:       rec.ScreenedAt,
		InterviewedAt:    rec.InterviewedAt,
		PreHireStartedAt: rec.PreHireStartedAt,
		HiredAt:          rec.HiredAt,
		RejectedAt:       rec.RejectedAt,
		WithdrawnAt:      rec.WithdrawnAt,
		RejectReason:     rec.RejectReason,
		UpdatedAt:        rec.UpdatedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	return result
}

type HistoryFilter struct {
	apimodels.Pagination
}

type HistoryView struct {
	ApplicationID    string                    `json:"application_id"`
	FromStatus       *models.ApplicationStatus `json:"from_status"`
	FromStatusName   string                    `json:"from_status_name,omitempty"`
	ToStatus         models.ApplicationStatus  `json:"to_status"`
	ToStatusName     string                    `json:"to_status_name"`
	UserID           string                    `json:"user_id,omitempty"`
	UserName         string                    `json:"user_name"`
	Notes            string                    `json:"notes,omitempty"`
	PreHireConfirmed bool                      `json:"pre_hire_confirmed,omitempty"`
	PreHireStatement string                    `json:"pre_hire_statement,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
}

func HistoryConvert(rec dbmodels.ApplicationStatusHistory) HistoryView {
	result := HistoryView{
		ApplicationID:    rec.ApplicationID,
		FromStatus:       rec.FromStatus,
		ToStatus:         rec.ToStatus,
		ToStatusName:     rec.ToStatus.ToHuman(),
		UserName:         rec.UserName,
		Notes:            rec.Notes,
		PreHireConfirmed: rec.PreHireConfirmed,
		PreHireStatement: rec.PreHireStatement,
		CreatedAt:        rec.CreatedAt,
	}
	if rec.FromStatus != nil {
		result.FromStatusName = rec.FromStatus.ToHuman()
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}
