package pipelineapimodels

import (
	"time"

	"github.com/pkg/errors"
	"horeca-jobs-backend/models"
	dbmodels "horeca-jobs-backend/models/db"
)

type MoveRequest struct {
	ToStatus models.ApplicationStatus `json:"to_status"` // Целевой этап
	Notes    string                   `json:"notes"`     // Комментарий к переводу

	// обязательны при переводе на этап "Принят"
	PreHireConfirmed bool   `json:"pre_hire_confirmed"`
	PreHireStatement string `json:"pre_hire_statement"`
}

func (r MoveRequest) Validate() error {
	if r.ToStatus == "" {
		return errors.New("не указан целевой этап")
	}
	if !r.ToStatus.IsValid() {
		return errors.Errorf("неизвестный этап (%v)", r.ToStatus)
	}
	return nil
}

type ConfirmRequest struct {
	RightToWorkConfirmed bool   `json:"right_to_work_confirmed"` // Право на работу подтверждено
	Statement            string `json:"statement"`               // Текст подтверждения
}

func (r ConfirmRequest) Validate() error {
	if r.Statement == "" {
		return errors.New("не указан текст подтверждения")
	}
	return nil
}

// coverLetterPreviewLimit - размер превью сопроводительного письма на карточке
const coverLetterPreviewLimit = 100

type StageView struct {
	Status     models.ApplicationStatus `json:"status"`
	StatusName string                   `json:"status_name"`
	Cards      []CardView               `json:"cards"`
}

type CardView struct {
	ID                 string                   `json:"id"`
	CandidateID        string                   `json:"candidate_id"`
	Status             models.ApplicationStatus `json:"status"`
	AppliedAt          time.Time                `json:"applied_at"`
	CoverLetterPreview string                   `json:"cover_letter_preview,omitempty"`
}

func CardConvert(rec dbmodels.Application) CardView {
	return CardView{
		ID:                 rec.ID,
		CandidateID:        rec.CandidateID,
		Status:             rec.Status,
		AppliedAt:          rec.AppliedAt,
		CoverLetterPreview: previewOf(rec.CoverLetter),
	}
}

func previewOf(coverLetter string) string {
	runes := []rune(coverLetter)
	if len(runes) <= coverLetterPreviewLimit {
		return coverLetter
	}
	return string(runes[:coverLetterPreviewLimit]) + "…"
}
