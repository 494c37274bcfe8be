package waitlistapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"horeca-jobs-backend/models"
	apimodels "horeca-jobs-backend/models/api"
	dbmodels "horeca-jobs-backend/models/db"
)

type JoinRequest struct {
	Email   string `json:"email"`   // Почта
	Name    string `json:"name"`    // Имя
	City    string `json:"city"`    // Город
	Comment string `json:"comment"` // Комментарий
}

func (r JoinRequest) Validate() error {
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return errors.New("не указана корректная почта")
	}
	return nil
}

type EntryView struct {
	ID         string                `json:"id"`
	Email      string                `json:"email"`
	Name       string                `json:"name"`
	City       string                `json:"city"`
	Comment    string                `json:"comment,omitempty"`
	Status     models.WaitlistStatus `json:"status"`
	InvitedAt  *time.Time            `json:"invited_at,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

func Convert(rec dbmodels.WaitlistEntry) EntryView {
	return EntryView{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		City:      rec.City,
		Comment:   rec.Comment,
		Status:    rec.Status,
		InvitedAt: rec.InvitedAt,
		CreatedAt: rec.CreatedAt,
	}
}

type ListFilter struct {
	apimodels.Pagination
	Status *models.WaitlistStatus `json:"status"`
}
