package jobapimodels

import (
	"time"

	"github.com/pkg/errors"
	"horeca-jobs-backend/models"
	apimodels "horeca-jobs-backend/models/api"
	dbmodels "horeca-jobs-backend/models/db"
)

type JobData struct {
	Title       string                `json:"title"`       // Название вакансии
	Description string                `json:"description"` // Описание
	City        string                `json:"city"`        // Город
	Address     string                `json:"address"`     // Адрес заведения
	SalaryFrom  int                   `json:"salary_from"` // ЗП от
	SalaryTo    int                   `json:"salary_to"`   // ЗП до
	Employment  models.EmploymentType `json:"employment"`  // Тип занятости
}

func (j JobData) Validate() error {
	if j.Title == "" {
		return errors.New("не указано название вакансии")
	}
	if j.City == "" {
		return errors.New("не указан город")
	}
	if j.SalaryTo != 0 && j.SalaryFrom > j.SalaryTo {
		return errors.New("некорректная зарплатная вилка")
	}
	return nil
}

type JobView struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	City          string                `json:"city"`
	Address       string                `json:"address"`
	SalaryFrom    int                   `json:"salary_from"`
	SalaryTo      int                   `json:"salary_to"`
	Employment    models.EmploymentType `json:"employment"`
	Status        models.JobStatus      `json:"status"`
	StatusName    string                `json:"status_name"`
	PublishedAt   *time.Time            `json:"published_at,omitempty"`
	ClosedAt      *time.Time            `json:"closed_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

func JobConvert(rec dbmodels.Job) JobView {
	return JobView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		City:        rec.City,
		Address:     rec.Address,
		SalaryFrom:  rec.Salary.From,
		SalaryTo:    rec.Salary.To,
		Employment:  rec.Employment,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		PublishedAt: rec.PublishedAt,
		ClosedAt:    rec.ClosedAt,
		CreatedAt:   rec.CreatedAt,
	}
}

type JobFilter struct {
	apimodels.Pagination
	City       string                `json:"city"`
	Employment models.EmploymentType `json:"employment"`
	Status     *models.JobStatus     `json:"status"`
	Search     string                `json:"search"`
}
