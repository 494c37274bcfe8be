package dbmodels

import (
	"time"

	"horeca-jobs-backend/models"
)

type Job struct {
	BaseOrgModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	City        string `gorm:"type:varchar(255)"`
	Address     string
	Salary      Salary                `gorm:"embedded;embeddedPrefix:salary_"`
	Employment  models.EmploymentType `gorm:"type:varchar(100)"`
	Status      models.JobStatus      `gorm:"type:varchar(50);index"`
	AuthorID    string                `gorm:"type:varchar(36)"`
	PublishedAt *time.Time
	ClosedAt    *time.Time
}

type Salary struct {
	From   int
	To     int
	InHand bool
}

func (j Job) IsPublished() bool {
	return j.Status == models.JobStatusPublished
}

type JobFilter struct {
	City       string                `json:"city"`
	Employment models.EmploymentType `json:"employment"`
	Status     *models.JobStatus     `json:"status"`
	Search     string                `json:"search"`
}
