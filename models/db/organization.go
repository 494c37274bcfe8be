package dbmodels

import "horeca-jobs-backend/models"

type Organization struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	City        string `gorm:"type:varchar(255)"`
	Address     string
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(255)"`
	IsActive    bool
}

type OrgUser struct {
	BaseOrgModel
	FirstName  string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	MiddleName string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255);index"`
	Phone      string `gorm:"type:varchar(255)"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
}

func (u OrgUser) GetFullName() string {
	result := u.LastName
	if u.FirstName != "" {
		result = result + " " + u.FirstName
	}
	if u.MiddleName != "" {
		result = result + " " + u.MiddleName
	}
	return result
}
