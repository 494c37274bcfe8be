package dbmodels

import (
	"github.com/lib/pq"
)

// WorkerProfile - анкета соискателя для поиска работодателями поблизости
type WorkerProfile struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);uniqueIndex"`
	FirstName   string `gorm:"type:varchar(255)"`
	LastName    string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(255)"`
	Latitude    float64
	Longitude   float64
	Skills      pq.StringArray `gorm:"type:text[]"`
	Phone       string         `gorm:"type:varchar(255)"`
	Email       string         `gorm:"type:varchar(255)"`
	// Visible - анкета участвует в поиске
	Visible bool
}

type WorkerSearchFilter struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	RadiusKm  float64  `json:"radius_km"`
	Skills    []string `json:"skills"`
}
