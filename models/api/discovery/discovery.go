package discoveryapimodels

import (
	"github.com/pkg/errors"
	dbmodels "horeca-jobs-backend/models/db"
)

type SearchRequest struct {
	Latitude  float64  `json:"latitude"`  // Широта точки поиска
	Longitude float64  `json:"longitude"` // Долгота точки поиска
	RadiusKm  float64  `json:"radius_km"` // Радиус поиска в км
	Skills    []string `json:"skills"`    // Фильтр по навыкам
}

func (r SearchRequest) Validate() error {
	if r.Latitude < -90 || r.Latitude > 90 {
		return errors.New("некорректная широта")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return errors.New("некорректная долгота")
	}
	if r.RadiusKm <= 0 {
		return errors.New("не указан радиус поиска")
	}
	return nil
}

func (r SearchRequest) ToFilter() dbmodels.WorkerSearchFilter {
	return dbmodels.WorkerSearchFilter{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		RadiusKm:  r.RadiusKm,
		Skills:    r.Skills,
	}
}

type ProfileData struct {
	FirstName string   `json:"first_name"` // Имя
	LastName  string   `json:"last_name"`  // Фамилия
	City      string   `json:"city"`       // Город
	Latitude  float64  `json:"latitude"`   // Широта
	Longitude float64  `json:"longitude"`  // Долгота
	Skills    []string `json:"skills"`     // Навыки
	Phone     string   `json:"phone"`      // Телефон
	Email     string   `json:"email"`      // Почта
	Visible   bool     `json:"visible"`    // Анкета видна в поиске
}

func (r ProfileData) Validate() error {
	if r.FirstName == "" {
		return errors.New("не указано имя")
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		return errors.New("некорректная широта")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return errors.New("некорректная долгота")
	}
	return nil
}

func (r ProfileData) Convert() dbmodels.WorkerProfile {
	return dbmodels.WorkerProfile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		City:      r.City,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Skills:    r.Skills,
		Phone:     r.Phone,
		Email:     r.Email,
		Visible:   r.Visible,
	}
}

// WorkerView - карточка соискателя без контактов,
// контакты раскрываются за кредит (ContactsView)
type WorkerView struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	City      string   `json:"city"`
	Skills    []string `json:"skills"`
	// расстояние от точки поиска
	DistanceKm float64 `json:"distance_km"`
}

type ContactsView struct {
	WorkerView
	LastName string `json:"last_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func Convert(rec dbmodels.WorkerProfile, distanceKm float64) WorkerView {
	return WorkerView{
		ID:         rec.ID,
		FirstName:  rec.FirstName,
		City:       rec.City,
		Skills:     rec.Skills,
		DistanceKm: distanceKm,
	}
}

func ContactsConvert(rec dbmodels.WorkerProfile, distanceKm float64) ContactsView {
	return ContactsView{
		WorkerView: Convert(rec, distanceKm),
		LastName:   rec.LastName,
		Phone:      rec.Phone,
		Email:      rec.Email,
	}
}
