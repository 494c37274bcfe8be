package discoverystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"horeca-jobs-backend/lib/utils/helpers"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.WorkerProfile) (id string, err error)
	GetByID(id string) (*dbmodels.WorkerProfile, error)
	GetByCandidateID(candidateID string) (*dbmodels.WorkerProfile, error)
	ListInBox(filter dbmodels.WorkerSearchFilter) (list []dbmodels.WorkerProfile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.WorkerProfile) (string, error) {
	err := i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения анкеты соискателя")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.WorkerProfile, error) {
	rec := dbmodels.WorkerProfile{}
	err := i.db.
		Model(&dbmodels.WorkerProfile{}).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения анкеты соискателя")
	}
	return &rec, nil
}

func (i impl) GetByCandidateID(candidateID string) (*dbmodels.WorkerProfile, error) {
	rec := dbmodels.WorkerProfile{}
	err := i.db.
		Model(&dbmodels.WorkerProfile{}).
		Where("candidate_id = ?", candidateID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения анкеты соискателя")
	}
	return &rec, nil
}

// ListInBox - выборка анкет по грубой рамке вокруг точки поиска,
// точная фильтрация по радиусу выполняется на уровне обработчика
func (i impl) ListInBox(filter dbmodels.WorkerSearchFilter) ([]dbmodels.WorkerProfile, error) {
	minLat, maxLat, minLon, maxLon := helpers.BoundingBox(filter.Latitude, filter.Longitude, filter.RadiusKm)
	list := []dbmodels.WorkerProfile{}
	err := i.db.
		Model(&dbmodels.WorkerProfile{}).
		Where("visible = ?", true).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLon, maxLon).
		Order("created_at").
		Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска анкет соискателей")
	}
	return list, nil
}
