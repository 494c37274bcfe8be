package jobstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"horeca-jobs-backend/models"
	jobapimodels "horeca-jobs-backend/models/api/job"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(orgID, id string, updMap map[string]interface{}) error
	GetByID(orgID, id string) (rec *dbmodels.Job, err error)
	GetAny(id string) (rec *dbmodels.Job, err error)
	GetPublishedByID(id string) (rec *dbmodels.Job, err error)
	List(orgID string, filter jobapimodels.JobFilter) (list []dbmodels.Job, err error)
	ListCount(orgID string, filter jobapimodels.JobFilter) (count int64, err error)
	PublishedCount(orgID string) (count int64, err error)
	ListPublished(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(orgID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("вакансия не найдена")
	}
	return nil
}

func (i impl) GetByID(orgID, id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetAny(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetPublishedByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Where("status = ?", models.JobStatusPublished).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(orgID string, filter jobapimodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{}).
		Where("organization_id = ?", orgID)
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(orgID string, filter jobapimodels.JobFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Job{}).
		Where("organization_id = ?", orgID)
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) PublishedCount(orgID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Job{}).
		Where("organization_id = ?", orgID).
		Where("status = ?", models.JobStatusPublished).
		Count(&count).
		Error
	return count, err
}

func (i impl) ListPublished(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{}).
		Where("status = ?", models.JobStatusPublished)
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Order("published_at desc").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter jobapimodels.JobFilter) {
	if filter.City != "" {
		tx.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}
	if filter.Employment != "" {
		tx.Where("employment = ?", filter.Employment)
	}
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(title) like ? or LOWER(description) like ?", searchValue, searchValue)
	}
}
