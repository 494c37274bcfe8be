package documentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"horeca-jobs-backend/models"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Document) (id string, err error)
	GetByID(orgID, id string) (*dbmodels.Document, error)
	GetAny(id string) (*dbmodels.Document, error)
	ListForApplication(orgID, applicationID string) (list []dbmodels.Document, err error)
	ListSharedForApplication(applicationID string) (list []dbmodels.Document, err error)
	SetShared(orgID, id string, shared bool) error
	Delete(orgID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Document) (string, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения документа")
	}
	return rec.ID, nil
}

func (i impl) GetByID(orgID, id string) (*dbmodels.Document, error) {
	rec := dbmodels.Document{}
	err := i.db.
		Model(&dbmodels.Document{}).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения документа")
	}
	return &rec, nil
}

func (i impl) GetAny(id string) (*dbmodels.Document, error) {
	rec := dbmodels.Document{}
	err := i.db.
		Model(&dbmodels.Document{}).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения документа")
	}
	return &rec, nil
}

func (i impl) ListForApplication(orgID, applicationID string) ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	err := i.db.
		Model(&dbmodels.Document{}).
		Where("organization_id = ?", orgID).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка документов")
	}
	return list, nil
}

func (i impl) ListSharedForApplication(applicationID string) ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	err := i.db.
		Model(&dbmodels.Document{}).
		Where("application_id = ?", applicationID).
		Where("shared_with_candidate = ?", true).
		Order("created_at").
		Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка документов")
	}
	return list, nil
}

func (i impl) SetShared(orgID, id string, shared bool) error {
	tx := i.db.
		Model(&dbmodels.Document{}).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Update("shared_with_candidate", shared)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "ошибка обновления документа")
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("документ не найден")
	}
	return nil
}

func (i impl) Delete(orgID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Delete(&dbmodels.Document{})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "ошибка удаления документа")
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("документ не найден")
	}
	return nil
}
