package waitliststore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"horeca-jobs-backend/models"
	waitlistapimodels "horeca-jobs-backend/models/api/waitlist"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WaitlistEntry) (id string, err error)
	GetByID(id string) (*dbmodels.WaitlistEntry, error)
	GetByEmail(email string) (*dbmodels.WaitlistEntry, error)
	List(filter waitlistapimodels.ListFilter) (list []dbmodels.WaitlistEntry, err error)
	ListCount(filter waitlistapimodels.ListFilter) (count int64, err error)
	MarkInvited(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WaitlistEntry) (string, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения заявки в лист ожидания")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.WaitlistEntry, error) {
	rec := dbmodels.WaitlistEntry{}
	err := i.db.
		Model(&dbmodels.WaitlistEntry{}).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	return &rec, nil
}

func (i impl) GetByEmail(email string) (*dbmodels.WaitlistEntry, error) {
	rec := dbmodels.WaitlistEntry{}
	err := i.db.
		Model(&dbmodels.WaitlistEntry{}).
		Where("email = ?", email).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения заявки")
	}
	return &rec, nil
}

func (i impl) List(filter waitlistapimodels.ListFilter) ([]dbmodels.WaitlistEntry, error) {
	list := []dbmodels.WaitlistEntry{}
	tx := i.db.Model(&dbmodels.WaitlistEntry{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	err := tx.
		Order("created_at").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения листа ожидания")
	}
	return list, nil
}

func (i impl) ListCount(filter waitlistapimodels.ListFilter) (int64, error) {
	var count int64
	tx := i.db.Model(&dbmodels.WaitlistEntry{})
	i.addFilter(tx, filter)
	err := tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения числа заявок")
	}
	return count, nil
}

func (i impl) MarkInvited(id string) error {
	tx := i.db.
		Model(&dbmodels.WaitlistEntry{}).
		Where("id = ?", id).
		Where("status = ?", models.WaitlistStatusNew).
		Updates(map[string]interface{}{
			"status":     models.WaitlistStatusInvited,
			"invited_at": time.Now(),
		})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "ошибка обновления заявки")
	}
	if tx.RowsAffected == 0 {
		return models.NewInvalidStateError("заявка уже приглашена")
	}
	return nil
}

func (i impl) addFilter(tx *gorm.DB, filter waitlistapimodels.ListFilter) {
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	}
}
