package applicationstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"horeca-jobs-backend/models"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(orgID, id string) (rec *dbmodels.Application, err error)
	GetAny(id string) (rec *dbmodels.Application, err error)
	IsExistByCandidate(jobID, candidateID string) (found bool, err error)
	ListForJob(orgID, jobID string) (list []dbmodels.Application, err error)
	ListForJobExt(orgID, jobID string) (list []dbmodels.ApplicationWithJob, err error)
	ListForCandidate(candidateID string) (list []dbmodels.Application, err error)
	ChangeStatus(id string, fromStatus, toStatus models.ApplicationStatus, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create - вставка отклика.
// Проверка дубликата в обработчике идет до транзакции, от гонки двух
// одновременных откликов страхует уникальный индекс job_id+candidate_id
func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", models.NewInvalidStateError("отклик на эту вакансию уже отправлен")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(orgID, id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("applications.id = ?", id).
		Where("applications.organization_id = ?", orgID).
		Preload("Job").
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

func (i impl) GetAny(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Job").
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

func (i impl) IsExistByCandidate(jobID, candidateID string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.Application{}).
		Select("count(*) > 0").
		Where("job_id = ? and candidate_id = ?", jobID, candidateID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) ListForJob(orgID, jobID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(dbmodels.Application{}).
		Where("organization_id = ?", orgID).
		Where("job_id = ?", jobID).
		Order("applied_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListForJobExt(orgID, jobID string) (list []dbmodels.ApplicationWithJob, err error) {
	list = []dbmodels.ApplicationWithJob{}
	err = i.db.
		Select("applications.*, j.title as job_title, j.city as job_city").
		Model(&dbmodels.Application{}).
		Joins("left join jobs as j on applications.job_id = j.id").
		Where("applications.organization_id = ?", orgID).
		Where("applications.job_id = ?", jobID).
		Order("applications.applied_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListForCandidate(candidateID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(dbmodels.Application{}).
		Where("candidate_id = ?", candidateID).
		Preload("Job").
		Order("applied_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ChangeStatus - перевод отклика с оптимистичной проверкой текущего этапа:
// условие по from_status отсеивает конкурирующую запись, читавшую устаревший этап.
// Отметка времени нового этапа выставляется только если еще не была выставлена
func (i impl) ChangeStatus(id string, fromStatus, toStatus models.ApplicationStatus, updMap map[string]interface{}) error {
	if updMap == nil {
		updMap = map[string]interface{}{}
	}
	updMap["status"] = toStatus
	if column := dbmodels.StageTimestampColumn(toStatus); column != "" {
		updMap[column] = gorm.Expr("COALESCE("+column+", ?)", time.Now())
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Where("status = ?", fromStatus).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NewInvalidStateError("отклик уже переведен на другой этап")
	}
	return nil
}
