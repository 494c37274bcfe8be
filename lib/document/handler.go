package documenthandler

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"horeca-jobs-backend/db"
	applicationstore "horeca-jobs-backend/lib/application/store"
	"horeca-jobs-backend/lib/audit"
	documentstore "horeca-jobs-backend/lib/document/store"
	filestorage "horeca-jobs-backend/lib/file-storage"
	"horeca-jobs-backend/models"
	documentapimodels "horeca-jobs-backend/models/api/document"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Upload(ctx context.Context, info dbmodels.UploadDocumentInfo, fileReader io.Reader, fileSize int64) (id string, err error)
	Download(ctx context.Context, orgID, id string) (rec *dbmodels.Document, body []byte, err error)
	DownloadForCandidate(ctx context.Context, candidateID, id string) (rec *dbmodels.Document, body []byte, err error)
	ListForApplication(orgID, applicationID string) (result []documentapimodels.DocumentView, err error)
	ListForCandidate(candidateID, applicationID string) (result []documentapimodels.DocumentView, err error)
	Share(orgID, userID, id string, shared bool) error
	Delete(ctx context.Context, orgID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            documentstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            documentstore.Provider
	applicationStore applicationstore.Provider
}

// Upload - загрузка документа по отклику.
// Файл кладется в хранилище под идентификатором записи документа
func (i impl) Upload(ctx context.Context, info dbmodels.UploadDocumentInfo, fileReader io.Reader, fileSize int64) (string, error) {
	application, err := i.applicationStore.GetByID(info.OrganizationID, info.ApplicationID)
	if err != nil {
		return "", err
	}
	if application == nil {
		return "", models.NewNotFoundError("отклик не найден")
	}
	docType := info.Type
	if docType == "" {
		docType = dbmodels.DocumentOther
	}
	id, err := i.store.Create(dbmodels.Document{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrganizationID: info.OrganizationID,
		},
		Name:          info.FileName,
		ApplicationID: info.ApplicationID,
		Type:          docType,
		ContentType:   info.ContentType,
		UploadedByID:  info.UploadedByID,
	})
	if err != nil {
		return "", err
	}
	err = filestorage.Instance.UploadFile(ctx, info.OrganizationID, id, fileReader, fileSize, info.ContentType)
	if err != nil {
		delErr := i.store.Delete(info.OrganizationID, id)
		if delErr != nil {
			log.WithError(delErr).
				WithField("document_id", id).
				Error("не удалось удалить запись документа после ошибки загрузки файла")
		}
		return "", err
	}
	log.WithField("organization_id", info.OrganizationID).
		WithField("application_id", info.ApplicationID).
		WithField("document_id", id).
		Info("Загружен документ")
	audit.Instance.Log(dbmodels.AuditDocumentUploaded, "document", id,
		dbmodels.AuditPayload{"file_name": info.FileName, "type": string(docType)},
		info.UploadedByID, info.OrganizationID)
	return id, nil
}

func (i impl) Download(ctx context.Context, orgID, id string) (*dbmodels.Document, []byte, error) {
	rec, err := i.store.GetByID(orgID, id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.NewNotFoundError("документ не найден")
	}
	body, err := filestorage.Instance.GetFile(ctx, orgID, id)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

// DownloadForCandidate - скачивание документа соискателем.
// Доступны только документы по его отклику, расшаренные организацией
func (i impl) DownloadForCandidate(ctx context.Context, candidateID, id string) (*dbmodels.Document, []byte, error) {
	rec, err := i.store.GetAny(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil || !rec.SharedWithCandidate {
		return nil, nil, models.NewNotFoundError("документ не найден")
	}
	application, err := i.applicationStore.GetAny(rec.ApplicationID)
	if err != nil {
		return nil, nil, err
	}
	if application == nil || application.CandidateID != candidateID {
		return nil, nil, models.NewForbiddenError("документ принадлежит другому соискателю")
	}
	body, err := filestorage.Instance.GetFile(ctx, rec.OrganizationID, id)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) ListForApplication(orgID, applicationID string) ([]documentapimodels.DocumentView, error) {
	list, err := i.store.ListForApplication(orgID, applicationID)
	if err != nil {
		return nil, err
	}
	result := make([]documentapimodels.DocumentView, 0, len(list))
	for _, rec := range list {
		result = append(result, documentapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) ListForCandidate(candidateID, applicationID string) ([]documentapimodels.DocumentView, error) {
	application, err := i.applicationStore.GetAny(applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, models.NewNotFoundError("отклик не найден")
	}
	if application.CandidateID != candidateID {
		return nil, models.NewForbiddenError("отклик принадлежит другому соискателю")
	}
	list, err := i.store.ListSharedForApplication(applicationID)
	if err != nil {
		return nil, err
	}
	result := make([]documentapimodels.DocumentView, 0, len(list))
	for _, rec := range list {
		result = append(result, documentapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Share(orgID, userID, id string, shared bool) error {
	err := i.store.SetShared(orgID, id, shared)
	if err != nil {
		return err
	}
	if shared {
		audit.Instance.Log(dbmodels.AuditDocumentShared, "document", id,
			dbmodels.AuditPayload{}, userID, orgID)
	}
	return nil
}

func (i impl) Delete(ctx context.Context, orgID, id string) error {
	err := i.store.Delete(orgID, id)
	if err != nil {
		return err
	}
	err = filestorage.Instance.DeleteFile(ctx, orgID, id)
	if err != nil {
		// запись уже удалена, файл останется сиротой
		log.WithError(err).
			WithField("document_id", id).
			Error("не удалось удалить файл документа из хранилища")
	}
	return nil
}
