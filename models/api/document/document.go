package documentapimodels

import (
	"time"

	dbmodels "horeca-jobs-backend/models/db"
)

type DocumentView struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	ApplicationID       string               `json:"application_id"`
	Type                dbmodels.DocumentType `json:"type"`
	ContentType         string               `json:"content_type"`
	SharedWithCandidate bool                 `json:"shared_with_candidate"`
	CreatedAt           time.Time            `json:"created_at"`
}

func Convert(rec dbmodels.Document) DocumentView {
	return DocumentView{
		ID:                  rec.ID,
		Name:                rec.Name,
		ApplicationID:       rec.ApplicationID,
		Type:                rec.Type,
		ContentType:         rec.ContentType,
		SharedWithCandidate: rec.SharedWithCandidate,
		CreatedAt:           rec.CreatedAt,
	}
}
