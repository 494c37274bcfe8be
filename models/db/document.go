package dbmodels

type Document struct {
	BaseOrgModel
	Name          string `gorm:"type:varchar(255)"`
	ApplicationID string `gorm:"type:varchar(36);index"`
	Type          DocumentType `gorm:"type:varchar(100)"`
	ContentType   string       `gorm:"type:varchar(255)"`
	UploadedByID  string       `gorm:"type:varchar(36)"`
	// SharedWithCandidate - документ доступен соискателю по отклику
	SharedWithCandidate bool
}

type DocumentType string

const (
	DocumentCv       DocumentType = "candidate_cv"
	DocumentContract DocumentType = "contract"
	DocumentOffer    DocumentType = "offer"
	DocumentOther    DocumentType = "other"
)

type UploadDocumentInfo struct {
	OrganizationID string
	ApplicationID  string
	FileName       string
	Type           DocumentType
	ContentType    string
	UploadedByID   string
}
