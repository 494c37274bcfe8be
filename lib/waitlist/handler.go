package waitlisthandler

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"horeca-jobs-backend/config"
	"horeca-jobs-backend/db"
	"horeca-jobs-backend/lib/audit"
	"horeca-jobs-backend/lib/smtp"
	waitliststore "horeca-jobs-backend/lib/waitlist/store"
	"horeca-jobs-backend/models"
	waitlistapimodels "horeca-jobs-backend/models/api/waitlist"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Join(data waitlistapimodels.JoinRequest) (id string, err error)
	List(filter waitlistapimodels.ListFilter) (result []waitlistapimodels.EntryView, rowCount int64, err error)
	Invite(userID, entryID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: waitliststore.NewInstance(db.DB),
	}
}

type impl struct {
	store waitliststore.Provider
}

// Join - заявка в лист ожидания запуска в городе.
// Повторная заявка с той же почтой не создает дубликата
func (i impl) Join(data waitlistapimodels.JoinRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	existed, err := i.store.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return existed.ID, nil
	}
	id, err := i.store.Create(dbmodels.WaitlistEntry{
		Email:   email,
		Name:    data.Name,
		City:    data.City,
		Comment: data.Comment,
		Status:  models.WaitlistStatusNew,
	})
	if err != nil {
		return "", err
	}
	log.WithField("city", data.City).Info("Новая заявка в листе ожидания")
	return id, nil
}

func (i impl) List(filter waitlistapimodels.ListFilter) ([]waitlistapimodels.EntryView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]waitlistapimodels.EntryView, 0, len(list))
	for _, rec := range list {
		result = append(result, waitlistapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

// Invite - приглашение из листа ожидания, письмо со ссылкой на регистрацию.
// Статус меняется атомарно, повторное приглашение отклоняется
func (i impl) Invite(userID, entryID string) error {
	rec, err := i.store.GetByID(entryID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("заявка не найдена")
	}
	err = i.store.MarkInvited(entryID)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Здравствуйте!\r\nПлатформа подбора персонала теперь доступна в вашем городе.\r\nДля регистрации перейдите по ссылке: %v", config.Conf.Smtp.InviteLinkURL)
	err = smtp.Instance.SendEMail(config.Conf.Smtp.EmailSender, rec.Email, message, "Приглашение на платформу")
	if err != nil {
		log.WithError(err).
			WithField("entry_id", entryID).
			Error("не удалось отправить письмо с приглашением")
	}
	audit.Instance.Log(dbmodels.AuditWaitlistInvited, "waitlist_entry", entryID,
		dbmodels.AuditPayload{"city": rec.City}, userID, "")
	return nil
}
