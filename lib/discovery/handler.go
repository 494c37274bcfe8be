package discoveryhandler

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"horeca-jobs-backend/db"
	"horeca-jobs-backend/lib/audit"
	billinghandler "horeca-jobs-backend/lib/billing"
	discoverystore "horeca-jobs-backend/lib/discovery/store"
	"horeca-jobs-backend/lib/utils/helpers"
	"horeca-jobs-backend/models"
	discoveryapimodels "horeca-jobs-backend/models/api/discovery"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	Search(orgID string, data discoveryapimodels.SearchRequest) (result []discoveryapimodels.WorkerView, err error)
	RevealContacts(orgID, userID, workerID string, data discoveryapimodels.SearchRequest) (result discoveryapimodels.ContactsView, err error)
	SaveProfile(candidateID string, rec dbmodels.WorkerProfile) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: discoverystore.NewInstance(db.DB),
	}
}

type impl struct {
	store discoverystore.Provider
}

// Search - поиск видимых анкет соискателей в радиусе от точки.
// Контакты в выдаче не раскрываются
func (i impl) Search(orgID string, data discoveryapimodels.SearchRequest) ([]discoveryapimodels.WorkerView, error) {
	filter := data.ToFilter()
	list, err := i.store.ListInBox(filter)
	if err != nil {
		return nil, err
	}
	result := []discoveryapimodels.WorkerView{}
	for _, rec := range list {
		distanceKm := helpers.DistanceKm(filter.Latitude, filter.Longitude, rec.Latitude, rec.Longitude)
		if distanceKm > filter.RadiusKm {
			continue
		}
		if !matchSkills(rec.Skills, filter.Skills) {
			continue
		}
		result = append(result, discoveryapimodels.Convert(rec, distanceKm))
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].DistanceKm < result[b].DistanceKm
	})
	log.WithField("organization_id", orgID).
		WithField("found", len(result)).
		Info("Выполнен поиск соискателей")
	return result, nil
}

// RevealContacts - раскрытие контактов соискателя за кредит исходящих
// обращений. Кредит списывается атомарно, при нулевом остатке контакты
// не раскрываются
func (i impl) RevealContacts(orgID, userID, workerID string, data discoveryapimodels.SearchRequest) (discoveryapimodels.ContactsView, error) {
	rec, err := i.store.GetByID(workerID)
	if err != nil {
		return discoveryapimodels.ContactsView{}, err
	}
	if rec == nil || !rec.Visible {
		return discoveryapimodels.ContactsView{}, models.NewNotFoundError("анкета соискателя не найдена")
	}
	err = billinghandler.Instance.SpendOutreachCredit(orgID, userID)
	if err != nil {
		return discoveryapimodels.ContactsView{}, err
	}
	log.WithField("organization_id", orgID).
		WithField("worker_id", workerID).
		Info("Раскрыты контакты соискателя")
	audit.Instance.Log(dbmodels.AuditOutreachSpent, "worker_profile", workerID,
		dbmodels.AuditPayload{}, userID, orgID)
	distanceKm := helpers.DistanceKm(data.Latitude, data.Longitude, rec.Latitude, rec.Longitude)
	return discoveryapimodels.ContactsConvert(*rec, distanceKm), nil
}

func (i impl) SaveProfile(candidateID string, rec dbmodels.WorkerProfile) (string, error) {
	existed, err := i.store.GetByCandidateID(candidateID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		rec.ID = existed.ID
		rec.CreatedAt = existed.CreatedAt
	}
	rec.CandidateID = candidateID
	return i.store.Save(rec)
}

// matchSkills - анкета подходит, если содержит все запрошенные навыки
func matchSkills(workerSkills []string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	existed := map[string]bool{}
	for _, skill := range workerSkills {
		existed[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	for _, skill := range wanted {
		if !existed[strings.ToLower(strings.TrimSpace(skill))] {
			return false
		}
	}
	return true
}
