package discoveryhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"horeca-jobs-backend/db"
	"horeca-jobs-backend/lib/audit"
	billinghandler "horeca-jobs-backend/lib/billing"
	"horeca-jobs-backend/models"
	billingapimodels "horeca-jobs-backend/models/api/billing"
	discoveryapimodels "horeca-jobs-backend/models/api/discovery"
	dbmodels "horeca-jobs-backend/models/db"
)

func setupTest(t *testing.T) {
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.DB = gdb
	require.NoError(t, db.AutoMigrateDB())
	db.InitPreload()
	audit.NewHandler()
	billinghandler.NewHandler()
	NewHandler()
}

func createOrg(t *testing.T, name string) dbmodels.Organization {
	rec := dbmodels.Organization{Name: name}
	require.NoError(t, db.DB.Create(&rec).Error)
	return rec
}

func saveProfile(t *testing.T, candidateID, firstName string, lat, lon float64, skills []string, visible bool) string {
	id, err := Instance.SaveProfile(candidateID, dbmodels.WorkerProfile{
		FirstName: firstName,
		LastName:  "Иванов",
		City:      "Москва",
		Latitude:  lat,
		Longitude: lon,
		Skills:    skills,
		Phone:     "+7 900 000-00-00",
		Email:     "worker@example.com",
		Visible:   visible,
	})
	require.NoError(t, err)
	return id
}

// центр поиска - Москва
const (
	searchLat = 55.75
	searchLon = 37.62
)

func TestSearchByRadius(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	// ~1 км от точки поиска
	near := saveProfile(t, "c-near", "Анна", 55.76, 37.62, nil, true)
	// ~22 км от точки поиска
	saveProfile(t, "c-far", "Борис", 55.95, 37.62, nil, true)

	result, err := Instance.Search(org.ID, discoveryapimodels.SearchRequest{
		Latitude:  searchLat,
		Longitude: searchLon,
		RadiusKm:  10,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, near, result[0].ID)
	assert.InDelta(t, 1.1, result[0].DistanceKm, 0.2)
}

func TestSearchOrderedByDistance(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	second := saveProfile(t, "c-2", "Борис", 55.77, 37.62, nil, true)
	first := saveProfile(t, "c-1", "Анна", 55.755, 37.62, nil, true)

	result, err := Instance.Search(org.ID, discoveryapimodels.SearchRequest{
		Latitude:  searchLat,
		Longitude: searchLon,
		RadiusKm:  10,
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first, result[0].ID)
	assert.Equal(t, second, result[1].ID)
}

func TestSearchBySkills(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	matched := saveProfile(t, "c-1", "Анна", 55.76, 37.62, []string{"Повар", "Гриль "}, true)
	saveProfile(t, "c-2", "Борис", 55.76, 37.62, []string{"Бармен"}, true)

	result, err := Instance.Search(org.ID, discoveryapimodels.SearchRequest{
		Latitude:  searchLat,
		Longitude: searchLon,
		RadiusKm:  10,
		Skills:    []string{"повар", "гриль"},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, matched, result[0].ID)
}

func TestSearchSkipsHiddenProfiles(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	saveProfile(t, "c-1", "Анна", 55.76, 37.62, nil, false)

	result, err := Instance.Search(org.ID, discoveryapimodels.SearchRequest{
		Latitude:  searchLat,
		Longitude: searchLon,
		RadiusKm:  10,
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearchHidesContacts(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	saveProfile(t, "c-1", "Анна", 55.76, 37.62, nil, true)

	result, err := Instance.Search(org.ID, discoveryapimodels.SearchRequest{
		Latitude:  searchLat,
		Longitude: searchLon,
		RadiusKm:  10,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Анна", result[0].FirstName)
}

func TestRevealContacts(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	_, err := billinghandler.Instance.Subscribe(org.ID, "", billingapimodels.SubscribeRequest{PlanCode: "start"})
	require.NoError(t, err)
	workerID := saveProfile(t, "c-1", "Анна", 55.76, 37.62, nil, true)

	contacts, err := Instance.RevealContacts(org.ID, "", workerID, discoveryapimodels.SearchRequest{
		Latitude:  searchLat,
		Longitude: searchLon,
	})
	require.NoError(t, err)
	assert.Equal(t, "Иванов", contacts.LastName)
	assert.Equal(t, "+7 900 000-00-00", contacts.Phone)
	assert.Equal(t, "worker@example.com", contacts.Email)

	// списан один кредит
	sub, err := billinghandler.Instance.GetOrgSubscription(org.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, sub.OutreachCredits)
}

func TestRevealContactsWithoutSubscription(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	workerID := saveProfile(t, "c-1", "Анна", 55.76, 37.62, nil, true)

	_, err := Instance.RevealContacts(org.ID, "", workerID, discoveryapimodels.SearchRequest{})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindInvalidState, models.GetErrorKind(err))
}

func TestRevealContactsHiddenProfile(t *testing.T) {
	setupTest(t)
	org := createOrg(t, "Кафе Восток")
	workerID := saveProfile(t, "c-1", "Анна", 55.76, 37.62, nil, false)

	_, err := Instance.RevealContacts(org.ID, "", workerID, discoveryapimodels.SearchRequest{})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))

	_, err = Instance.RevealContacts(org.ID, "", "missing", discoveryapimodels.SearchRequest{})
	require.Error(t, err)
	assert.Equal(t, models.ErrorKindNotFound, models.GetErrorKind(err))
}

func TestSaveProfileUpsert(t *testing.T) {
	setupTest(t)
	first := saveProfile(t, "c-1", "Анна", 55.76, 37.62, []string{"Повар"}, true)
	second := saveProfile(t, "c-1", "Анна Мария", 55.76, 37.62, []string{"Повар", "Кондитер"}, true)
	assert.Equal(t, first, second)

	rec := dbmodels.WorkerProfile{}
	require.NoError(t, db.DB.Where("candidate_id = ?", "c-1").First(&rec).Error)
	assert.Equal(t, "Анна Мария", rec.FirstName)
	assert.Len(t, rec.Skills, 2)
}
