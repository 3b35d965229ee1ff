package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/triplink-app/triplink-backend/handlers"
	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/routes"
	"github.com/triplink-app/triplink-backend/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewStore()
	repository.Seed(store)

	scheduler := services.NewScheduler()
	t.Cleanup(scheduler.Stop)

	hs := handlers.NewHandlerServices(store, scheduler, services.SystemClock())

	router := gin.New()
	routes.SetupRoutes(router, hs)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) string {
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alison@example.com",
		"password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.SessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginAndListTrips(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/trips", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var trips []models.Trip
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &trips))
	assert.Len(t, trips, 2)
}

func TestTripsRequireSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/trips", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/trips", "stale-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEventOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/trips/t1/events", token, gin.H{
		"title":     "Bamboo grove walk",
		"startTime": "16:00",
		"date":      "2025/08/16",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var event models.ItineraryEvent
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Equal(t, "Bamboo grove walk", event.Title)
	assert.Equal(t, "TBD", event.Location)

	// Malformed times bounce with a 400
	w = doJSON(t, router, http.MethodPost, "/api/v1/trips/t1/events", token, gin.H{
		"title":     "Bad",
		"startTime": "26:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuestIsReadOnlyOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/guest", "", gin.H{"tripRef": "t1"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		Trip  models.Trip `json:"trip"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "t1", resp.Trip.ID)

	// Reads pass
	w = doJSON(t, router, http.MethodGet, "/api/v1/trips/t1/schedule", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Writes do not
	w = doJSON(t, router, http.MethodPost, "/api/v1/trips/t1/expenses", resp.Token, gin.H{
		"title":   "Guest expense",
		"amount":  100,
		"payerId": "u1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestExpenseSummaryOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/trips/t1/expenses", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.ExpenseSummaryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 46500, summary.Total)
}

func TestExportExpensesOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/trips/t1/expenses/export", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestUnknownTripIs404(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/trips/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMutatingUnknownTripIs404(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/v1/trips/missing", token, gin.H{
		"title": "Renamed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/trips/missing/save", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/trips/missing/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
