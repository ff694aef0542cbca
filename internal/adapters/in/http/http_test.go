package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/dental-schedule-slots/internal/adapters/out/cache"
	"github.com/suchimauz/dental-schedule-slots/internal/adapters/out/logger"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/booking_service"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/directory_service"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/session_service"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/slot_generator_service"
	"github.com/suchimauz/dental-schedule-slots/internal/testfixtures"
)

type testServer struct {
	router *gin.Engine
	api    *testfixtures.DentalAPI
}

func newTestServer(t *testing.T, cfg *config.Config) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()

	api := testfixtures.NewDentalAPI()
	api.Dentists = []domain.Dentist{testfixtures.Dentist(t)}
	api.Appointments = []domain.Appointment{testfixtures.Appointment(t, 1, "2030-01-07", "09:30", "10:30")}

	cacheAdapter, err := cache.NewCacheAdapter(cfg, log)
	require.NoError(t, err)

	slots := slot_generator_service.NewSlotGeneratorService(api, cacheAdapter, cfg, log)
	sessions := session_service.NewSessionService(api, cache.NewSessionStore(cfg, log), cfg, log)
	booking := booking_service.NewBookingService(api, cache.NewBookingFormStore(cfg, log), slots, cfg, log)
	directory := directory_service.NewDirectoryService(api, cacheAdapter, slots, cfg, log)
	sessions.OnTeardown(booking.DiscardForm)

	router := NewRouter(cfg, log,
		NewAuthController(sessions, cfg, log),
		NewAppointmentController(booking, sessions, cfg, log),
		NewDirectoryController(directory, sessions, cfg, log),
		NewSlotController(slots, sessions, cfg, log),
	)

	return testServer{router: router, api: api}
}

func (s testServer) do(t *testing.T, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		request.Header.Set(sessionHeader, sessionID)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, request)
	return recorder
}

func (s testServer) login(t *testing.T) string {
	t.Helper()
	recorder := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "alice@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decode(t, recorder)
	sessionID, _ := body["sessionId"].(string)
	require.NotEmpty(t, sessionID)
	return sessionID
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())

	recorder := server.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", decode(t, recorder)["status"])
	assert.NotEmpty(t, recorder.Header().Get(requestIDHeader))
}

func TestLoginSetsSessionCookie(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())

	recorder := server.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "alice@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "dental_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, decode(t, recorder)["sessionId"], cookies[0].Value)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	request.AddCookie(cookies[0])
	me := httptest.NewRecorder()
	server.router.ServeHTTP(me, request)

	assert.Equal(t, http.StatusOK, me.Code)
	assert.NotContains(t, me.Body.String(), "token")
}

func TestLoginRequiresFields(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())

	recorder := server.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "alice@example.com"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Fill all required fields", decode(t, recorder)["error"])
	assert.Zero(t, server.api.Calls("Login"))
}

func TestLoginRateLimited(t *testing.T) {
	cfg := testfixtures.Config()
	cfg.Auth.RatePerMinute = 1
	cfg.Auth.RateBurst = 1
	server := newTestServer(t, cfg)

	credentials := gin.H{"email": "alice@example.com", "password": "secret"}
	first := server.do(t, http.MethodPost, "/api/v1/auth/login", "", credentials)
	second := server.do(t, http.MethodPost, "/api/v1/auth/login", "", credentials)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, 1, server.api.Calls("Login"))
}

func TestProtectedRouteWithoutSession(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())

	recorder := server.do(t, http.MethodGet, "/api/v1/appointments", "", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "/login", decode(t, recorder)["redirect"])
}

func TestLogoutEndsSession(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	logout := server.do(t, http.MethodPost, "/api/v1/auth/logout", sessionID, nil)
	me := server.do(t, http.MethodGet, "/api/v1/auth/me", sessionID, nil)

	assert.Equal(t, http.StatusOK, logout.Code)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestCreateAppointment(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodPost, "/api/v1/appointments", sessionID, gin.H{
		"dentist_id": 7,
		"date":       "2030-01-07",
		"timeFrom":   "10:30",
		"timeTo":     "11:00",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.Len(t, server.api.Created, 1)
	assert.Equal(t, 7, server.api.Created[0].DentistID)
}

func TestCreateAppointmentConflict(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodPost, "/api/v1/appointments", sessionID, gin.H{
		"dentist_id": 7,
		"date":       "2030-01-07",
		"timeFrom":   "10:00",
		"timeTo":     "11:00",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, "ConflictDetected", body["kind"])
	assert.Equal(t, "Selected time conflicts with an existing appointment.", body["message"])
	assert.Empty(t, server.api.Created)
}

func TestCreateAppointmentIncomplete(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodPost, "/api/v1/appointments", sessionID, gin.H{"dentist_id": 7})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, "Please fill in all fields.", decode(t, recorder)["message"])
}

func TestUpstreamUnauthorizedEndsSession(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	server.api.SetErr(&domain.UpstreamError{StatusCode: http.StatusUnauthorized})
	recorder := server.do(t, http.MethodGet, "/api/v1/dentists", sessionID, nil)
	server.api.SetErr(nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "/login", decode(t, recorder)["redirect"])

	me := server.do(t, http.MethodGet, "/api/v1/auth/me", sessionID, nil)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestUpstreamClientErrorPassedThrough(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	server.api.SetErr(&domain.UpstreamError{StatusCode: http.StatusBadRequest, Message: "Email already exists"})
	recorder := server.do(t, http.MethodPost, "/api/v1/users", sessionID, gin.H{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "secret",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email already exists", decode(t, recorder)["error"])
}

func TestUpstreamServerErrorUsesFallback(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	server.api.SetErr(&domain.UpstreamError{StatusCode: http.StatusInternalServerError})
	recorder := server.do(t, http.MethodGet, "/api/v1/dentists", sessionID, nil)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Equal(t, "Failed to fetch dentists", decode(t, recorder)["error"])
}

func TestDeleteUnknownAppointment(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodDelete, "/api/v1/appointments/404", sessionID, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestInvalidPathID(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodPost, "/api/v1/appointments/abc/cancel", sessionID, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAvailability(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodGet, "/api/v1/dentists/7/availability?date=2030-01-07&timeFrom=09:00", sessionID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var availability domain.Availability
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &availability))
	labels := make([]string, 0, len(availability.StartTimes))
	for _, slot := range availability.StartTimes {
		labels = append(labels, slot.Value.String())
	}
	assert.Equal(t, []string{"09:00:00", "10:30:00", "11:00:00", "11:30:00", "12:00:00"}, labels)
	require.Len(t, availability.EndTimes, 1)
	assert.Equal(t, "09:30:00", availability.EndTimes[0].Value.String())
}

func TestAvailabilityDebug(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodGet, "/api/v1/dentists/7/availability?date=2030-01-07&debug=true", sessionID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decode(t, recorder)
	assert.Contains(t, body, "availability")
	assert.Len(t, body["debugInfo"], 4)
}

func TestAvailabilityInvalidDate(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodGet, "/api/v1/dentists/7/availability?date=tomorrow", sessionID, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGenerateSlots(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())

	recorder := server.do(t, http.MethodGet, "/api/v1/slots?start=09:00&end=10:00&interval=30", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var slots []domain.TimeSlot
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &slots))
	assert.Len(t, slots, 3)

	invalid := server.do(t, http.MethodGet, "/api/v1/slots?interval=-5", "", nil)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
}

func TestBookingFormFlow(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	notOpened := server.do(t, http.MethodGet, "/api/v1/booking-form", sessionID, nil)
	assert.Equal(t, http.StatusConflict, notOpened.Code)

	opened := server.do(t, http.MethodPost, "/api/v1/booking-form", sessionID, nil)
	require.Equal(t, http.StatusOK, opened.Code)

	patched := server.do(t, http.MethodPatch, "/api/v1/booking-form", sessionID, gin.H{"dentist_id": 7, "date": "2030-01-07"})
	require.Equal(t, http.StatusOK, patched.Code)

	var view domain.BookingFormView
	require.NoError(t, json.Unmarshal(patched.Body.Bytes(), &view))
	assert.Len(t, view.StartTimes, 5)

	selected := server.do(t, http.MethodPatch, "/api/v1/booking-form", sessionID, gin.H{"timeFrom": "10:30", "timeTo": "11:30"})
	require.Equal(t, http.StatusOK, selected.Code)

	submitted := server.do(t, http.MethodPost, "/api/v1/booking-form/submit", sessionID, nil)
	assert.Equal(t, http.StatusOK, submitted.Code)
	assert.Len(t, server.api.Created, 1)

	closed := server.do(t, http.MethodGet, "/api/v1/booking-form", sessionID, nil)
	assert.Equal(t, http.StatusConflict, closed.Code)
}

func TestListAppointmentsPaginated(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodGet, "/api/v1/appointments?page=3", sessionID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decode(t, recorder)
	assert.Len(t, body["items"], 1)
}

func TestUnknownForm(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodGet, "/api/v1/forms/unknown", sessionID, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDentistFormWithQueryValues(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	sessionID := server.login(t)

	recorder := server.do(t, http.MethodGet, "/api/v1/forms/dentist?availableStart=22:00", sessionID, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())
	server.api.SetErr(&domain.UpstreamError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"})

	recorder := server.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "alice@example.com", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid credentials", decode(t, recorder)["error"])
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	server := newTestServer(t, testfixtures.Config())

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRateLimiterStoreIsBounded(t *testing.T) {
	cfg := testfixtures.Config()
	cfg.Auth.RateStoreSize = 2
	limiter := newIPRateLimiter(cfg, logger.NewNopLogger())

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4", "10.0.0.5"} {
		limiter.get(ip)
	}

	assert.Equal(t, 2, limiter.limiters.Len())
	_, kept := limiter.limiters.Peek("10.0.0.5")
	assert.True(t, kept)
	_, evicted := limiter.limiters.Peek("10.0.0.1")
	assert.False(t, evicted)
}

func TestRateLimiterReusesLimiterPerIP(t *testing.T) {
	limiter := newIPRateLimiter(testfixtures.Config(), logger.NewNopLogger())

	assert.Same(t, limiter.get("10.0.0.1"), limiter.get("10.0.0.1"))
	assert.NotSame(t, limiter.get("10.0.0.1"), limiter.get("10.0.0.2"))
}
