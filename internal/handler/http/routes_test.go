package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/service"
	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/stretchr/testify/assert"
)

// ---- Helper ----

// newTestRouter wires a router whose auth middleware accepts any bearer token
// and resolves it to user 1. Domain services answer with empty results.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{UserID: 1}, nil
				},
			},
			PeopleService: &mockPeopleService{
				getPeopleFn: func(_ context.Context, _ int64) ([]models.Person, error) {
					return []models.Person{}, nil
				},
			},
			GiftService:    &mockGiftService{},
			AppInfoService: &mockAppInfoService{version: "test-version"},
		},
	}
	return h.Init()
}

// ---- Routing ----

func TestRoutes_ProtectedRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/people"},
		{http.MethodPost, "/api/people"},
		{http.MethodPost, "/api/people/add"},
		{http.MethodPost, "/api/people/reorder"},
		{http.MethodDelete, "/api/people/5"},
		{http.MethodPost, "/api/gifts"},
		{http.MethodPut, "/api/gifts"},
		{http.MethodPatch, "/api/gifts"},
		{http.MethodDelete, "/api/gifts/10"},
	}

	for _, tc := range protected {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// без Authorization — 401, маршрут при этом существует
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_AuthorizedRequestPassesMiddleware(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/people", nil)
	req.Header.Set("Authorization", "Bearer any-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_VersionIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
