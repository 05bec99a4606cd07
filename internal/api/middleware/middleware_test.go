package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		role     string
		wantCode int
		want     domain.Actor
	}{
		{name: "client by default", userID: "12", wantCode: http.StatusOK, want: domain.Actor{UserID: 12, Role: domain.RoleClient}},
		{name: "admin", userID: "1", role: "admin", wantCode: http.StatusOK, want: domain.Actor{UserID: 1, Role: domain.RoleAdmin}},
		{name: "role is case insensitive", userID: "5", role: "Employee", wantCode: http.StatusOK, want: domain.Actor{UserID: 5, Role: domain.RoleEmployee}},
		{name: "missing user", wantCode: http.StatusUnauthorized},
		{name: "invalid user", userID: "abc", wantCode: http.StatusUnauthorized},
		{name: "zero user", userID: "0", wantCode: http.StatusUnauthorized},
		{name: "unknown role", userID: "1", role: "root", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Actor
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, _ = middleware.GetActor(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(middleware.HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(middleware.HeaderUserRole, tt.role)
			}
			rec := httptest.NewRecorder()

			middleware.Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, called)
			if called {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
	}))

	t.Run("generates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("keeps valid incoming id", func(t *testing.T) {
		const id = "7f1c3a52-1d9e-4a8e-9a4b-3f0e2b6c9d11"
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.HeaderRequestID, id)

		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, id, seen)
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.HeaderRequestID, "not-a-uuid")

		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "not-a-uuid", seen)
	})
}

type collectorSpy struct {
	method string
	path   string
	status int
}

func (c *collectorSpy) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	c.method, c.path, c.status = method, path, status
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	spy := &collectorSpy{}
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(spy))
	r.HandleFunc("/visits/{visitId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/visits/42", nil))

	assert.Equal(t, http.MethodGet, spy.method)
	assert.Equal(t, "/visits/{visitId}", spy.path)
	assert.Equal(t, http.StatusNotFound, spy.status)
}
