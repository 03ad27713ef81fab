package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanle-dev/table-management/pkg/authz"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
)

// stubDecider allows everything unless a deny reason is set.
type stubDecider struct {
	reason authz.Reason
}

func (s *stubDecider) Authorize(context.Context, string, string, string) (authz.Decision, error) {
	if s.reason != "" {
		return authz.Decision{Allowed: false, Reason: s.reason}, nil
	}
	return authz.Decision{Allowed: true}, nil
}

func echoBackend(t *testing.T, name string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Backend", name)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(r.Method + " " + r.URL.Path))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(t *testing.T, d authz.Decider) *echo.Echo {
	t.Helper()

	auth := echoBackend(t, "auth")
	table := echoBackend(t, "table")
	tableType := echoBackend(t, "table-type")

	e := echo.New()
	e.HTTPErrorHandler = httpx.ErrorHandler(logging.New("error"))
	require.NoError(t, Register(e, &Deps{
		AuthURL:      auth.URL,
		TableURL:     table.URL,
		TableTypeURL: tableType.URL,
		Decider:      d,
	}))
	return e
}

func TestGateway_RoutesToBackends(t *testing.T) {
	e := newGateway(t, &stubDecider{})

	tests := []struct {
		method  string
		path    string
		backend string
	}{
		{http.MethodPost, "/auth/login", "auth"},
		{http.MethodGet, "/table/page", "table"},
		{http.MethodPut, "/table/update/3", "table"},
		{http.MethodGet, "/table-type/list", "table-type"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.backend, rec.Header().Get("X-Backend"))
			// The upstream sees the original method and path.
			assert.Equal(t, tt.method+" "+tt.path, rec.Body.String())
		})
	}
}

func TestGateway_DeniedRequestsNeverReachBackends(t *testing.T) {
	tests := []struct {
		name       string
		reason     authz.Reason
		wantStatus int
		wantLabel  string
	}{
		{"forbidden", authz.ReasonForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"expired", authz.ReasonTokenExpired, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"missing token", authz.ReasonMissingToken, http.StatusUnauthorized, "UNAUTHORIZED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newGateway(t, &stubDecider{reason: tt.reason})

			req := httptest.NewRequest(http.MethodPost, "/table/create", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("X-Backend"))
			assert.Contains(t, rec.Body.String(), tt.wantLabel)
		})
	}
}

func TestGateway_HealthAndDocsAreOpen(t *testing.T) {
	// Even a decider that denies everything must not block the gateway's
	// own endpoints.
	e := newGateway(t, &stubDecider{reason: authz.ReasonForbidden})

	for _, path := range []string{"/health/live", "/health/ready", "/docs"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
