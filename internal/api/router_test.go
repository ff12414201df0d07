package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenbase/gateway/internal/domain"
	"github.com/zenbase/gateway/internal/store"
	"go.uber.org/zap"
)

// fakeTenantStore serves a fixed set of tenants.
type fakeTenantStore struct {
	tenants map[string]*domain.Tenant
}

func (f *fakeTenantStore) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, ok := f.tenants[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

// fakeVerifier accepts a single token.
type fakeVerifier struct {
	token     string
	principal *domain.Principal
	err       error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token != f.token {
		return nil, errors.New("unknown token")
	}
	return f.principal, nil
}

func seattleTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:               "tenant-1",
		Slug:             "seattle",
		Name:             "Seattle Zenbase",
		Region:           "Seattle Region",
		OnboardingStatus: domain.OnboardingSuccess,
		CreatedAt:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testConfig() Config {
	return Config{
		BaseDomain:     "zenbase.online",
		LocalDevSuffix: "localhost",
		CORSOrigin:     "*",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
}

func newTestApp(deps Deps) *App {
	return NewApp(testConfig(), deps, zap.NewNop())
}

func doRequest(t *testing.T, app *App, method, url string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthNeedsNoTenant(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{},
	})

	rec := doRequest(t, app, http.MethodGet, "http://any.example.com/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestInfoQueryFallbackNoAuth(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{token: "tok", principal: &domain.Principal{ID: "u1"}},
	})

	rec := doRequest(t, app, http.MethodGet, "http://api.example.com/api/v1/tenant/info?tenant=seattle", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	tenant := body["tenant"].(map[string]any)
	assert.Equal(t, "seattle", tenant["slug"])
	assert.Nil(t, body["user"])
}

func TestInfoSubdomainWithAuth(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{token: "tok", principal: &domain.Principal{ID: "u1", Email: "u@example.com"}},
	})

	rec := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/info", map[string]string{
		"Authorization": "Bearer tok",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user := body["user"].(map[string]any)
	assert.Equal(t, "u@example.com", user["email"])
}

func TestOptionalAuthSwallowsVerifierFailure(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{err: errors.New("provider outage")},
	})

	rec := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/info", map[string]string{
		"Authorization": "Bearer whatever",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Nil(t, body["user"])
}

func TestDashboardRequiresAuth(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{token: "tok", principal: &domain.Principal{ID: "u1"}},
	})

	rec := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/dashboard", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/dashboard", map[string]string{
		"Authorization": "Bearer wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardPlaceholderData(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{token: "tok", principal: &domain.Principal{ID: "u1"}},
	})

	rec := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/dashboard", map[string]string{
		"Authorization": "Bearer tok",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	tenant := body["tenant"].(map[string]any)
	assert.Equal(t, "seattle", tenant["slug"])
	data := body["data"].([]any)
	assert.Len(t, data, 3)
	first := data[0].(map[string]any)
	assert.Equal(t, "tenant-1", first["tenant_id"])
}

func TestAdminsEndpoint(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{token: "tok", principal: &domain.Principal{ID: "u1"}},
	})

	rec := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/admins", map[string]string{
		"Authorization": "Bearer tok",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	admins := body["admins"].([]any)
	assert.Len(t, admins, 2)
}

func TestUnknownTenantIs404(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{},
	})

	rec := doRequest(t, app, http.MethodGet, "http://unknown.zenbase.online/api/v1/tenant/info", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Tenant not found", body["error"])
	assert.Equal(t, "unknown", body["tenant"])
}

func TestMissingTenantIs400(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{},
	})

	rec := doRequest(t, app, http.MethodGet, "http://api.example.com/api/v1/tenant/info", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No tenant specified", body["error"])
	assert.Contains(t, body["message"], "?tenant=slug")
}

func TestInfoIsIdempotent(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{},
	})

	first := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/info", nil)
	second := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/info", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestUpstreamFailureIs500(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{tenants: map[string]*domain.Tenant{"seattle": seattleTenant()}},
		Factory:  &failingFactory{},
		Verifier: &fakeVerifier{token: "tok", principal: &domain.Principal{ID: "u1"}},
	})

	rec := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/tenant/dashboard", map[string]string{
		"Authorization": "Bearer tok",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	// Production mode: upstream detail suppressed
	assert.Equal(t, "Failed to fetch dashboard data", body["error"])
}

type failingFactory struct{}

func (f *failingFactory) Scoped(ctx context.Context, tenantID, accessToken string) (domain.ScopedClient, error) {
	return &failingClient{tenantID: tenantID}, nil
}

type failingClient struct {
	tenantID string
}

func (c *failingClient) TenantID() string { return c.tenantID }

func (c *failingClient) DashboardMetrics(ctx context.Context) ([]domain.DashboardMetric, error) {
	return nil, errors.New("connection refused")
}

func (c *failingClient) TenantAdmins(ctx context.Context) ([]domain.TenantAdmin, error) {
	return nil, errors.New("connection refused")
}

func TestAPINotFoundIsJSON(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{},
	})

	rec := doRequest(t, app, http.MethodGet, "http://seattle.zenbase.online/api/v1/nope?tenant=seattle", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRootIndex(t *testing.T) {
	app := newTestApp(Deps{
		Tenants:  &fakeTenantStore{},
		Factory:  store.NewPlaceholder(),
		Verifier: &fakeVerifier{},
	})

	rec := doRequest(t, app, http.MethodGet, "http://zenbase.online/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Zenbase API", body["name"])
}
