// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	trace "go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gym-service/internal/storage"
	"github.com/gymstack/gym-service/internal/types"
	"github.com/gymstack/gym-service/pkg/authentication"
)

func setupAPI(t *testing.T) (*gomock.Controller, *MockServiceInterface, *MockResolverInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)

	mockService := NewMockServiceInterface(ctrl)
	mockResolver := NewMockResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	mux := chi.NewMux()
	api := NewAPI(mockService, mockResolver, mockTracer, mockMonitor, mockLogger)
	api.RegisterEndpoints(mux)
	api.RegisterPublicEndpoints(mux)

	return ctrl, mockService, mockResolver, mux
}

func TestHandleCreateTenant(t *testing.T) {
	ctrl, mockService, _, mux := setupAPI(t)
	defer ctrl.Finish()

	created := &types.Tenant{ID: "tenant-1", Name: "Iron Temple", OwnerID: "user-1", Tier: types.TierFree, Enabled: true}
	mockService.EXPECT().CreateTenant(gomock.Any(), "Iron Temple", "user-1").Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(`{"name":"Iron Temple"}`))
	req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}

	var body tenantResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.ID != "tenant-1" || body.Tier != "free" {
		t.Errorf("unexpected response body: %+v", body)
	}
}

func TestHandleCreateTenantUnauthenticated(t *testing.T) {
	ctrl, _, _, mux := setupAPI(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(`{"name":"Iron Temple"}`))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestHandleCreateTenantMissingName(t *testing.T) {
	ctrl, _, _, mux := setupAPI(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestHandleGetTenantNotFound(t *testing.T) {
	ctrl, mockService, _, mux := setupAPI(t)
	defer ctrl.Finish()

	mockService.EXPECT().GetTenant(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/missing", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestHandleSetTier(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectCall     bool
	}{
		{name: "valid tier", body: `{"tier":"pro"}`, expectedStatus: http.StatusOK, expectCall: true},
		{name: "unknown tier", body: `{"tier":"platinum"}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid body", body: `{`, expectedStatus: http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockService, _, mux := setupAPI(t)
			defer ctrl.Finish()

			if test.expectCall {
				updated := &types.Tenant{ID: "tenant-1", Tier: types.TierPro}
				mockService.EXPECT().SetTier(gomock.Any(), "tenant-1", types.TierPro).Return(updated, nil)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v0/tenants/tenant-1/tier", strings.NewReader(test.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleUpdateTenantNoFields(t *testing.T) {
	ctrl, _, _, mux := setupAPI(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/tenants/tenant-1", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestHandleUpdateTenantBrandingPaths(t *testing.T) {
	ctrl, mockService, _, mux := setupAPI(t)
	defer ctrl.Finish()

	updated := &types.Tenant{ID: "tenant-1", Name: "Iron Temple", PrimaryColor: "#FF5722"}
	mockService.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), []string{"primary_color"}).Return(updated, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/tenants/tenant-1", strings.NewReader(`{"primary_color":"#FF5722"}`))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestHandleCheckFeature(t *testing.T) {
	ctrl, mockService, mockResolver, mux := setupAPI(t)
	defer ctrl.Finish()

	tenant := &types.Tenant{ID: "tenant-1", Tier: types.TierPro}
	mockService.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(tenant, nil)
	mockResolver.EXPECT().IsFeatureEnabled(gomock.Any(), tenant, types.FeatureReportsAdvanced).Return(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/features/reports_advanced", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body struct {
		Feature string `json:"feature"`
		Enabled bool   `json:"enabled"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Feature != "reports_advanced" || !body.Enabled {
		t.Errorf("unexpected response body: %+v", body)
	}
}

func TestHandleCheckFeatureUnknown(t *testing.T) {
	ctrl, _, _, mux := setupAPI(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/features/time_travel", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestHandleListFeatures(t *testing.T) {
	ctrl, mockService, mockResolver, mux := setupAPI(t)
	defer ctrl.Finish()

	tenant := &types.Tenant{ID: "tenant-1", Tier: types.TierFree}
	enabled := []types.Feature{types.FeatureMemberManagement, types.FeaturePaymentTracking}
	mockService.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(tenant, nil)
	mockResolver.EXPECT().ListEnabledFeatures(gomock.Any(), tenant).Return(enabled)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/features", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body struct {
		Features []string `json:"features"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Features) != 2 {
		t.Errorf("expected 2 features, got %v", body.Features)
	}
}

func TestHandleSetFeatureOverride(t *testing.T) {
	ctrl, mockService, _, mux := setupAPI(t)
	defer ctrl.Finish()

	updated := &types.Tenant{ID: "tenant-1", CustomFeatures: map[types.Feature]bool{types.FeatureAPIAccess: true}}
	mockService.EXPECT().SetFeatureOverride(gomock.Any(), "tenant-1", types.FeatureAPIAccess, true).Return(updated, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v0/tenants/tenant-1/features/api_access", strings.NewReader(`{"enabled":true}`))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestHandleClearFeatureOverride(t *testing.T) {
	ctrl, mockService, _, mux := setupAPI(t)
	defer ctrl.Finish()

	updated := &types.Tenant{ID: "tenant-1"}
	mockService.EXPECT().ClearFeatureOverride(gomock.Any(), "tenant-1", types.FeatureAPIAccess).Return(updated, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/tenant-1/features/api_access", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestHandleGetTheme(t *testing.T) {
	tests := []struct {
		name     string
		tenant   *types.Tenant
		branding bool
		expected ThemeTokens
	}{
		{
			name:     "branding enabled uses tenant palette",
			tenant:   &types.Tenant{ID: "tenant-1", PrimaryColor: "#FF5722", SecondaryColor: "#673AB7", LogoURL: "https://cdn.example.com/logo.png"},
			branding: true,
			expected: ThemeTokens{PrimaryColor: "#FF5722", SecondaryColor: "#673AB7", LogoURL: "https://cdn.example.com/logo.png"},
		},
		{
			name:     "branding disabled falls back to defaults",
			tenant:   &types.Tenant{ID: "tenant-1", PrimaryColor: "#FF5722", SecondaryColor: "#673AB7"},
			branding: false,
			expected: ThemeTokens{PrimaryColor: DefaultPrimaryColor, SecondaryColor: DefaultSecondaryColor},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockService, mockResolver, mux := setupAPI(t)
			defer ctrl.Finish()

			mockService.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(test.tenant, nil)
			mockResolver.EXPECT().IsFeatureEnabled(gomock.Any(), test.tenant, types.FeatureCustomBranding).Return(test.branding)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/theme", nil)
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
			}

			var body ThemeTokens
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body != test.expected {
				t.Errorf("expected theme %+v, got %+v", test.expected, body)
			}
		})
	}
}

func TestHandleDeleteTenant(t *testing.T) {
	ctrl, mockService, _, mux := setupAPI(t)
	defer ctrl.Finish()

	mockService.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/tenant-1", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
