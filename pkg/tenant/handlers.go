// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/storage"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
	"github.com/gymstack/gym-service/pkg/authentication"
	"github.com/gymstack/gym-service/pkg/entitlement"
)

type API struct {
	service  ServiceInterface
	resolver entitlement.ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, resolver entitlement.ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.resolver = resolver

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Post("/api/v0/tenants", a.createTenant)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Patch("/api/v0/tenants/{id}", a.updateTenant)
	mux.Delete("/api/v0/tenants/{id}", a.deleteTenant)
	mux.Put("/api/v0/tenants/{id}/tier", a.setTier)
	mux.Get("/api/v0/tenants/{id}/features", a.listFeatures)
	mux.Get("/api/v0/tenants/{id}/features/{feature}", a.checkFeature)
	mux.Put("/api/v0/tenants/{id}/features/{feature}", a.setFeatureOverride)
	mux.Delete("/api/v0/tenants/{id}/features/{feature}", a.clearFeatureOverride)
}

// RegisterPublicEndpoints exposes the routes the login and member surfaces
// need before a role is resolved. Theme tokens leak nothing beyond branding.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tenants/{id}/theme", a.getTheme)
}

type tenantResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	OwnerID        string          `json:"owner_id"`
	Tier           string          `json:"tier"`
	CustomFeatures map[string]bool `json:"custom_features,omitempty"`
	PrimaryColor   string          `json:"primary_color,omitempty"`
	SecondaryColor string          `json:"secondary_color,omitempty"`
	LogoURL        string          `json:"logo_url,omitempty"`
	Enabled        bool            `json:"enabled"`
	CreatedAt      time.Time       `json:"created_at"`
}

func marshalTenant(t *types.Tenant) tenantResponse {
	resp := tenantResponse{
		ID:             t.ID,
		Name:           t.Name,
		OwnerID:        t.OwnerID,
		Tier:           string(t.Tier),
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		LogoURL:        t.LogoURL,
		Enabled:        t.Enabled,
		CreatedAt:      t.CreatedAt,
	}
	if len(t.CustomFeatures) > 0 {
		resp.CustomFeatures = make(map[string]bool, len(t.CustomFeatures))
		for f, enabled := range t.CustomFeatures {
			resp.CustomFeatures[string(f)] = enabled
		}
	}
	return resp
}

func (a *API) writeTenant(w http.ResponseWriter, status int, t *types.Tenant) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(marshalTenant(t)); err != nil {
		a.logger.Errorf("failed to encode tenant: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "tenant not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenants")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		a.writeError(w, err)
		return
	}

	resp := make([]tenantResponse, 0, len(tenants))
	for _, t := range tenants {
		resp = append(resp, marshalTenant(t))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]tenantResponse{"tenants": resp}); err != nil {
		a.logger.Errorf("failed to encode tenants: %v", err)
	}
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.createTenant")
	defer span.End()

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		http.Error(w, "tenant name is required", http.StatusBadRequest)
		return
	}

	ownerID, ok := authentication.GetUserID(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	created, err := a.service.CreateTenant(ctx, body.Name, ownerID)
	if err != nil {
		a.logger.Errorf("failed to create tenant: %v", err)
		a.writeError(w, err)
		return
	}

	a.writeTenant(w, http.StatusCreated, created)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	t, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeTenant(w, http.StatusOK, t)
}

// updateTenant patches name and branding fields. Only fields present in
// the body are applied.
func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateTenant")
	defer span.End()

	var body struct {
		Name           *string `json:"name"`
		PrimaryColor   *string `json:"primary_color"`
		SecondaryColor *string `json:"secondary_color"`
		LogoURL        *string `json:"logo_url"`
		Enabled        *bool   `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	patch := &types.Tenant{ID: chi.URLParam(r, "id")}
	var paths []string
	if body.Name != nil {
		patch.Name = *body.Name
		paths = append(paths, "name")
	}
	if body.PrimaryColor != nil {
		patch.PrimaryColor = *body.PrimaryColor
		paths = append(paths, "primary_color")
	}
	if body.SecondaryColor != nil {
		patch.SecondaryColor = *body.SecondaryColor
		paths = append(paths, "secondary_color")
	}
	if body.LogoURL != nil {
		patch.LogoURL = *body.LogoURL
		paths = append(paths, "logo_url")
	}
	if body.Enabled != nil {
		patch.Enabled = *body.Enabled
		paths = append(paths, "enabled")
	}
	if len(paths) == 0 {
		http.Error(w, "no fields to update", http.StatusBadRequest)
		return
	}

	updated, err := a.service.UpdateTenant(ctx, patch, paths)
	if err != nil {
		a.logger.Errorf("failed to update tenant: %v", err)
		a.writeError(w, err)
		return
	}

	a.writeTenant(w, http.StatusOK, updated)
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.deleteTenant")
	defer span.End()

	if err := a.service.DeleteTenant(ctx, chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to delete tenant: %v", err)
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setTier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setTier")
	defer span.End()

	var body struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tier, err := types.ParseTier(body.Tier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := a.service.SetTier(ctx, chi.URLParam(r, "id"), tier)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeTenant(w, http.StatusOK, updated)
}

func (a *API) listFeatures(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listFeatures")
	defer span.End()

	t, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	features := a.resolver.ListEnabledFeatures(ctx, t)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]types.Feature{"features": features}); err != nil {
		a.logger.Errorf("failed to encode features: %v", err)
	}
}

func (a *API) checkFeature(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.checkFeature")
	defer span.End()

	feature, err := types.ParseFeature(chi.URLParam(r, "feature"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	enabled := a.resolver.IsFeatureEnabled(ctx, t, feature)

	w.Header().Set("Content-Type", "application/json")
	resp := struct {
		Feature types.Feature `json:"feature"`
		Enabled bool          `json:"enabled"`
	}{Feature: feature, Enabled: enabled}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to encode feature check: %v", err)
	}
}

func (a *API) setFeatureOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setFeatureOverride")
	defer span.End()

	feature, err := types.ParseFeature(chi.URLParam(r, "feature"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := a.service.SetFeatureOverride(ctx, chi.URLParam(r, "id"), feature, body.Enabled)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeTenant(w, http.StatusOK, updated)
}

func (a *API) clearFeatureOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.clearFeatureOverride")
	defer span.End()

	feature, err := types.ParseFeature(chi.URLParam(r, "feature"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := a.service.ClearFeatureOverride(ctx, chi.URLParam(r, "id"), feature)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeTenant(w, http.StatusOK, updated)
}

func (a *API) getTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTheme")
	defer span.End()

	t, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	branding := a.resolver.IsFeatureEnabled(ctx, t, types.FeatureCustomBranding)
	tokens := ComputeTheme(t, branding)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokens); err != nil {
		a.logger.Errorf("failed to encode theme: %v", err)
	}
}
