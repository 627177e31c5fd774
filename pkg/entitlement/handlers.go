// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
)

type API struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(resolver ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.resolver = resolver

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/plans", a.listPlans)
	mux.Get("/api/v0/plans/cheapest", a.cheapestPlan)
}

func (a *API) listPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlement.API.listPlans")
	defer span.End()

	plans := a.resolver.Plans(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"plans": plans}); err != nil {
		a.logger.Errorf("failed to encode plans: %v", err)
	}
}

func (a *API) cheapestPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlement.API.cheapestPlan")
	defer span.End()

	feature, err := types.ParseFeature(r.URL.Query().Get("feature"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, ok := a.resolver.FindCheapestPlanWithFeature(ctx, feature)
	if !ok {
		http.Error(w, "no plan carries the feature", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"plan": plan}); err != nil {
		a.logger.Errorf("failed to encode plan: %v", err)
	}
}
