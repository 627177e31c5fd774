// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/pkg/authentication"
)

type API struct {
	controller ControllerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(controller ControllerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.controller = controller

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/access/resolve", a.resolve)
}

type resolveResponse struct {
	Decision   string `json:"decision"`
	Granted    bool   `json:"granted"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.resolve")
	defer span.End()

	role, err := ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, _ := authentication.GetUserID(ctx)
	decision := a.controller.Resolve(ctx, userID, role)

	w.Header().Set("Content-Type", "application/json")
	resp := resolveResponse{
		Decision:   decision.String(),
		Granted:    decision.Granted(),
		RedirectTo: decision.RedirectPath(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to encode decision: %v", err)
	}
}
