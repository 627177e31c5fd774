// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gymstack/gym-service/internal/db"
	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/pkg/access"
	"github.com/gymstack/gym-service/pkg/authentication"
	"github.com/gymstack/gym-service/pkg/entitlement"
	"github.com/gymstack/gym-service/pkg/members"
	"github.com/gymstack/gym-service/pkg/metrics"
	"github.com/gymstack/gym-service/pkg/status"
	"github.com/gymstack/gym-service/pkg/tenant"
	"github.com/gymstack/gym-service/pkg/webhooks"
)

func NewRouter(
	resolver entitlement.ResolverInterface,
	controller access.ControllerInterface,
	tenantService tenant.ServiceInterface,
	memberService members.ServiceInterface,
	webhookService webhooks.ServiceInterface,
	webhookSecret string,
	authn *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	tenantAPI := tenant.NewAPI(tenantService, resolver, tracer, monitor, logger)
	memberAPI := members.NewAPI(memberService, tracer, monitor, logger)
	accessMiddleware := access.NewMiddleware(controller, logger)

	// Unauthenticated surface: health, metrics, the billing webhook (shared
	// secret, not bearer token) and theme tokens for the login page.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhookService, webhookSecret, tracer, monitor, logger).RegisterEndpoints(router)
	tenantAPI.RegisterPublicEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authn.Authenticate())
		r.Use(db.TransactionMiddleware(dbClient, logger))

		entitlement.NewAPI(resolver, tracer, monitor, logger).RegisterEndpoints(r)
		access.NewAPI(controller, tracer, monitor, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(accessMiddleware.RequireRole(access.RoleMember))

			memberAPI.RegisterCheckInEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(accessMiddleware.RequireRole(access.RoleAdmin))

			tenantAPI.RegisterEndpoints(r)
			memberAPI.RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
