// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/pkg/authentication"
)

// Middleware guards route groups with a role resolution. The role each
// group requires is fixed at registration time.
type Middleware struct {
	controller ControllerInterface
	logger     logging.LoggerInterface
}

func NewMiddleware(controller ControllerInterface, logger logging.LoggerInterface) *Middleware {
	mdw := new(Middleware)

	mdw.controller = controller
	mdw.logger = logger

	return mdw
}

// RequireRole denies the request unless the principal resolves to the
// given role. Unauthenticated callers get 401, everything else 403 with
// the redirect target in the body.
func (mdw *Middleware) RequireRole(role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, _ := authentication.GetUserID(ctx)
			decision := mdw.controller.Resolve(ctx, userID, role)

			if decision.Granted() {
				next.ServeHTTP(w, r)
				return
			}

			status := http.StatusForbidden
			if decision == DecisionDeniedRedirectToLogin {
				status = http.StatusUnauthorized
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(resolveResponse{
				Decision:   decision.String(),
				Granted:    false,
				RedirectTo: decision.RedirectPath(),
			})
		})
	}
}
