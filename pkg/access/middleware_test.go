// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gym-service/pkg/authentication"
)

func TestMiddlewareRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		decision       Decision
		expectedStatus int
		expectedNext   bool
	}{
		{
			name:           "granted passes through",
			decision:       DecisionGranted,
			expectedStatus: http.StatusOK,
			expectedNext:   true,
		},
		{
			name:           "unauthenticated gets 401",
			decision:       DecisionDeniedRedirectToLogin,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "denied gets 403",
			decision:       DecisionDeniedRedirectToMember,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockController := NewMockControllerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockController.EXPECT().Resolve(gomock.Any(), "user-1", RoleAdmin).Return(test.decision)

			nextCalled := false
			mux := chi.NewMux()
			mux.Group(func(r chi.Router) {
				r.Use(NewMiddleware(mockController, mockLogger).RequireRole(RoleAdmin))
				r.Get("/admin/dashboard", func(w http.ResponseWriter, r *http.Request) {
					nextCalled = true
					w.WriteHeader(http.StatusOK)
				})
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
			if nextCalled != test.expectedNext {
				t.Errorf("expected next handler called to be %v, got %v", test.expectedNext, nextCalled)
			}

			if !test.expectedNext {
				var body resolveResponse
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if body.Granted {
					t.Error("expected denial body to report not granted")
				}
				if body.RedirectTo != test.decision.RedirectPath() {
					t.Errorf("expected redirect %q, got %q", test.decision.RedirectPath(), body.RedirectTo)
				}
			}
		})
	}
}

func TestMiddlewareRequireRoleNoPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockController := NewMockControllerInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockController.EXPECT().Resolve(gomock.Any(), "", RoleMember).Return(DecisionDeniedRedirectToLogin)

	mux := chi.NewMux()
	mux.Group(func(r chi.Router) {
		r.Use(NewMiddleware(mockController, mockLogger).RequireRole(RoleMember))
		r.Get("/member/home", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/member/home", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
