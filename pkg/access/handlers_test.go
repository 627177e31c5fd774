// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"
	trace "go.opentelemetry.io/otel/trace"

	"github.com/gymstack/gym-service/pkg/authentication"
)

func setupAPI(t *testing.T) (*gomock.Controller, *MockControllerInterface, *MockTracingInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)

	mockController := NewMockControllerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockController, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return ctrl, mockController, mockTracer, mux
}

func TestHandleResolve(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		decision       Decision
		expectedStatus int
		expectedBody   resolveResponse
	}{
		{
			name:           "no role required",
			role:           "",
			decision:       DecisionGranted,
			expectedStatus: http.StatusOK,
			expectedBody:   resolveResponse{Decision: "granted", Granted: true},
		},
		{
			name:           "granted",
			role:           "admin",
			decision:       DecisionGranted,
			expectedStatus: http.StatusOK,
			expectedBody:   resolveResponse{Decision: "granted", Granted: true},
		},
		{
			name:           "denied with redirect",
			role:           "member",
			decision:       DecisionDeniedRedirectToAdmin,
			expectedStatus: http.StatusOK,
			expectedBody:   resolveResponse{Decision: "denied_redirect_to_admin", Granted: false, RedirectTo: "/admin"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockController, mockTracer, mux := setupAPI(t)
			defer ctrl.Finish()

			mockTracer.EXPECT().Start(gomock.Any(), "access.API.resolve").DoAndReturn(
				func(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			).AnyTimes()

			role, _ := ParseRole(test.role)
			mockController.EXPECT().Resolve(gomock.Any(), "user-1", role).Return(test.decision)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/access/resolve?role="+test.role, nil)
			req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			var body resolveResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body != test.expectedBody {
				t.Errorf("expected body %+v, got %+v", test.expectedBody, body)
			}
		})
	}
}

func TestHandleResolveUnknownRole(t *testing.T) {
	ctrl, _, mockTracer, mux := setupAPI(t)
	defer ctrl.Finish()

	mockTracer.EXPECT().Start(gomock.Any(), "access.API.resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/access/resolve?role=superuser", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
