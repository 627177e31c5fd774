// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gym-service/internal/storage"
)

func setupAPI(t *testing.T) (*gomock.Controller, *MockServiceInterface, *MockLoggerInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, "hook-secret", mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return ctrl, mockService, mockLogger, mux
}

func TestHandleBilling(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		body           string
		serviceErr     error
		expectedStatus int
		expectCall     bool
	}{
		{name: "applied", secret: "hook-secret", body: `{"event_id":"evt-1","tenant_id":"tenant-1","tier":"pro"}`, expectedStatus: http.StatusOK, expectCall: true},
		{name: "invalid event", secret: "hook-secret", body: `{"event_id":"evt-1","tenant_id":"tenant-1","tier":"platinum"}`, serviceErr: ErrInvalidEvent, expectedStatus: http.StatusBadRequest, expectCall: true},
		{name: "unknown tenant", secret: "hook-secret", body: `{"event_id":"evt-1","tenant_id":"missing","tier":"pro"}`, serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound, expectCall: true},
		{name: "invalid body", secret: "hook-secret", body: `{`, expectedStatus: http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockService, _, mux := setupAPI(t)
			defer ctrl.Finish()

			if test.expectCall {
				mockService.EXPECT().HandleTierChange(gomock.Any(), gomock.Any()).Return(test.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/billing", strings.NewReader(test.body))
			req.Header.Set(SecretHeader, test.secret)
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleBillingBadSecret(t *testing.T) {
	ctrl, _, mockLogger, mux := setupAPI(t)
	defer ctrl.Finish()

	mockLogger.EXPECT().Warnf("billing webhook called with bad secret from %s", gomock.Any())

	req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/billing", strings.NewReader(`{}`))
	req.Header.Set(SecretHeader, "wrong")
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
