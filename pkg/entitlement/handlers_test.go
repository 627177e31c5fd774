// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/gymstack/gym-service/internal/types"
)

func setupAPI(t *testing.T) (*chi.Mux, *MockResolverInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockResolver := NewMockResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockResolver, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mux, mockResolver
}

func TestListPlansHandler(t *testing.T) {
	mux, mockResolver := setupAPI(t)

	mockResolver.EXPECT().Plans(gomock.Any()).Return(DefaultRegistry().Ordered())

	req := httptest.NewRequest(http.MethodGet, "/api/v0/plans", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Plans []*Plan `json:"plans"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Plans) != 4 {
		t.Errorf("expected 4 plans, got %d", len(body.Plans))
	}
}

func TestCheapestPlanHandler(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		setupMocks   func(*MockResolverInterface)
		expectedCode int
	}{
		{
			name:  "found",
			query: "?feature=staff_management",
			setupMocks: func(m *MockResolverInterface) {
				plan, _ := DefaultRegistry().Get(types.TierBasic)
				m.EXPECT().FindCheapestPlanWithFeature(gomock.Any(), types.FeatureStaffManagement).Return(plan, true)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "no plan carries it",
			query: "?feature=api_access",
			setupMocks: func(m *MockResolverInterface) {
				m.EXPECT().FindCheapestPlanWithFeature(gomock.Any(), types.FeatureAPIAccess).Return(nil, false)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "unknown feature",
			query:        "?feature=teleportation",
			setupMocks:   func(m *MockResolverInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing feature param",
			query:        "",
			setupMocks:   func(m *MockResolverInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, mockResolver := setupAPI(t)
			tc.setupMocks(mockResolver)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/plans/cheapest"+tc.query, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Errorf("expected %d, got %d", tc.expectedCode, w.Code)
			}
		})
	}
}
