// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

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
)

func setupAPI(t *testing.T) (*gomock.Controller, *MockServiceInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	mux := chi.NewMux()
	api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)
	api.RegisterEndpoints(mux)
	api.RegisterCheckInEndpoints(mux)

	return ctrl, mockService, mux
}

func TestHandleEnrollMember(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectCall     bool
	}{
		{name: "enrolled", body: `{"profile_id":"user-1"}`, expectedStatus: http.StatusCreated, expectCall: true},
		{name: "already enrolled", body: `{"profile_id":"user-1"}`, serviceErr: ErrAlreadyEnrolled, expectedStatus: http.StatusConflict, expectCall: true},
		{name: "unknown tenant", body: `{"profile_id":"user-1"}`, serviceErr: storage.ErrForeignKeyViolation, expectedStatus: http.StatusUnprocessableEntity, expectCall: true},
		{name: "missing profile", body: `{}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid body", body: `{`, expectedStatus: http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockService, mux := setupAPI(t)
			defer ctrl.Finish()

			if test.expectCall {
				var member *types.Member
				if test.serviceErr == nil {
					member = &types.Member{ID: "member-1", TenantID: "tenant-1", ProfileID: "user-1", Active: true}
				}
				mockService.EXPECT().EnrollMember(gomock.Any(), "tenant-1", "user-1").Return(member, test.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/members", strings.NewReader(test.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleListMembers(t *testing.T) {
	ctrl, mockService, mux := setupAPI(t)
	defer ctrl.Finish()

	members := []*types.Member{
		{ID: "member-1", TenantID: "tenant-1", ProfileID: "user-1", Active: true},
		{ID: "member-2", TenantID: "tenant-1", ProfileID: "user-2", Active: false},
	}
	mockService.EXPECT().ListMembers(gomock.Any(), "tenant-1").Return(members, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/members", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body struct {
		Members []memberResponse `json:"members"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(body.Members))
	}
}

func TestHandleDeactivateMember(t *testing.T) {
	ctrl, mockService, mux := setupAPI(t)
	defer ctrl.Finish()

	mockService.EXPECT().DeactivateMember(gomock.Any(), "tenant-1", "member-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/members/member-1/deactivate", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}

func TestHandleRecordPayment(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectCall     bool
	}{
		{name: "recorded", body: `{"member_id":"member-1","amount_cents":99900,"method":"cash"}`, expectedStatus: http.StatusCreated, expectCall: true},
		{name: "invalid amount", body: `{"member_id":"member-1","amount_cents":0}`, serviceErr: ErrInvalidAmount, expectedStatus: http.StatusUnprocessableEntity, expectCall: true},
		{name: "unknown member", body: `{"member_id":"missing","amount_cents":500}`, serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound, expectCall: true},
		{name: "missing member id", body: `{"amount_cents":500}`, expectedStatus: http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockService, mux := setupAPI(t)
			defer ctrl.Finish()

			if test.expectCall {
				var payment *types.Payment
				if test.serviceErr == nil {
					payment = &types.Payment{ID: "payment-1", TenantID: "tenant-1", AmountCents: 99900}
				}
				mockService.EXPECT().RecordPayment(gomock.Any(), "tenant-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(payment, test.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/payments", strings.NewReader(test.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleCheckIn(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "checked in", expectedStatus: http.StatusCreated},
		{name: "inactive member", serviceErr: ErrMemberInactive, expectedStatus: http.StatusUnprocessableEntity},
		{name: "unknown member", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockService, mux := setupAPI(t)
			defer ctrl.Finish()

			var att *types.Attendance
			if test.serviceErr == nil {
				att = &types.Attendance{ID: "att-1", TenantID: "tenant-1", MemberID: "member-1"}
			}
			mockService.EXPECT().CheckIn(gomock.Any(), "tenant-1", "member-1").Return(att, test.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/checkins", strings.NewReader(`{"member_id":"member-1"}`))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleListAttendance(t *testing.T) {
	ctrl, mockService, mux := setupAPI(t)
	defer ctrl.Finish()

	records := []*types.Attendance{{ID: "att-1", TenantID: "tenant-1", MemberID: "member-1"}}
	mockService.EXPECT().ListAttendance(gomock.Any(), "tenant-1", "member-1").Return(records, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/members/member-1/attendance", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestHandleAddStaff(t *testing.T) {
	ctrl, mockService, mux := setupAPI(t)
	defer ctrl.Finish()

	mockService.EXPECT().AddStaff(gomock.Any(), "tenant-1", "user-2", "manager").Return("staff-1", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/staff", strings.NewReader(`{"profile_id":"user-2","role":"manager"}`))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}
}

func TestHandleAddStaffDuplicate(t *testing.T) {
	ctrl, mockService, mux := setupAPI(t)
	defer ctrl.Finish()

	mockService.EXPECT().AddStaff(gomock.Any(), "tenant-1", "user-2", "trainer").Return("", storage.ErrDuplicateKey)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/staff", strings.NewReader(`{"profile_id":"user-2"}`))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rr.Code)
	}
}

func TestHandleRemoveStaff(t *testing.T) {
	ctrl, mockService, mux := setupAPI(t)
	defer ctrl.Finish()

	mockService.EXPECT().RemoveStaff(gomock.Any(), "tenant-1", "user-2").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/tenant-1/staff/user-2", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
