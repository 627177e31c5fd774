// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"
	"testing"

	gomock "go.uber.org/mock/gomock"
	trace "go.opentelemetry.io/otel/trace"

	"github.com/gymstack/gym-service/internal/storage"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

func setupController(t *testing.T) (*gomock.Controller, *MockStorageInterface, *MockAuthzInterface, *MockTenantSelector, *MockTracingInterface, *MockMonitorInterface, *MockLoggerInterface, *Controller) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockSelector := NewMockTenantSelector(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	controller := NewController(mockStorage, mockAuthz, mockSelector, mockTracer, mockMonitor, mockLogger)

	return ctrl, mockStorage, mockAuthz, mockSelector, mockTracer, mockMonitor, mockLogger, controller
}

func TestControllerResolveUnauthenticated(t *testing.T) {
	ctrl, _, _, _, mockTracer, _, _, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))

	decision := controller.Resolve(ctx, "", RoleAdmin)

	if decision != DecisionDeniedRedirectToLogin {
		t.Errorf("expected decision %s, got %s", DecisionDeniedRedirectToLogin, decision)
	}
}

func TestControllerResolveNoRoleRequired(t *testing.T) {
	ctrl, _, _, _, mockTracer, _, _, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// No storage or selector expectations: a no-role resolution must not
	// touch any relationship lookup.
	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))

	decision := controller.Resolve(ctx, "user-1", RoleNone)

	if decision != DecisionGranted {
		t.Errorf("expected decision %s, got %s", DecisionGranted, decision)
	}
}

func TestControllerResolveNoRoleRequiredUnauthenticated(t *testing.T) {
	ctrl, _, _, _, mockTracer, _, _, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))

	decision := controller.Resolve(ctx, "", RoleNone)

	if decision != DecisionDeniedRedirectToLogin {
		t.Errorf("expected decision %s, got %s", DecisionDeniedRedirectToLogin, decision)
	}
}

func TestControllerResolveUnknownRole(t *testing.T) {
	ctrl, _, _, _, mockTracer, _, mockLogger, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockLogger.EXPECT().Errorf(gomock.Any(), Role("superuser"), "user-1")

	decision := controller.Resolve(ctx, "user-1", Role("superuser"))

	if decision != DecisionDeniedRedirectToLogin {
		t.Errorf("expected decision %s, got %s", DecisionDeniedRedirectToLogin, decision)
	}
}

func TestControllerResolveAdmin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		owner    bool
		ownerErr error
		staff    bool
		staffErr error
		// staffLookup marks whether the staff roster may be consulted at
		// all. Owners must be granted without it.
		staffLookup bool
		expected    Decision
	}{
		{
			name:        "owner granted without staff lookup",
			owner:       true,
			staffLookup: false,
			expected:    DecisionGranted,
		},
		{
			name:        "staff granted",
			owner:       false,
			staff:       true,
			staffLookup: true,
			expected:    DecisionGranted,
		},
		{
			name:        "neither denied",
			owner:       false,
			staff:       false,
			staffLookup: true,
			expected:    DecisionDeniedRedirectToMember,
		},
		{
			name:        "ownership lookup error falls through to staff",
			ownerErr:    fmt.Errorf("connection reset"),
			staff:       true,
			staffLookup: true,
			expected:    DecisionGranted,
		},
		{
			name:        "both lookups error denied",
			ownerErr:    fmt.Errorf("connection reset"),
			staffErr:    fmt.Errorf("connection reset"),
			staffLookup: true,
			expected:    DecisionDeniedRedirectToMember,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockStorage, _, _, mockTracer, _, mockLogger, controller := setupController(t)
			defer ctrl.Finish()

			mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
			mockTracer.EXPECT().Start(ctx, "access.Controller.resolveAdmin").Return(ctx, trace.SpanFromContext(ctx))

			mockStorage.EXPECT().IsOwnerOfAnyTenant(ctx, "user-1").Return(test.owner, test.ownerErr)
			if test.ownerErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), "user-1", test.ownerErr)
			}

			if test.staffLookup {
				mockStorage.EXPECT().IsStaffOfAnyTenant(ctx, "user-1").Return(test.staff, test.staffErr)
				if test.staffErr != nil {
					mockLogger.EXPECT().Errorf(gomock.Any(), "user-1", test.staffErr)
				}
			}

			if test.expected == DecisionDeniedRedirectToMember {
				mockLogger.EXPECT().Infof(gomock.Any(), "user-1")
			}

			decision := controller.Resolve(ctx, "user-1", RoleAdmin)

			if decision != test.expected {
				t.Errorf("expected decision %s, got %s", test.expected, decision)
			}
		})
	}
}

func TestControllerResolveMemberEnrolled(t *testing.T) {
	ctrl, mockStorage, _, _, mockTracer, _, _, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(ctx, "access.Controller.resolveMember").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().IsMemberOfAnyTenant(ctx, "user-1").Return(true, nil)

	decision := controller.Resolve(ctx, "user-1", RoleMember)

	if decision != DecisionGranted {
		t.Errorf("expected decision %s, got %s", DecisionGranted, decision)
	}
}

func TestControllerResolveMemberAutoProvision(t *testing.T) {
	ctrl, mockStorage, mockAuthz, mockSelector, mockTracer, _, mockLogger, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(ctx, "access.Controller.resolveMember").Return(ctx, trace.SpanFromContext(ctx))

	mockStorage.EXPECT().IsMemberOfAnyTenant(ctx, "user-1").Return(false, nil)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", DecisionPendingAutoProvision)
	mockSelector.EXPECT().SelectTenant(ctx, "user-1").Return("tenant-1", nil)
	mockStorage.EXPECT().EnrollMember(ctx, "tenant-1", "user-1").Return(nil, nil)
	mockAuthz.EXPECT().AssignTenantMember(ctx, "tenant-1", "user-1").Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", "tenant-1")

	decision := controller.Resolve(ctx, "user-1", RoleMember)

	if decision != DecisionGranted {
		t.Errorf("expected decision %s, got %s", DecisionGranted, decision)
	}
}

func TestControllerResolveMemberAutoProvisionLostRace(t *testing.T) {
	ctrl, mockStorage, _, mockSelector, mockTracer, _, mockLogger, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(ctx, "access.Controller.resolveMember").Return(ctx, trace.SpanFromContext(ctx))

	mockStorage.EXPECT().IsMemberOfAnyTenant(ctx, "user-1").Return(false, nil)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", DecisionPendingAutoProvision)
	mockSelector.EXPECT().SelectTenant(ctx, "user-1").Return("tenant-1", nil)
	mockStorage.EXPECT().EnrollMember(ctx, "tenant-1", "user-1").Return(nil, storage.ErrDuplicateKey)

	decision := controller.Resolve(ctx, "user-1", RoleMember)

	if decision != DecisionGranted {
		t.Errorf("expected decision %s, got %s", DecisionGranted, decision)
	}
}

func TestControllerResolveMemberSelectorError(t *testing.T) {
	ctrl, mockStorage, _, mockSelector, mockTracer, _, mockLogger, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	selErr := fmt.Errorf("no tenant available for provisioning")

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(ctx, "access.Controller.resolveMember").Return(ctx, trace.SpanFromContext(ctx))

	mockStorage.EXPECT().IsMemberOfAnyTenant(ctx, "user-1").Return(false, nil)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", DecisionPendingAutoProvision)
	mockSelector.EXPECT().SelectTenant(ctx, "user-1").Return("", selErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), "user-1", selErr)

	decision := controller.Resolve(ctx, "user-1", RoleMember)

	if decision != DecisionDeniedRedirectToAdmin {
		t.Errorf("expected decision %s, got %s", DecisionDeniedRedirectToAdmin, decision)
	}
}

func TestControllerResolveMemberEnrollError(t *testing.T) {
	ctrl, mockStorage, _, mockSelector, mockTracer, _, mockLogger, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	enrollErr := fmt.Errorf("connection reset")

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(ctx, "access.Controller.resolveMember").Return(ctx, trace.SpanFromContext(ctx))

	mockStorage.EXPECT().IsMemberOfAnyTenant(ctx, "user-1").Return(false, nil)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", DecisionPendingAutoProvision)
	mockSelector.EXPECT().SelectTenant(ctx, "user-1").Return("tenant-1", nil)
	mockStorage.EXPECT().EnrollMember(ctx, "tenant-1", "user-1").Return(nil, enrollErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), "user-1", "tenant-1", enrollErr)

	decision := controller.Resolve(ctx, "user-1", RoleMember)

	if decision != DecisionDeniedRedirectToAdmin {
		t.Errorf("expected decision %s, got %s", DecisionDeniedRedirectToAdmin, decision)
	}
}

func TestControllerResolveMemberMirrorFailureStillGrants(t *testing.T) {
	ctrl, mockStorage, mockAuthz, mockSelector, mockTracer, _, mockLogger, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mirrorErr := fmt.Errorf("openfga unavailable")

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(ctx, "access.Controller.resolveMember").Return(ctx, trace.SpanFromContext(ctx))

	mockStorage.EXPECT().IsMemberOfAnyTenant(ctx, "user-1").Return(false, nil)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", DecisionPendingAutoProvision)
	mockSelector.EXPECT().SelectTenant(ctx, "user-1").Return("tenant-1", nil)
	mockStorage.EXPECT().EnrollMember(ctx, "tenant-1", "user-1").Return(nil, nil)
	mockAuthz.EXPECT().AssignTenantMember(ctx, "tenant-1", "user-1").Return(mirrorErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), "user-1", "tenant-1", mirrorErr)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", "tenant-1")

	decision := controller.Resolve(ctx, "user-1", RoleMember)

	if decision != DecisionGranted {
		t.Errorf("expected decision %s, got %s", DecisionGranted, decision)
	}
}

func TestControllerResolveMemberLookupErrorProvisions(t *testing.T) {
	ctrl, mockStorage, _, mockSelector, mockTracer, _, mockLogger, controller := setupController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	lookupErr := fmt.Errorf("connection reset")

	mockTracer.EXPECT().Start(ctx, "access.Controller.Resolve").Return(ctx, trace.SpanFromContext(ctx))
	mockTracer.EXPECT().Start(ctx, "access.Controller.resolveMember").Return(ctx, trace.SpanFromContext(ctx))

	mockStorage.EXPECT().IsMemberOfAnyTenant(ctx, "user-1").Return(false, lookupErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), "user-1", lookupErr)
	mockLogger.EXPECT().Infof(gomock.Any(), "user-1", DecisionPendingAutoProvision)
	mockSelector.EXPECT().SelectTenant(ctx, "user-1").Return("tenant-1", nil)
	mockStorage.EXPECT().EnrollMember(ctx, "tenant-1", "user-1").Return(nil, storage.ErrDuplicateKey)

	decision := controller.Resolve(ctx, "user-1", RoleMember)

	if decision != DecisionGranted {
		t.Errorf("expected decision %s, got %s", DecisionGranted, decision)
	}
}
