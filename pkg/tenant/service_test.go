// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"
	"testing"

	trace "go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gym-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_resolver.go -source=../entitlement/interfaces.go

func setupService(t *testing.T) (*gomock.Controller, *MockStorageInterface, *MockAuthzInterface, *MockTracingInterface, *MockLoggerInterface, *Service) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	service := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

	return ctrl, mockStorage, mockAuthz, mockTracer, mockLogger, service
}

func TestServiceCreateTenant(t *testing.T) {
	ctrl, mockStorage, mockAuthz, mockTracer, _, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	created := &types.Tenant{ID: "tenant-1", Name: "Iron Temple", OwnerID: "user-1", Tier: types.TierFree, Enabled: true}

	mockTracer.EXPECT().Start(ctx, "tenant.Service.CreateTenant").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().CreateTenant(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, in *types.Tenant) (*types.Tenant, error) {
			if in.Name != "Iron Temple" || in.OwnerID != "user-1" {
				t.Errorf("unexpected tenant payload: %+v", in)
			}
			if in.Tier != types.TierFree {
				t.Errorf("expected new tenants on tier %s, got %s", types.TierFree, in.Tier)
			}
			if !in.Enabled {
				t.Error("expected new tenants to be enabled")
			}
			return created, nil
		},
	)
	mockAuthz.EXPECT().AssignTenantOwner(ctx, "tenant-1", "user-1").Return(nil)

	got, err := service.CreateTenant(ctx, "Iron Temple", "user-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got != created {
		t.Errorf("expected tenant %+v, got %+v", created, got)
	}
}

func TestServiceCreateTenantMirrorFailureStillCreates(t *testing.T) {
	ctrl, mockStorage, mockAuthz, mockTracer, mockLogger, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	created := &types.Tenant{ID: "tenant-1", Name: "Iron Temple", OwnerID: "user-1", Tier: types.TierFree, Enabled: true}
	mirrorErr := fmt.Errorf("openfga unavailable")

	mockTracer.EXPECT().Start(ctx, "tenant.Service.CreateTenant").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().CreateTenant(ctx, gomock.Any()).Return(created, nil)
	mockAuthz.EXPECT().AssignTenantOwner(ctx, "tenant-1", "user-1").Return(mirrorErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), "tenant-1", mirrorErr)

	got, err := service.CreateTenant(ctx, "Iron Temple", "user-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got != created {
		t.Errorf("expected tenant %+v, got %+v", created, got)
	}
}

func TestServiceSetTier(t *testing.T) {
	tests := []struct {
		name    string
		tier    types.SubscriptionTier
		wantErr bool
	}{
		{name: "upgrade to pro", tier: types.TierPro},
		{name: "downgrade to free", tier: types.TierFree},
		{name: "unknown tier rejected", tier: types.SubscriptionTier("platinum"), wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, mockStorage, _, mockTracer, mockLogger, service := setupService(t)
			defer ctrl.Finish()

			ctx := context.Background()

			mockTracer.EXPECT().Start(ctx, "tenant.Service.SetTier").Return(ctx, trace.SpanFromContext(ctx))

			if !test.wantErr {
				// Overrides stay in place across tier changes.
				updated := &types.Tenant{
					ID:             "tenant-1",
					Tier:           test.tier,
					CustomFeatures: map[types.Feature]bool{types.FeatureAPIAccess: true},
				}
				mockStorage.EXPECT().SetTenantTier(ctx, "tenant-1", test.tier).Return(nil)
				mockStorage.EXPECT().GetTenantByID(ctx, "tenant-1").Return(updated, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), "tenant-1", test.tier)
			}

			got, err := service.SetTier(ctx, "tenant-1", test.tier)

			if test.wantErr {
				if err == nil {
					t.Errorf("expected error for tier %q", test.tier)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got.Tier != test.tier {
				t.Errorf("expected tier %s, got %s", test.tier, got.Tier)
			}
			if enabled, ok := got.CustomFeatures[types.FeatureAPIAccess]; !ok || !enabled {
				t.Error("expected feature override to survive the tier change")
			}
		})
	}
}

func TestServiceSetFeatureOverride(t *testing.T) {
	ctrl, mockStorage, _, mockTracer, mockLogger, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	updated := &types.Tenant{
		ID:             "tenant-1",
		Tier:           types.TierFree,
		CustomFeatures: map[types.Feature]bool{types.FeatureReportsAdvanced: true},
	}

	mockTracer.EXPECT().Start(ctx, "tenant.Service.SetFeatureOverride").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().SetFeatureOverride(ctx, "tenant-1", types.FeatureReportsAdvanced, true).Return(nil)
	mockStorage.EXPECT().GetTenantByID(ctx, "tenant-1").Return(updated, nil)
	mockLogger.EXPECT().Infof(gomock.Any(), "tenant-1", types.FeatureReportsAdvanced, true)

	got, err := service.SetFeatureOverride(ctx, "tenant-1", types.FeatureReportsAdvanced, true)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if enabled := got.CustomFeatures[types.FeatureReportsAdvanced]; !enabled {
		t.Error("expected override to be recorded")
	}
}

func TestServiceSetFeatureOverrideUnknownFeature(t *testing.T) {
	ctrl, _, _, mockTracer, _, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "tenant.Service.SetFeatureOverride").Return(ctx, trace.SpanFromContext(ctx))

	if _, err := service.SetFeatureOverride(ctx, "tenant-1", types.Feature("time_travel"), true); err == nil {
		t.Error("expected error for unknown feature")
	}
}

func TestServiceClearFeatureOverride(t *testing.T) {
	ctrl, mockStorage, _, mockTracer, _, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	updated := &types.Tenant{ID: "tenant-1", Tier: types.TierFree}

	mockTracer.EXPECT().Start(ctx, "tenant.Service.ClearFeatureOverride").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().ClearFeatureOverride(ctx, "tenant-1", types.FeatureReportsAdvanced).Return(nil)
	mockStorage.EXPECT().GetTenantByID(ctx, "tenant-1").Return(updated, nil)

	got, err := service.ClearFeatureOverride(ctx, "tenant-1", types.FeatureReportsAdvanced)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, ok := got.CustomFeatures[types.FeatureReportsAdvanced]; ok {
		t.Error("expected override to be gone")
	}
}

func TestServiceDeleteTenant(t *testing.T) {
	ctrl, mockStorage, mockAuthz, mockTracer, _, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer.EXPECT().Start(ctx, "tenant.Service.DeleteTenant").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().DeleteTenant(ctx, "tenant-1").Return(nil)
	mockAuthz.EXPECT().DeleteTenant(ctx, "tenant-1").Return(nil)

	if err := service.DeleteTenant(ctx, "tenant-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestServiceDeleteTenantAuthzFailureTolerated(t *testing.T) {
	ctrl, mockStorage, mockAuthz, mockTracer, mockLogger, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	authzErr := fmt.Errorf("openfga unavailable")

	mockTracer.EXPECT().Start(ctx, "tenant.Service.DeleteTenant").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().DeleteTenant(ctx, "tenant-1").Return(nil)
	mockAuthz.EXPECT().DeleteTenant(ctx, "tenant-1").Return(authzErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), "tenant-1", authzErr)

	if err := service.DeleteTenant(ctx, "tenant-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestServiceUpdateTenant(t *testing.T) {
	ctrl, mockStorage, _, mockTracer, _, service := setupService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	patch := &types.Tenant{ID: "tenant-1", Name: "Renamed Gym"}
	updated := &types.Tenant{ID: "tenant-1", Name: "Renamed Gym", Tier: types.TierBasic}

	mockTracer.EXPECT().Start(ctx, "tenant.Service.UpdateTenant").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().UpdateTenant(ctx, patch, []string{"name"}).Return(nil)
	mockStorage.EXPECT().GetTenantByID(ctx, "tenant-1").Return(updated, nil)

	got, err := service.UpdateTenant(ctx, patch, []string{"name"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got.Name != "Renamed Gym" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
}
