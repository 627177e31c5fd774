// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/gymstack/gym-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListTenantsByOwnerID(ctx context.Context, ownerID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	SetTenantTier(ctx context.Context, id string, tier types.SubscriptionTier) error
	SetFeatureOverride(ctx context.Context, id string, feature types.Feature, enabled bool) error
	ClearFeatureOverride(ctx context.Context, id string, feature types.Feature) error
	DeleteTenant(ctx context.Context, id string) error

	IsTenantOwner(ctx context.Context, tenantID, profileID string) (bool, error)
	IsTenantStaff(ctx context.Context, tenantID, profileID string) (bool, error)
	IsTenantMember(ctx context.Context, tenantID, profileID string) (bool, error)
	IsOwnerOfAnyTenant(ctx context.Context, profileID string) (bool, error)
	IsStaffOfAnyTenant(ctx context.Context, profileID string) (bool, error)
	IsMemberOfAnyTenant(ctx context.Context, profileID string) (bool, error)
	FirstTenantID(ctx context.Context) (string, error)

	AddStaff(ctx context.Context, tenantID, profileID, role string) (string, error)
	ListStaffByTenantID(ctx context.Context, tenantID string) ([]*types.StaffMembership, error)
	RemoveStaff(ctx context.Context, tenantID, profileID string) error

	EnrollMember(ctx context.Context, tenantID, profileID string) (*types.Member, error)
	GetMemberByID(ctx context.Context, tenantID, memberID string) (*types.Member, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Member, error)
	DeactivateMember(ctx context.Context, tenantID, memberID string) error

	CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error)
	ListPaymentsByTenantID(ctx context.Context, tenantID string) ([]*types.Payment, error)

	CreateAttendance(ctx context.Context, a *types.Attendance) (*types.Attendance, error)
	ListAttendanceByMemberID(ctx context.Context, tenantID, memberID string) ([]*types.Attendance, error)
}
