// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/gymstack/gym-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name, ownerID string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
	SetTier(ctx context.Context, id string, tier types.SubscriptionTier) (*types.Tenant, error)
	SetFeatureOverride(ctx context.Context, id string, feature types.Feature, enabled bool) (*types.Tenant, error)
	ClearFeatureOverride(ctx context.Context, id string, feature types.Feature) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	SetTenantTier(ctx context.Context, id string, tier types.SubscriptionTier) error
	SetFeatureOverride(ctx context.Context, id string, feature types.Feature, enabled bool) error
	ClearFeatureOverride(ctx context.Context, id string, feature types.Feature) error
	DeleteTenant(ctx context.Context, id string) error
}

type AuthzInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID, userID string) error
	DeleteTenant(ctx context.Context, tenantID string) error
}
