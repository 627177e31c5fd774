// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/gymstack/gym-service/internal/types"
)

type ControllerInterface interface {
	Resolve(ctx context.Context, userID string, role Role) Decision
}

type StorageInterface interface {
	IsOwnerOfAnyTenant(ctx context.Context, profileID string) (bool, error)
	IsStaffOfAnyTenant(ctx context.Context, profileID string) (bool, error)
	IsMemberOfAnyTenant(ctx context.Context, profileID string) (bool, error)
	FirstTenantID(ctx context.Context) (string, error)
	EnrollMember(ctx context.Context, tenantID, profileID string) (*types.Member, error)
}

type AuthzInterface interface {
	AssignTenantMember(ctx context.Context, tenantID, userID string) error
}

// TenantSelector picks the tenant a brand-new member is provisioned into.
// The selection policy is deployment configuration, not business logic.
type TenantSelector interface {
	SelectTenant(ctx context.Context, profileID string) (string, error)
}
