// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/gymstack/gym-service/internal/openfga"
)

type AuthorizerInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	FilterObjects(context.Context, string, string, string, []string) ([]string, error)

	AssignTenantOwner(context.Context, string, string) error
	AssignTenantStaff(context.Context, string, string) error
	AssignTenantMember(context.Context, string, string) error
	RemoveTenantOwner(context.Context, string, string) error
	RemoveTenantStaff(context.Context, string, string) error
	RemoveTenantMember(context.Context, string, string) error

	DeleteTenant(context.Context, string) error
	CheckTenantAccess(context.Context, string, string, string) (bool, error)
}
