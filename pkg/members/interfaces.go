// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"
	"time"

	"github.com/gymstack/gym-service/internal/types"
)

type ServiceInterface interface {
	EnrollMember(ctx context.Context, tenantID, profileID string) (*types.Member, error)
	ListMembers(ctx context.Context, tenantID string) ([]*types.Member, error)
	DeactivateMember(ctx context.Context, tenantID, memberID string) error

	AddStaff(ctx context.Context, tenantID, profileID, role string) (string, error)
	ListStaff(ctx context.Context, tenantID string) ([]*types.StaffMembership, error)
	RemoveStaff(ctx context.Context, tenantID, profileID string) error

	RecordPayment(ctx context.Context, tenantID, memberID string, amountCents int64, method, note string, paidAt time.Time) (*types.Payment, error)
	ListPayments(ctx context.Context, tenantID string) ([]*types.Payment, error)

	CheckIn(ctx context.Context, tenantID, memberID string) (*types.Attendance, error)
	ListAttendance(ctx context.Context, tenantID, memberID string) ([]*types.Attendance, error)
}

type StorageInterface interface {
	EnrollMember(ctx context.Context, tenantID, profileID string) (*types.Member, error)
	GetMemberByID(ctx context.Context, tenantID, memberID string) (*types.Member, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Member, error)
	DeactivateMember(ctx context.Context, tenantID, memberID string) error

	AddStaff(ctx context.Context, tenantID, profileID, role string) (string, error)
	ListStaffByTenantID(ctx context.Context, tenantID string) ([]*types.StaffMembership, error)
	RemoveStaff(ctx context.Context, tenantID, profileID string) error

	CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error)
	ListPaymentsByTenantID(ctx context.Context, tenantID string) ([]*types.Payment, error)

	CreateAttendance(ctx context.Context, a *types.Attendance) (*types.Attendance, error)
	ListAttendanceByMemberID(ctx context.Context, tenantID, memberID string) ([]*types.Attendance, error)
}

type AuthzInterface interface {
	AssignTenantMember(ctx context.Context, tenantID, userID string) error
	RemoveTenantMember(ctx context.Context, tenantID, userID string) error
	AssignTenantStaff(ctx context.Context, tenantID, userID string) error
	RemoveTenantStaff(ctx context.Context, tenantID, userID string) error
}
