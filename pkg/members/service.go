// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/storage"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
)

var (
	ErrAlreadyEnrolled = errors.New("profile is already enrolled in this tenant")
	ErrMemberInactive  = errors.New("member is deactivated")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// EnrollMember adds a profile to the tenant's member roster and mirrors the
// relation into the authorization store.
func (s *Service) EnrollMember(ctx context.Context, tenantID, profileID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.EnrollMember")
	defer span.End()

	member, err := s.storage.EnrollMember(ctx, tenantID, profileID)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("failed to enroll member: %w", err)
	}

	if err := s.authz.AssignTenantMember(ctx, tenantID, profileID); err != nil {
		// The relational row is authoritative, the tuple mirror catches up.
		s.logger.Errorf("failed to mirror member relation for profile %s in tenant %s: %v", profileID, tenantID, err)
	}

	return member, nil
}

func (s *Service) ListMembers(ctx context.Context, tenantID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByTenantID(ctx, tenantID)
}

// DeactivateMember keeps the row and its payment and attendance history but
// drops the member relation from the authorization store.
func (s *Service) DeactivateMember(ctx context.Context, tenantID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.DeactivateMember")
	defer span.End()

	member, err := s.storage.GetMemberByID(ctx, tenantID, memberID)
	if err != nil {
		return err
	}

	if err := s.storage.DeactivateMember(ctx, tenantID, memberID); err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}

	if err := s.authz.RemoveTenantMember(ctx, tenantID, member.ProfileID); err != nil {
		s.logger.Errorf("failed to remove member relation for profile %s in tenant %s: %v", member.ProfileID, tenantID, err)
	}

	return nil
}

func (s *Service) AddStaff(ctx context.Context, tenantID, profileID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.AddStaff")
	defer span.End()

	id, err := s.storage.AddStaff(ctx, tenantID, profileID, role)
	if err != nil {
		return "", err
	}

	if err := s.authz.AssignTenantStaff(ctx, tenantID, profileID); err != nil {
		s.logger.Errorf("failed to mirror staff relation for profile %s in tenant %s: %v", profileID, tenantID, err)
	}

	return id, nil
}

func (s *Service) ListStaff(ctx context.Context, tenantID string) ([]*types.StaffMembership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListStaff")
	defer span.End()

	return s.storage.ListStaffByTenantID(ctx, tenantID)
}

func (s *Service) RemoveStaff(ctx context.Context, tenantID, profileID string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.RemoveStaff")
	defer span.End()

	if err := s.storage.RemoveStaff(ctx, tenantID, profileID); err != nil {
		return err
	}

	if err := s.authz.RemoveTenantStaff(ctx, tenantID, profileID); err != nil {
		s.logger.Errorf("failed to remove staff relation for profile %s in tenant %s: %v", profileID, tenantID, err)
	}

	return nil
}

// RecordPayment books a payment against an active member. Amounts are
// integral cents, there is no gateway behind this.
func (s *Service) RecordPayment(ctx context.Context, tenantID, memberID string, amountCents int64, method, note string, paidAt time.Time) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.RecordPayment")
	defer span.End()

	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.storage.GetMemberByID(ctx, tenantID, memberID); err != nil {
		return nil, err
	}

	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	payment, err := s.storage.CreatePayment(ctx, &types.Payment{
		TenantID:    tenantID,
		MemberID:    memberID,
		AmountCents: amountCents,
		Method:      method,
		Note:        note,
		PaidAt:      paidAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Infof("recorded payment of %d cents for member %s in tenant %s", amountCents, memberID, tenantID)
	return payment, nil
}

func (s *Service) ListPayments(ctx context.Context, tenantID string) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListPayments")
	defer span.End()

	return s.storage.ListPaymentsByTenantID(ctx, tenantID)
}

// CheckIn records an attendance event. Deactivated members cannot check in.
func (s *Service) CheckIn(ctx context.Context, tenantID, memberID string) (*types.Attendance, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.CheckIn")
	defer span.End()

	member, err := s.storage.GetMemberByID(ctx, tenantID, memberID)
	if err != nil {
		return nil, err
	}
	if !member.Active {
		return nil, ErrMemberInactive
	}

	return s.storage.CreateAttendance(ctx, &types.Attendance{
		TenantID:    tenantID,
		MemberID:    memberID,
		CheckedInAt: time.Now().UTC(),
	})
}

func (s *Service) ListAttendance(ctx context.Context, tenantID, memberID string) ([]*types.Attendance, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListAttendance")
	defer span.End()

	if _, err := s.storage.GetMemberByID(ctx, tenantID, memberID); err != nil {
		return nil, err
	}

	return s.storage.ListAttendanceByMemberID(ctx, tenantID, memberID)
}

func NewService(storage StorageInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
