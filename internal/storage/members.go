// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gymstack/gym-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddStaff(ctx context.Context, tenantID, profileID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddStaff")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate staff ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("staff_memberships").
		Columns("id", "tenant_id", "profile_id", "role").
		Values(id.String(), tenantID, profileID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add staff: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) ListStaffByTenantID(ctx context.Context, tenantID string) ([]*types.StaffMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStaffByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "profile_id", "role", "created_at").
		From("staff_memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var staff []*types.StaffMembership
	for rows.Next() {
		var m types.StaffMembership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.ProfileID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		staff = append(staff, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return staff, nil
}

func (s *Storage) RemoveStaff(ctx context.Context, tenantID, profileID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveStaff")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("staff_memberships").
		Where(sq.Eq{"tenant_id": tenantID, "profile_id": profileID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove staff: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// EnrollMember inserts an enrollment row. The unique constraint on
// (tenant_id, profile_id) maps to ErrDuplicateKey so callers can treat a
// concurrent duplicate enroll as already enrolled.
func (s *Storage) EnrollMember(ctx context.Context, tenantID, profileID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EnrollMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	var m types.Member
	err = s.db.Statement(ctx).
		Insert("members").
		Columns("id", "tenant_id", "profile_id", "active").
		Values(id.String(), tenantID, profileID, true).
		Suffix("RETURNING id, tenant_id, profile_id, active, join_date, created_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.ProfileID, &m.Active, &m.JoinDate, &m.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to enroll member: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetMemberByID(ctx context.Context, tenantID, memberID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMemberByID")
	defer span.End()

	var m types.Member
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "profile_id", "active", "join_date", "created_at").
		From("members").
		Where(sq.Eq{"id": memberID, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.ProfileID, &m.Active, &m.JoinDate, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "profile_id", "active", "join_date", "created_at").
		From("members").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.ID, &m.TenantID, &m.ProfileID, &m.Active, &m.JoinDate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) DeactivateMember(ctx context.Context, tenantID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("members").
		Set("active", false).
		Where(sq.Eq{"id": memberID, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePayment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment ID: %w", err)
	}

	var payment types.Payment
	err = s.db.Statement(ctx).
		Insert("payments").
		Columns("id", "tenant_id", "member_id", "amount_cents", "method", "note", "paid_at").
		Values(id.String(), p.TenantID, p.MemberID, p.AmountCents, p.Method, p.Note, p.PaidAt).
		Suffix("RETURNING id, tenant_id, member_id, amount_cents, method, note, paid_at, created_at").
		QueryRowContext(ctx).
		Scan(&payment.ID, &payment.TenantID, &payment.MemberID, &payment.AmountCents, &payment.Method, &payment.Note, &payment.PaidAt, &payment.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return &payment, nil
}

func (s *Storage) ListPaymentsByTenantID(ctx context.Context, tenantID string) ([]*types.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPaymentsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "member_id", "amount_cents", "method", "note", "paid_at", "created_at").
		From("payments").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("paid_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*types.Payment
	for rows.Next() {
		var p types.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.MemberID, &p.AmountCents, &p.Method, &p.Note, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, nil
}

func (s *Storage) CreateAttendance(ctx context.Context, a *types.Attendance) (*types.Attendance, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAttendance")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate attendance ID: %w", err)
	}

	var att types.Attendance
	err = s.db.Statement(ctx).
		Insert("attendance").
		Columns("id", "tenant_id", "member_id", "checked_in_at").
		Values(id.String(), a.TenantID, a.MemberID, a.CheckedInAt).
		Suffix("RETURNING id, tenant_id, member_id, checked_in_at").
		QueryRowContext(ctx).
		Scan(&att.ID, &att.TenantID, &att.MemberID, &att.CheckedInAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	return &att, nil
}

func (s *Storage) ListAttendanceByMemberID(ctx context.Context, tenantID, memberID string) ([]*types.Attendance, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAttendanceByMemberID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "member_id", "checked_in_at").
		From("attendance").
		Where(sq.Eq{"tenant_id": tenantID, "member_id": memberID}).
		OrderBy("checked_in_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []*types.Attendance
	for rows.Next() {
		var a types.Attendance
		if err := rows.Scan(&a.ID, &a.TenantID, &a.MemberID, &a.CheckedInAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
