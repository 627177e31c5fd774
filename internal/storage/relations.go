// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Relation probes back the access controller. They answer set membership
// only; callers treat an error as relation absent.

func (s *Storage) IsTenantOwner(ctx context.Context, tenantID, profileID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsTenantOwner")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("tenants").
		Where(sq.Eq{"id": tenantID, "owner_id": profileID}))
}

func (s *Storage) IsTenantStaff(ctx context.Context, tenantID, profileID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsTenantStaff")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("staff_memberships").
		Where(sq.Eq{"tenant_id": tenantID, "profile_id": profileID}))
}

func (s *Storage) IsTenantMember(ctx context.Context, tenantID, profileID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsTenantMember")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("members").
		Where(sq.Eq{"tenant_id": tenantID, "profile_id": profileID, "active": true}))
}

func (s *Storage) IsOwnerOfAnyTenant(ctx context.Context, profileID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsOwnerOfAnyTenant")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("tenants").
		Where(sq.Eq{"owner_id": profileID}))
}

func (s *Storage) IsStaffOfAnyTenant(ctx context.Context, profileID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsStaffOfAnyTenant")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("staff_memberships").
		Where(sq.Eq{"profile_id": profileID}))
}

func (s *Storage) IsMemberOfAnyTenant(ctx context.Context, profileID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsMemberOfAnyTenant")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("members").
		Where(sq.Eq{"profile_id": profileID, "active": true}))
}

// FirstTenantID returns the id of the oldest enabled tenant. Used by the
// default auto-provision selection policy.
func (s *Storage) FirstTenantID(ctx context.Context) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FirstTenantID")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select("id").
		From("tenants").
		Where(sq.Eq{"enabled": true}).
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to find first tenant: %w", err)
	}

	return id, nil
}

func (s *Storage) exists(ctx context.Context, query sq.SelectBuilder) (bool, error) {
	var one int
	err := query.Limit(1).QueryRowContext(ctx).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("relation lookup failed: %w", err)
	}
	return true, nil
}
