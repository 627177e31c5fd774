// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gymstack/gym-service/internal/db"
	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ StorageInterface = (*Storage)(nil)

const tenantColumns = "id, name, owner_id, subscription_tier, custom_features, primary_color, secondary_color, logo_url, enabled, created_at"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// scanTenant decodes a tenant row. custom_features is a nullable jsonb
// column, a NULL map means no overrides.
func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	var tier string
	var overrides []byte

	err := row.Scan(
		&t.ID, &t.Name, &t.OwnerID, &tier, &overrides,
		&t.PrimaryColor, &t.SecondaryColor, &t.LogoURL,
		&t.Enabled, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Tier, err = types.ParseTier(tier)
	if err != nil {
		return nil, fmt.Errorf("tenant %s carries invalid tier: %w", t.ID, err)
	}

	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &t.CustomFeatures); err != nil {
			return nil, fmt.Errorf("tenant %s carries invalid overrides: %w", t.ID, err)
		}
	}

	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	tier := t.Tier
	if tier == "" {
		tier = types.TierFree
	}

	var overrides []byte
	if t.CustomFeatures != nil {
		overrides, err = json.Marshal(t.CustomFeatures)
		if err != nil {
			return nil, fmt.Errorf("failed to encode overrides: %w", err)
		}
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "owner_id", "subscription_tier", "custom_features", "primary_color", "secondary_color", "logo_url", "enabled").
		Values(id.String(), t.Name, t.OwnerID, string(tier), overrides, t.PrimaryColor, t.SecondaryColor, t.LogoURL, t.Enabled).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx)

	newTenant, err := scanTenant(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	return s.listTenants(ctx, sq.Eq{})
}

func (s *Storage) ListTenantsByOwnerID(ctx context.Context, ownerID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByOwnerID")
	defer span.End()

	return s.listTenants(ctx, sq.Eq{"owner_id": ownerID})
}

func (s *Storage) listTenants(ctx context.Context, where sq.Eq) ([]*types.Tenant, error) {
	query := s.db.Statement(ctx).
		Select(tenantColumns).
		From("tenants").
		OrderBy("created_at ASC")

	if len(where) > 0 {
		query = query.Where(where)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates only the fields named in paths, PATCH semantics.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "primary_color":
			updateMap["primary_color"] = tenant.PrimaryColor
		case "secondary_color":
			updateMap["secondary_color"] = tenant.SecondaryColor
		case "logo_url":
			updateMap["logo_url"] = tenant.LogoURL
		case "enabled":
			updateMap["enabled"] = tenant.Enabled
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
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

func (s *Storage) SetTenantTier(ctx context.Context, id string, tier types.SubscriptionTier) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantTier")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("subscription_tier", string(tier)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant tier: %w", err)
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

// SetFeatureOverride writes one entry into the jsonb override map, creating
// the map when the column is still NULL.
func (s *Storage) SetFeatureOverride(ctx context.Context, id string, feature types.Feature, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetFeatureOverride")
	defer span.End()

	value, err := json.Marshal(enabled)
	if err != nil {
		return fmt.Errorf("failed to encode override value: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("custom_features", sq.Expr(
			"jsonb_set(COALESCE(custom_features, '{}'::jsonb), ARRAY[?], ?::jsonb)",
			string(feature), string(value),
		)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set feature override: %w", err)
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

func (s *Storage) ClearFeatureOverride(ctx context.Context, id string, feature types.Feature) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearFeatureOverride")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("custom_features", sq.Expr("custom_features - ?", string(feature))).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear feature override: %w", err)
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

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}
