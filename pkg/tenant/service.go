// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateTenant provisions a gym with its owner. The owner relation is
// mirrored into the authorization store after the row exists.
func (s *Service) CreateTenant(ctx context.Context, name, ownerID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	t := &types.Tenant{
		Name:    name,
		OwnerID: ownerID,
		Tier:    types.TierFree,
		Enabled: true,
	}

	created, err := s.storage.CreateTenant(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := s.authz.AssignTenantOwner(ctx, created.ID, ownerID); err != nil {
		// The relational row is authoritative, the tuple mirror catches up.
		s.logger.Errorf("failed to mirror owner relation for tenant %s: %v", created.ID, err)
	}

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

// UpdateTenant applies the named field paths from the patch. Tier and
// feature overrides have their own operations and are never touched here.
func (s *Service) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	return updated, nil
}

// SetTier moves the tenant to a new subscription tier. Overrides survive
// the change untouched: an explicit grant or revoke outlives up- and
// downgrades until it is cleared.
func (s *Service) SetTier(ctx context.Context, id string, tier types.SubscriptionTier) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTier")
	defer span.End()

	if _, err := types.ParseTier(string(tier)); err != nil {
		return nil, err
	}

	if err := s.storage.SetTenantTier(ctx, id, tier); err != nil {
		return nil, fmt.Errorf("failed to set tier: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	s.logger.Infof("tenant %s moved to tier %s", id, tier)
	return updated, nil
}

// SetFeatureOverride pins a feature on or off for the tenant regardless of
// its plan.
func (s *Service) SetFeatureOverride(ctx context.Context, id string, feature types.Feature, enabled bool) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetFeatureOverride")
	defer span.End()

	if _, err := types.ParseFeature(string(feature)); err != nil {
		return nil, err
	}

	if err := s.storage.SetFeatureOverride(ctx, id, feature, enabled); err != nil {
		return nil, fmt.Errorf("failed to set feature override: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	s.logger.Infof("tenant %s override %s=%t", id, feature, enabled)
	return updated, nil
}

// ClearFeatureOverride removes the pin, returning the feature to its plan
// default.
func (s *Service) ClearFeatureOverride(ctx context.Context, id string, feature types.Feature) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ClearFeatureOverride")
	defer span.End()

	if _, err := types.ParseFeature(string(feature)); err != nil {
		return nil, err
	}

	if err := s.storage.ClearFeatureOverride(ctx, id, feature); err != nil {
		return nil, fmt.Errorf("failed to clear feature override: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if err := s.storage.DeleteTenant(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tenant from storage: %w", err)
	}

	if err := s.authz.DeleteTenant(ctx, id); err != nil {
		// Storage row is already gone, leftover tuples are harmless.
		s.logger.Errorf("failed to delete tenant %s from authz: %v", id, err)
	}

	return nil
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
