// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"
	"fmt"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolver answers feature gate questions from the plan table and per-tenant
// overrides. Every path fails closed: a malformed tenant record or an
// unknown identifier disables the feature and logs, it never grants.
type Resolver struct {
	registry *Registry

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Resolver) GetPlan(ctx context.Context, tier types.SubscriptionTier) (*Plan, error) {
	_, span := r.tracer.Start(ctx, "entitlement.Resolver.GetPlan")
	defer span.End()

	p, ok := r.registry.Get(tier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return p, nil
}

// Plans returns the full plan table, cheapest first.
func (r *Resolver) Plans(ctx context.Context) []*Plan {
	_, span := r.tracer.Start(ctx, "entitlement.Resolver.Plans")
	defer span.End()

	return r.registry.Ordered()
}

// IsFeatureEnabled decides one feature gate for one tenant. An explicit
// per-tenant override always wins over the plan default, in both
// directions.
func (r *Resolver) IsFeatureEnabled(ctx context.Context, tenant *types.Tenant, feature types.Feature) bool {
	_, span := r.tracer.Start(ctx, "entitlement.Resolver.IsFeatureEnabled")
	defer span.End()

	return r.decide(tenant, feature)
}

// ListEnabledFeatures returns every enabled feature for the tenant, in
// feature declaration order. Each entry is decided by the same path as
// IsFeatureEnabled, so the bulk and single views cannot drift.
func (r *Resolver) ListEnabledFeatures(ctx context.Context, tenant *types.Tenant) []types.Feature {
	_, span := r.tracer.Start(ctx, "entitlement.Resolver.ListEnabledFeatures")
	defer span.End()

	enabled := make([]types.Feature, 0, len(types.Features()))
	for _, f := range types.Features() {
		if r.decide(tenant, f) {
			enabled = append(enabled, f)
		}
	}
	return enabled
}

// FindCheapestPlanWithFeature scans plans cheapest first and returns the
// first one whose defaults include the feature. Per-tenant overrides do not
// participate, this answers "what would a gym have to buy".
func (r *Resolver) FindCheapestPlanWithFeature(ctx context.Context, feature types.Feature) (*Plan, bool) {
	_, span := r.tracer.Start(ctx, "entitlement.Resolver.FindCheapestPlanWithFeature")
	defer span.End()

	if _, err := types.ParseFeature(string(feature)); err != nil {
		r.logger.Errorf("cheapest plan lookup for unknown feature %q", feature)
		return nil, false
	}

	for _, p := range r.registry.Ordered() {
		if p.HasFeature(feature) {
			return p, true
		}
	}
	return nil, false
}

func (r *Resolver) decide(tenant *types.Tenant, feature types.Feature) bool {
	if tenant == nil {
		r.logger.Error("feature gate decided without a tenant, denying")
		return false
	}

	if _, err := types.ParseFeature(string(feature)); err != nil {
		r.logger.Errorf("feature gate for unknown feature %q on tenant %s, denying", feature, tenant.ID)
		return false
	}

	if tenant.CustomFeatures != nil {
		if v, ok := tenant.CustomFeatures[feature]; ok {
			return v
		}
	}

	plan, ok := r.registry.Get(tenant.Tier)
	if !ok {
		r.logger.Errorf("tenant %s carries unknown tier %q, denying feature %q", tenant.ID, tenant.Tier, feature)
		return false
	}

	return plan.HasFeature(feature)
}

func NewResolver(registry *Registry, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.registry = registry

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
