// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"context"

	"github.com/gymstack/gym-service/internal/types"
)

type ResolverInterface interface {
	GetPlan(ctx context.Context, tier types.SubscriptionTier) (*Plan, error)
	Plans(ctx context.Context) []*Plan
	IsFeatureEnabled(ctx context.Context, tenant *types.Tenant, feature types.Feature) bool
	ListEnabledFeatures(ctx context.Context, tenant *types.Tenant) []types.Feature
	FindCheapestPlanWithFeature(ctx context.Context, feature types.Feature) (*Plan, bool)
}
