// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/gymstack/gym-service/internal/types"
)

// TenantServiceInterface is the subset of the tenant service the webhook
// needs to apply a tier change.
type TenantServiceInterface interface {
	SetTier(ctx context.Context, id string, tier types.SubscriptionTier) (*types.Tenant, error)
}

type ServiceInterface interface {
	// HandleTierChange validates and applies a billing provider event.
	HandleTierChange(ctx context.Context, event *TierChangeEvent) error
}
