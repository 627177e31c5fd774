// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import "time"

// TierChangeEvent is the payload the billing provider posts when a gym's
// subscription changes. Tier values are validated against the closed set
// before they reach the tenant service.
type TierChangeEvent struct {
	EventID    string    `json:"event_id" validate:"required"`
	TenantID   string    `json:"tenant_id" validate:"required"`
	Tier       string    `json:"tier" validate:"required,oneof=free basic pro enterprise"`
	OccurredAt time.Time `json:"occurred_at"`
}
