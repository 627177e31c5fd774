// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import "errors"

var (
	ErrUnknownTier    = errors.New("unknown subscription tier")
	ErrUnknownFeature = errors.New("unknown feature")
	ErrNoPlanCarries  = errors.New("no plan carries the feature")
)
