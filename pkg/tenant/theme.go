// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "github.com/gymstack/gym-service/internal/types"

// Platform defaults used whenever a tenant carries no branding of its own.
const (
	DefaultPrimaryColor   = "#2C8EFF"
	DefaultSecondaryColor = "#4CAF50"
)

// ThemeTokens is the resolved presentation palette for a tenant. The
// frontend maps these onto its own CSS variables.
type ThemeTokens struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	LogoURL        string `json:"logo_url,omitempty"`
}

// ComputeTheme derives the theme for a tenant. Pure: no stored state is
// touched and the same inputs always produce the same tokens. Tenant
// branding only applies when the custom branding feature is enabled,
// otherwise the caller gets the platform defaults.
func ComputeTheme(t *types.Tenant, brandingEnabled bool) ThemeTokens {
	tokens := ThemeTokens{
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
	}

	if t == nil || !brandingEnabled {
		return tokens
	}

	if t.PrimaryColor != "" {
		tokens.PrimaryColor = t.PrimaryColor
	}
	if t.SecondaryColor != "" {
		tokens.SecondaryColor = t.SecondaryColor
	}
	tokens.LogoURL = t.LogoURL

	return tokens
}
