// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"fmt"
	"sort"

	"github.com/gymstack/gym-service/internal/types"
)

// Plan is one subscription offering. Features is the complete default
// matrix for the tier, every known feature has an explicit entry.
type Plan struct {
	Tier        types.SubscriptionTier `json:"tier"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	PriceCents  int64                  `json:"price_cents"`
	Features    map[types.Feature]bool `json:"features"`
}

// HasFeature reports the plan default for a feature, overrides not applied.
func (p *Plan) HasFeature(f types.Feature) bool {
	return p.Features[f]
}

// Registry holds the plan table. Plans are kept sorted by ascending price,
// ties broken by tier declaration order, so cheapest-plan scans are
// deterministic.
type Registry struct {
	byTier  map[types.SubscriptionTier]*Plan
	ordered []*Plan
}

// NewRegistry validates the plan table on construction. A missing tier or a
// plan with an incomplete feature matrix is a deployment defect and fails
// loudly rather than silently defaulting.
func NewRegistry(plans []*Plan) (*Registry, error) {
	r := &Registry{
		byTier: make(map[types.SubscriptionTier]*Plan, len(plans)),
	}

	for _, p := range plans {
		if _, err := types.ParseTier(string(p.Tier)); err != nil {
			return nil, fmt.Errorf("plan %q: %w", p.Name, err)
		}
		if _, ok := r.byTier[p.Tier]; ok {
			return nil, fmt.Errorf("duplicate plan for tier %q", p.Tier)
		}
		for _, f := range types.Features() {
			if _, ok := p.Features[f]; !ok {
				return nil, fmt.Errorf("plan %q is missing an entry for feature %q", p.Name, f)
			}
		}
		if len(p.Features) != len(types.Features()) {
			return nil, fmt.Errorf("plan %q carries unknown feature entries", p.Name)
		}
		r.byTier[p.Tier] = p
	}

	for _, t := range types.Tiers() {
		if _, ok := r.byTier[t]; !ok {
			return nil, fmt.Errorf("no plan defined for tier %q", t)
		}
	}

	tierRank := make(map[types.SubscriptionTier]int, len(types.Tiers()))
	for i, t := range types.Tiers() {
		tierRank[t] = i
	}

	r.ordered = make([]*Plan, 0, len(plans))
	r.ordered = append(r.ordered, plans...)
	sort.SliceStable(r.ordered, func(i, j int) bool {
		if r.ordered[i].PriceCents != r.ordered[j].PriceCents {
			return r.ordered[i].PriceCents < r.ordered[j].PriceCents
		}
		return tierRank[r.ordered[i].Tier] < tierRank[r.ordered[j].Tier]
	})

	return r, nil
}

// Get returns the plan for a tier.
func (r *Registry) Get(tier types.SubscriptionTier) (*Plan, bool) {
	p, ok := r.byTier[tier]
	return p, ok
}

// Ordered returns the plans cheapest first.
func (r *Registry) Ordered() []*Plan {
	return r.ordered
}

// DefaultRegistry is the production plan table.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultPlans())
	if err != nil {
		panic(fmt.Sprintf("default plan table is invalid: %v", err))
	}
	return r
}

func defaultPlans() []*Plan {
	return []*Plan{
		{
			Tier:        types.TierFree,
			Name:        "Free",
			Description: "Get started with the basics for a single gym",
			PriceCents:  0,
			Features: map[types.Feature]bool{
				types.FeatureMemberManagement:    true,
				types.FeaturePaymentTracking:     true,
				types.FeatureAttendanceTracking:  true,
				types.FeatureReportsBasic:        true,
				types.FeatureReportsAdvanced:     false,
				types.FeatureStaffManagement:     false,
				types.FeatureWhatsappIntegration: false,
				types.FeatureEmailNotifications:  false,
				types.FeatureCustomBranding:      false,
				types.FeatureAPIAccess:           false,
			},
		},
		{
			Tier:        types.TierBasic,
			Name:        "Basic",
			Description: "Add staff accounts and member email notifications",
			PriceCents:  999,
			Features: map[types.Feature]bool{
				types.FeatureMemberManagement:    true,
				types.FeaturePaymentTracking:     true,
				types.FeatureAttendanceTracking:  true,
				types.FeatureReportsBasic:        true,
				types.FeatureReportsAdvanced:     false,
				types.FeatureStaffManagement:     true,
				types.FeatureWhatsappIntegration: false,
				types.FeatureEmailNotifications:  true,
				types.FeatureCustomBranding:      false,
				types.FeatureAPIAccess:           false,
			},
		},
		{
			Tier:        types.TierPro,
			Name:        "Pro",
			Description: "Advanced reporting and WhatsApp member messaging",
			PriceCents:  1999,
			Features: map[types.Feature]bool{
				types.FeatureMemberManagement:    true,
				types.FeaturePaymentTracking:     true,
				types.FeatureAttendanceTracking:  true,
				types.FeatureReportsBasic:        true,
				types.FeatureReportsAdvanced:     true,
				types.FeatureStaffManagement:     true,
				types.FeatureWhatsappIntegration: true,
				types.FeatureEmailNotifications:  true,
				types.FeatureCustomBranding:      false,
				types.FeatureAPIAccess:           false,
			},
		},
		{
			Tier:        types.TierEnterprise,
			Name:        "Enterprise",
			Description: "Everything, including branding and API access",
			PriceCents:  3999,
			Features: map[types.Feature]bool{
				types.FeatureMemberManagement:    true,
				types.FeaturePaymentTracking:     true,
				types.FeatureAttendanceTracking:  true,
				types.FeatureReportsBasic:        true,
				types.FeatureReportsAdvanced:     true,
				types.FeatureStaffManagement:     true,
				types.FeatureWhatsappIntegration: true,
				types.FeatureEmailNotifications:  true,
				types.FeatureCustomBranding:      true,
				types.FeatureAPIAccess:           true,
			},
		},
	}
}
