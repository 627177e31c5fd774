// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"time"
)

// SubscriptionTier is the closed, ordered set of billing tiers a tenant can
// be on. Order matters for plan comparisons: free < basic < pro < enterprise.
type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierBasic      SubscriptionTier = "basic"
	TierPro        SubscriptionTier = "pro"
	TierEnterprise SubscriptionTier = "enterprise"
)

// Tiers lists every known tier in ascending price order.
func Tiers() []SubscriptionTier {
	return []SubscriptionTier{TierFree, TierBasic, TierPro, TierEnterprise}
}

// ParseTier validates a tier value coming from untrusted input (storage rows,
// API payloads). Tiers are a closed enumeration.
func ParseTier(s string) (SubscriptionTier, error) {
	t := SubscriptionTier(s)
	switch t {
	case TierFree, TierBasic, TierPro, TierEnterprise:
		return t, nil
	}
	return "", fmt.Errorf("unknown subscription tier: %q", s)
}

// Feature is a named capability that can be enabled by a tier default or a
// per-tenant override.
type Feature string

const (
	FeatureMemberManagement    Feature = "member_management"
	FeaturePaymentTracking     Feature = "payment_tracking"
	FeatureAttendanceTracking  Feature = "attendance_tracking"
	FeatureReportsBasic        Feature = "reports_basic"
	FeatureReportsAdvanced     Feature = "reports_advanced"
	FeatureStaffManagement     Feature = "staff_management"
	FeatureWhatsappIntegration Feature = "whatsapp_integration"
	FeatureEmailNotifications  Feature = "email_notifications"
	FeatureCustomBranding      Feature = "custom_branding"
	FeatureAPIAccess           Feature = "api_access"
)

// Features lists every known feature flag. The set is closed at compile time
// and plan tables must carry an explicit entry for each of them.
func Features() []Feature {
	return []Feature{
		FeatureMemberManagement,
		FeaturePaymentTracking,
		FeatureAttendanceTracking,
		FeatureReportsBasic,
		FeatureReportsAdvanced,
		FeatureStaffManagement,
		FeatureWhatsappIntegration,
		FeatureEmailNotifications,
		FeatureCustomBranding,
		FeatureAPIAccess,
	}
}

// ParseFeature validates a feature identifier coming from untrusted input.
func ParseFeature(s string) (Feature, error) {
	f := Feature(s)
	for _, known := range Features() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown feature: %q", s)
}

// Tenant is one gym account. CustomFeatures holds per-tenant overrides of
// the plan defaults; an explicit entry wins over the tier default in either
// direction.
type Tenant struct {
	ID             string           `db:"id"`
	Name           string           `db:"name"`
	OwnerID        string           `db:"owner_id"`
	Tier           SubscriptionTier `db:"subscription_tier"`
	CustomFeatures map[Feature]bool `db:"custom_features"`
	PrimaryColor   string           `db:"primary_color"`
	SecondaryColor string           `db:"secondary_color"`
	LogoURL        string           `db:"logo_url"`
	Enabled        bool             `db:"enabled"`
	CreatedAt      time.Time        `db:"created_at"`
}

// StaffMembership binds a profile to a tenant's staff roster. Staff qualify
// for admin-scoped access the same way owners do.
type StaffMembership struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	ProfileID string    `db:"profile_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// Member is a gym member enrollment. (tenant_id, profile_id) is unique; the
// auto-provisioning path relies on that constraint.
type Member struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	ProfileID string    `db:"profile_id"`
	Active    bool      `db:"active"`
	JoinDate  time.Time `db:"join_date"`
	CreatedAt time.Time `db:"created_at"`
}

// Payment is a recorded member payment in integral cents. This is
// bookkeeping only, there is no gateway integration.
type Payment struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	MemberID    string    `db:"member_id"`
	AmountCents int64     `db:"amount_cents"`
	Method      string    `db:"method"`
	Note        string    `db:"note"`
	PaidAt      time.Time `db:"paid_at"`
	CreatedAt   time.Time `db:"created_at"`
}

// Attendance is a single check-in event for a member.
type Attendance struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	MemberID    string    `db:"member_id"`
	CheckedInAt time.Time `db:"checked_in_at"`
}
