// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import "fmt"

// Role is the access scope a caller asks for. It always arrives as an
// explicit argument, never derived from a request path.
type Role string

const (
	// RoleNone marks routes that require authentication but no
	// relationship: an authenticated principal is granted outright.
	RoleNone   Role = ""
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleNone, RoleAdmin, RoleMember:
		return r, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// Decision is the outcome of an access resolution. PendingAutoProvision is
// an intermediate state only, it shows up in logs and traces but is never
// returned to callers.
type Decision int

const (
	DecisionGranted Decision = iota
	DecisionDeniedRedirectToLogin
	DecisionDeniedRedirectToMember
	DecisionDeniedRedirectToAdmin
	DecisionPendingAutoProvision
)

func (d Decision) String() string {
	switch d {
	case DecisionGranted:
		return "granted"
	case DecisionDeniedRedirectToLogin:
		return "denied_redirect_to_login"
	case DecisionDeniedRedirectToMember:
		return "denied_redirect_to_member"
	case DecisionDeniedRedirectToAdmin:
		return "denied_redirect_to_admin"
	case DecisionPendingAutoProvision:
		return "pending_auto_provision"
	}
	return "unknown"
}

// Granted reports whether access was allowed.
func (d Decision) Granted() bool {
	return d == DecisionGranted
}

// RedirectPath returns where the UI should send a denied caller. Empty for
// granted.
func (d Decision) RedirectPath() string {
	switch d {
	case DecisionDeniedRedirectToLogin:
		return "/login"
	case DecisionDeniedRedirectToMember:
		return "/member"
	case DecisionDeniedRedirectToAdmin:
		return "/admin"
	}
	return ""
}
