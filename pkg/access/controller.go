// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/storage"
	"github.com/gymstack/gym-service/internal/tracing"
)

var _ ControllerInterface = (*Controller)(nil)

// Controller resolves whether a principal may enter an access scope. All
// failure paths deny: a lookup error reads as relation absent, an unknown
// role reads as unauthenticated. Denials are logged, never silently
// granted.
type Controller struct {
	storage  StorageInterface
	authz    AuthzInterface
	selector TenantSelector

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve decides access for the requested role. The role is an explicit
// argument supplied by the caller's route registration.
func (c *Controller) Resolve(ctx context.Context, userID string, role Role) Decision {
	ctx, span := c.tracer.Start(ctx, "access.Controller.Resolve")
	defer span.End()

	if userID == "" {
		return DecisionDeniedRedirectToLogin
	}

	switch role {
	case RoleNone:
		// Authentication alone is enough, no relationship lookups.
		return DecisionGranted
	case RoleAdmin:
		return c.resolveAdmin(ctx, userID)
	case RoleMember:
		return c.resolveMember(ctx, userID)
	}

	c.logger.Errorf("access resolution for unknown role %q by user %s, denying", role, userID)
	return DecisionDeniedRedirectToLogin
}

// resolveAdmin grants on ownership first. The staff roster is only
// consulted when the caller owns nothing.
func (c *Controller) resolveAdmin(ctx context.Context, userID string) Decision {
	ctx, span := c.tracer.Start(ctx, "access.Controller.resolveAdmin")
	defer span.End()

	owner, err := c.storage.IsOwnerOfAnyTenant(ctx, userID)
	if err != nil {
		c.logger.Errorf("ownership lookup failed for user %s, treating as not owner: %v", userID, err)
		owner = false
	}
	if owner {
		return DecisionGranted
	}

	staff, err := c.storage.IsStaffOfAnyTenant(ctx, userID)
	if err != nil {
		c.logger.Errorf("staff lookup failed for user %s, treating as not staff: %v", userID, err)
		staff = false
	}
	if staff {
		return DecisionGranted
	}

	c.logger.Infof("admin access denied for user %s, redirecting to member area", userID)
	return DecisionDeniedRedirectToMember
}

// resolveMember grants on enrollment, auto-provisioning the caller into the
// selected tenant when none exists. Provisioning is idempotent: losing the
// insert race to a concurrent request still grants.
func (c *Controller) resolveMember(ctx context.Context, userID string) Decision {
	ctx, span := c.tracer.Start(ctx, "access.Controller.resolveMember")
	defer span.End()

	member, err := c.storage.IsMemberOfAnyTenant(ctx, userID)
	if err != nil {
		c.logger.Errorf("membership lookup failed for user %s, treating as not enrolled: %v", userID, err)
		member = false
	}
	if member {
		return DecisionGranted
	}

	c.logger.Infof("user %s has no enrollment, state %s", userID, DecisionPendingAutoProvision)

	tenantID, err := c.selector.SelectTenant(ctx, userID)
	if err != nil {
		c.logger.Errorf("tenant selection failed for user %s, denying: %v", userID, err)
		return DecisionDeniedRedirectToAdmin
	}

	if _, err := c.storage.EnrollMember(ctx, tenantID, userID); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// A concurrent request enrolled the same profile first.
			return DecisionGranted
		}
		c.logger.Errorf("auto-provisioning failed for user %s in tenant %s, denying: %v", userID, tenantID, err)
		return DecisionDeniedRedirectToAdmin
	}

	if err := c.authz.AssignTenantMember(ctx, tenantID, userID); err != nil {
		// The relational row is authoritative, the tuple mirror catches up.
		c.logger.Errorf("failed to mirror member relation for user %s in tenant %s: %v", userID, tenantID, err)
	}

	c.logger.Infof("auto-provisioned user %s into tenant %s", userID, tenantID)
	return DecisionGranted
}

func NewController(storage StorageInterface, authz AuthzInterface, selector TenantSelector, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Controller {
	c := new(Controller)

	c.storage = storage
	c.authz = authz
	c.selector = selector

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
