// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit-grade events in a fixed schema so they can be
// picked up by the SIEM pipeline independently of application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup",
		zap.String("event", "sys_startup"),
	)
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown",
		zap.String("event", "sys_shutdown"),
	)
}

// AuthorizationDenied records a denied access resolution for a principal.
func (s *SecurityLogger) AuthorizationDenied(userID, requestedRole, reason string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz_fail"),
		zap.String("user_id", userID),
		zap.String("requested_role", requestedRole),
		zap.String("reason", reason),
	)
}
