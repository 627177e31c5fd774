// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
)

var ErrInvalidEvent = errors.New("invalid billing event")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	tenants  TenantServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleTierChange applies a subscription change reported by the billing
// provider. Feature overrides are untouched, the tier path is the same one
// the admin API uses.
func (s *Service) HandleTierChange(ctx context.Context, event *TierChangeEvent) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTierChange")
	defer span.End()

	if err := s.validate.Struct(event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	if _, err := s.tenants.SetTier(ctx, event.TenantID, types.SubscriptionTier(event.Tier)); err != nil {
		return err
	}

	s.logger.Infof("billing event %s moved tenant %s to tier %s", event.EventID, event.TenantID, event.Tier)
	return nil
}

func NewService(tenants TenantServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.tenants = tenants
	s.validate = validator.New()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
