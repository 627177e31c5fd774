// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"
)

var _ TenantSelector = (*FirstTenantSelector)(nil)

// FirstTenantSelector is the default provisioning policy: new members land
// in the oldest enabled tenant. Single-gym deployments have exactly one.
type FirstTenantSelector struct {
	storage StorageInterface
}

func (s *FirstTenantSelector) SelectTenant(ctx context.Context, profileID string) (string, error) {
	id, err := s.storage.FirstTenantID(ctx)
	if err != nil {
		return "", fmt.Errorf("no tenant available for provisioning: %w", err)
	}
	return id, nil
}

func NewFirstTenantSelector(storage StorageInterface) *FirstTenantSelector {
	s := new(FirstTenantSelector)
	s.storage = storage
	return s
}
