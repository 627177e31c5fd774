// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gym-service/internal/storage"
)

func TestFirstTenantSelector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStorage := NewMockStorageInterface(ctrl)
	selector := NewFirstTenantSelector(mockStorage)

	mockStorage.EXPECT().FirstTenantID(ctx).Return("tenant-1", nil)

	id, err := selector.SelectTenant(ctx, "user-1")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if id != "tenant-1" {
		t.Errorf("expected tenant-1, got %s", id)
	}
}

func TestFirstTenantSelectorNoTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStorage := NewMockStorageInterface(ctrl)
	selector := NewFirstTenantSelector(mockStorage)

	mockStorage.EXPECT().FirstTenantID(ctx).Return("", storage.ErrNotFound)

	if _, err := selector.SelectTenant(ctx, "user-1"); err == nil {
		t.Error("expected error when no tenant exists")
	}
}
