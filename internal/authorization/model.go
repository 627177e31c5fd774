// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	"github.com/openfga/go-sdk/client"
)

// authModelJSON is the v0 relationship model. Direct relations mirror the
// relational rows (owner, staff, member of a tenant); the permission
// relations are what handlers check.
const authModelJSON = `{
  "schema_version": "1.1",
  "type_definitions": [
    {
      "type": "user"
    },
    {
      "type": "tenant",
      "relations": {
        "owner": {"this": {}},
        "staff": {"this": {}},
        "member": {"this": {}},
        "can_view": {
          "union": {
            "child": [
              {"computedUserset": {"relation": "owner"}},
              {"computedUserset": {"relation": "staff"}},
              {"computedUserset": {"relation": "member"}}
            ]
          }
        },
        "can_edit": {
          "union": {
            "child": [
              {"computedUserset": {"relation": "owner"}},
              {"computedUserset": {"relation": "staff"}}
            ]
          }
        },
        "can_create": {
          "union": {
            "child": [
              {"computedUserset": {"relation": "owner"}},
              {"computedUserset": {"relation": "staff"}}
            ]
          }
        },
        "can_delete": {"computedUserset": {"relation": "owner"}}
      },
      "metadata": {
        "relations": {
          "owner": {"directly_related_user_types": [{"type": "user"}]},
          "staff": {"directly_related_user_types": [{"type": "user"}]},
          "member": {"directly_related_user_types": [{"type": "user"}]},
          "can_view": {"directly_related_user_types": []},
          "can_edit": {"directly_related_user_types": []},
          "can_create": {"directly_related_user_types": []},
          "can_delete": {"directly_related_user_types": []}
        }
      }
    }
  ]
}`

type AuthorizationModelProvider struct {
	version string
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}

// GetModel returns the model write request for the provider's version.
// Only v0 exists today.
func (p *AuthorizationModelProvider) GetModel() (*client.ClientWriteAuthorizationModelRequest, error) {
	if p.version != "v0" {
		return nil, fmt.Errorf("unknown authorization model version: %q", p.version)
	}

	model := new(client.ClientWriteAuthorizationModelRequest)
	if err := json.Unmarshal([]byte(authModelJSON), model); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authorization model: %w", err)
	}

	return model, nil
}
