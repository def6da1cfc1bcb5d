// api/model/role.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type RoleLevel string

const (
	RoleLevelEnterprise RoleLevel = "ENTERPRISE"
	RoleLevelTrial      RoleLevel = "TRIAL"
	RoleLevelSite       RoleLevel = "SITE"
	RoleLevelDocument   RoleLevel = "DOCUMENT"
)

type RoleStatus string

const (
	RoleStatusActive     RoleStatus = "ACTIVE"
	RoleStatusInactive   RoleStatus = "INACTIVE"
	RoleStatusDeprecated RoleStatus = "DEPRECATED"
)

type DocumentPermissions struct {
	Create  bool `json:"create" bson:"create"`
	Read    bool `json:"read" bson:"read"`
	Update  bool `json:"update" bson:"update"`
	Delete  bool `json:"delete" bson:"delete"`
	Approve bool `json:"approve" bson:"approve"`
	Sign    bool `json:"sign" bson:"sign"`
}

type ManagePermissions struct {
	Create bool `json:"create" bson:"create"`
	Read   bool `json:"read" bson:"read"`
	Update bool `json:"update" bson:"update"`
	Delete bool `json:"delete" bson:"delete"`
	Manage bool `json:"manage" bson:"manage"`
}

type AuditPermissions struct {
	Read   bool `json:"read" bson:"read"`
	Export bool `json:"export" bson:"export"`
}

type SettingsPermissions struct {
	Read   bool `json:"read" bson:"read"`
	Update bool `json:"update" bson:"update"`
}

type Permissions struct {
	Documents DocumentPermissions `json:"documents" bson:"documents"`
	Trials    ManagePermissions   `json:"trials" bson:"trials"`
	Sites     ManagePermissions   `json:"sites" bson:"sites"`
	Users     ManagePermissions   `json:"users" bson:"users"`
	Roles     ManagePermissions   `json:"roles" bson:"roles"`
	Audit     AuditPermissions    `json:"audit" bson:"audit"`
	Settings  SettingsPermissions `json:"settings" bson:"settings"`
}

// Any reports whether at least one flag is granted.
func (p Permissions) Any() bool {
	return p != Permissions{}
}

type Role struct {
	Base        `bson:",inline"`
	RoleID      string      `json:"roleId" bson:"roleId" validate:"required,max=64"`
	Name        string      `json:"name" bson:"name" validate:"required,max=100"`
	Description string      `json:"description" bson:"description" validate:"required"`
	Level       RoleLevel   `json:"level" bson:"level" validate:"omitempty,oneof=ENTERPRISE TRIAL SITE DOCUMENT"`
	Permissions Permissions `json:"permissions" bson:"permissions"`
	IsSystem    bool        `json:"isSystem" bson:"isSystem"`
	Status      RoleStatus  `json:"status" bson:"status"`
	CreatedBy   string      `json:"createdBy" bson:"createdBy"`
	UpdatedBy   string      `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`

	HasPermissions bool `json:"hasPermissions" bson:"-"`
}

// RoleDetails carries the editable descriptive fields of a role.
type RoleDetails struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,min=1"`
	Level       *RoleLevel `json:"level,omitempty" validate:"omitempty,oneof=ENTERPRISE TRIAL SITE DOCUMENT"`
}

func (r *Role) Initialize(actor string, now time.Time) {
	if r.Level == "" {
		r.Level = RoleLevelEnterprise
	}
	r.Status = RoleStatusActive
	r.CreatedBy = actor
	r.UpdatedBy = actor
	r.Touch(now)
	r.Evaluate()
}

func (r *Role) Evaluate() {
	r.HasPermissions = r.Permissions.Any()
}

// UpdatePermissions rejects any edit on a system role before looking at the payload.
func (r *Role) UpdatePermissions(p Permissions, actor string, now time.Time) error {
	if r.IsSystem {
		return etmf_errors.ErrSystemRoleImmutable
	}
	if r.Status == RoleStatusDeprecated {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "role is deprecated")
	}
	r.Permissions = p
	r.UpdatedBy = actor
	r.Touch(now)
	r.Evaluate()
	return nil
}

func (r *Role) UpdateDetails(d RoleDetails, actor string, now time.Time) error {
	if d.Name == nil && d.Description == nil && d.Level == nil {
		return etmf_errors.Validation("no role fields to update")
	}
	if d.Name != nil {
		r.Name = *d.Name
	}
	if d.Description != nil {
		r.Description = *d.Description
	}
	if d.Level != nil {
		r.Level = *d.Level
	}
	r.UpdatedBy = actor
	r.Touch(now)
	r.Evaluate()
	return nil
}

func (r *Role) SetStatus(status RoleStatus, actor string, now time.Time) error {
	switch status {
	case RoleStatusActive, RoleStatusInactive, RoleStatusDeprecated:
	default:
		return etmf_errors.Validation("unknown role status %q", status)
	}
	if r.Status == RoleStatusDeprecated {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "role is deprecated")
	}
	if r.IsSystem && status != RoleStatusActive {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "system roles cannot be deactivated")
	}
	r.Status = status
	r.UpdatedBy = actor
	r.Touch(now)
	r.Evaluate()
	return nil
}
