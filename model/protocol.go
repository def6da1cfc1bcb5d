// api/model/protocol.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type ProtocolStatus string

const (
	ProtocolStatusDraft      ProtocolStatus = "DRAFT"
	ProtocolStatusReview     ProtocolStatus = "REVIEW"
	ProtocolStatusApproved   ProtocolStatus = "APPROVED"
	ProtocolStatusAmended    ProtocolStatus = "AMENDED"
	ProtocolStatusArchived   ProtocolStatus = "ARCHIVED"
	ProtocolStatusDeprecated ProtocolStatus = "DEPRECATED"
)

// AMENDED is entered only through Amend.
var protocolTransitions = map[ProtocolStatus][]ProtocolStatus{
	ProtocolStatusDraft:      {ProtocolStatusReview},
	ProtocolStatusReview:     {ProtocolStatusApproved, ProtocolStatusDraft},
	ProtocolStatusApproved:   {ProtocolStatusDeprecated, ProtocolStatusArchived},
	ProtocolStatusAmended:    {ProtocolStatusDeprecated, ProtocolStatusArchived},
	ProtocolStatusDeprecated: {ProtocolStatusArchived},
}

const (
	ActionProtocolCreated  = "PROTOCOL_CREATED"
	ActionProtocolStatus   = "STATUS_CHANGE"
	ActionProtocolAmended  = "AMENDED"
	ActionProtocolApproval = "APPROVAL_RECORDED"
)

type ProtocolDesign struct {
	Type   string   `json:"type" bson:"type" validate:"required,oneof=RANDOMIZED NON_RANDOMIZED BLINDED OPEN_LABEL CROSSOVER PARALLEL"`
	Phases []string `json:"phases,omitempty" bson:"phases,omitempty" validate:"dive,oneof=PHASE_1 PHASE_2 PHASE_3 PHASE_4 PILOT FEASIBILITY"`
}

type ProtocolPopulation struct {
	InclusionCriteria []string `json:"inclusionCriteria,omitempty" bson:"inclusionCriteria,omitempty"`
	ExclusionCriteria []string `json:"exclusionCriteria,omitempty" bson:"exclusionCriteria,omitempty"`
	Gender            string   `json:"gender,omitempty" bson:"gender,omitempty" validate:"omitempty,oneof=ALL MALE FEMALE OTHER"`
}

type Endpoint struct {
	Primary     bool   `json:"primary" bson:"primary"`
	Description string `json:"description" bson:"description" validate:"required"`
	Measurement string `json:"measurement,omitempty" bson:"measurement,omitempty"`
}

// Amendment records one version bump of an approved protocol.
type Amendment struct {
	Version     string    `json:"version" bson:"version"`
	Date        time.Time `json:"date" bson:"date"`
	Description string    `json:"description" bson:"description" validate:"required"`
	Changes     []string  `json:"changes,omitempty" bson:"changes,omitempty"`
	ApprovedBy  string    `json:"approvedBy" bson:"approvedBy"`
}

// RegulatoryApproval is an IRB, EC, regulator or sponsor decision on the protocol.
type RegulatoryApproval struct {
	Type      string    `json:"type" bson:"type" validate:"required,oneof=IRB EC REGULATORY SPONSOR"`
	Status    string    `json:"status" bson:"status" validate:"required,oneof=PENDING APPROVED REJECTED CONDITIONAL"`
	Date      time.Time `json:"date" bson:"date"`
	Reference string    `json:"reference,omitempty" bson:"reference,omitempty"`
	Comments  string    `json:"comments,omitempty" bson:"comments,omitempty"`
}

type Protocol struct {
	Base        `bson:",inline"`
	ProtocolID  string               `json:"protocolId" bson:"protocolId" validate:"required,max=64"`
	TrialID     string               `json:"trialId" bson:"trialId"`
	Title       string               `json:"title" bson:"title" validate:"required,max=200"`
	Version     string               `json:"version" bson:"version" validate:"required"`
	Status      ProtocolStatus       `json:"status" bson:"status"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Objectives  []string             `json:"objectives" bson:"objectives"`
	Endpoints   []Endpoint           `json:"endpoints" bson:"endpoints" validate:"dive"`
	Design      ProtocolDesign       `json:"design" bson:"design"`
	Population  ProtocolPopulation   `json:"population" bson:"population"`
	Amendments  []Amendment          `json:"amendments" bson:"amendments"`
	Approvals   []RegulatoryApproval `json:"approvals" bson:"approvals"`
	CreatedBy   string               `json:"createdBy" bson:"createdBy"`
	UpdatedBy   string               `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	AuditTrail  AuditTrail           `json:"auditTrail" bson:"auditTrail"`
	Valid       bool                 `json:"isValid" bson:"-"`
}

func (p *Protocol) Initialize(trialID, actor string, now time.Time) error {
	if _, _, err := ParseVersion(p.Version); err != nil {
		return err
	}
	p.TrialID = trialID
	p.Status = ProtocolStatusDraft
	if p.Objectives == nil {
		p.Objectives = []string{}
	}
	if p.Endpoints == nil {
		p.Endpoints = []Endpoint{}
	}
	p.Amendments = []Amendment{}
	p.Approvals = []RegulatoryApproval{}
	p.CreatedBy = actor
	p.UpdatedBy = actor
	p.AuditTrail = AuditTrail{}
	p.AuditTrail.Append(ActionProtocolCreated, actor, now, nil)
	p.Touch(now)
	p.Evaluate()
	return nil
}

// IsValid reports whether the protocol is in force.
func (p *Protocol) IsValid() bool {
	return p.Status == ProtocolStatusApproved || p.Status == ProtocolStatusAmended
}

func (p *Protocol) Evaluate() {
	p.Valid = p.IsValid()
}

func (p *Protocol) mutated(action, actor string, now time.Time, details map[string]interface{}) {
	p.UpdatedBy = actor
	p.AuditTrail.Append(action, actor, now, details)
	p.Touch(now)
	p.Evaluate()
}

func (p *Protocol) ChangeStatus(to ProtocolStatus, actor string, now time.Time) error {
	if to == ProtocolStatusAmended {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "protocols are amended by recording an amendment")
	}
	for _, allowed := range protocolTransitions[p.Status] {
		if allowed == to {
			from := p.Status
			p.Status = to
			p.mutated(ActionProtocolStatus, actor, now, statusChange(string(from), string(to)))
			return nil
		}
	}
	return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
		"cannot move protocol from "+string(p.Status)+" to "+string(to))
}

// Amend moves an approved or amended protocol to AMENDED and bumps its minor version.
func (p *Protocol) Amend(amendment Amendment, actor string, now time.Time) error {
	if p.Status != ProtocolStatusApproved && p.Status != ProtocolStatusAmended {
		return etmf_errors.Newf(etmf_errors.ErrInvalidState, "only approved protocols can be amended, protocol is %s", p.Status)
	}
	next, err := NextMinorVersion(p.Version)
	if err != nil {
		return err
	}
	from := p.Version
	p.Version = next
	p.Status = ProtocolStatusAmended
	amendment.Version = next
	amendment.Date = now
	amendment.ApprovedBy = actor
	p.Amendments = append(p.Amendments, amendment)
	p.mutated(ActionProtocolAmended, actor, now, map[string]interface{}{"from": from, "to": next})
	return nil
}

// RecordApproval replaces an earlier decision of the same type.
func (p *Protocol) RecordApproval(approval RegulatoryApproval, actor string, now time.Time) error {
	if p.Status == ProtocolStatusArchived {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "protocol is archived")
	}
	if approval.Date.IsZero() {
		approval.Date = now
	}
	replaced := false
	for i, a := range p.Approvals {
		if a.Type == approval.Type {
			p.Approvals[i] = approval
			replaced = true
			break
		}
	}
	if !replaced {
		p.Approvals = append(p.Approvals, approval)
	}
	p.mutated(ActionProtocolApproval, actor, now, map[string]interface{}{"type": approval.Type, "status": approval.Status})
	return nil
}
