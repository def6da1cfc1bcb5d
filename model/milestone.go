// api/model/milestone.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "PENDING"
	MilestoneStatusInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneStatusCompleted  MilestoneStatus = "COMPLETED"
	MilestoneStatusDelayed    MilestoneStatus = "DELAYED"
	MilestoneStatusCancelled  MilestoneStatus = "CANCELLED"
)

type Milestone struct {
	Base          `bson:",inline"`
	MilestoneID   string          `json:"milestoneId" bson:"milestoneId" validate:"required,max=64"`
	TrialID       string          `json:"trialId" bson:"trialId"`
	SiteID        string          `json:"siteId,omitempty" bson:"siteId,omitempty"`
	Name          string          `json:"name" bson:"name" validate:"required,max=200"`
	Type          string          `json:"type" bson:"type" validate:"required,oneof=REGULATORY ENROLLMENT SAFETY EFFICACY QUALITY DOCUMENTATION OTHER"`
	Status        MilestoneStatus `json:"status" bson:"status"`
	Description   string          `json:"description,omitempty" bson:"description,omitempty"`
	DueDate       time.Time       `json:"dueDate" bson:"dueDate" validate:"required"`
	CompletedDate *time.Time      `json:"completedDate,omitempty" bson:"completedDate,omitempty"`
	Priority      string          `json:"priority" bson:"priority" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Dependencies  []string        `json:"dependencies" bson:"dependencies"`
	AssignedTo    []string        `json:"assignedTo" bson:"assignedTo"`
	CreatedBy     string          `json:"createdBy" bson:"createdBy"`
	UpdatedBy     string          `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`

	IsOverdue        bool   `json:"isOverdue" bson:"-"`
	CompletionStatus string `json:"completionStatus,omitempty" bson:"-"`
}

func (m *Milestone) Initialize(trialID, actor string, now time.Time) {
	m.TrialID = trialID
	m.Status = MilestoneStatusPending
	m.CompletedDate = nil
	if m.Priority == "" {
		m.Priority = "MEDIUM"
	}
	if m.Dependencies == nil {
		m.Dependencies = []string{}
	}
	if m.AssignedTo == nil {
		m.AssignedTo = []string{}
	}
	m.CreatedBy = actor
	m.UpdatedBy = actor
	m.Touch(now)
	m.Evaluate(now)
}

// Evaluate fills the derived overdue and completion fields.
func (m *Milestone) Evaluate(now time.Time) {
	m.IsOverdue = m.Status != MilestoneStatusCompleted && m.Status != MilestoneStatusCancelled && m.DueDate.Before(now)
	switch {
	case m.Status == MilestoneStatusCompleted:
		m.CompletionStatus = "COMPLETED"
	case m.Status == MilestoneStatusCancelled:
		m.CompletionStatus = "CANCELLED"
	case m.IsOverdue:
		m.CompletionStatus = "OVERDUE"
	case m.Status == MilestoneStatusInProgress:
		m.CompletionStatus = "IN_PROGRESS"
	default:
		m.CompletionStatus = "PENDING"
	}
}

func (m *Milestone) move(to MilestoneStatus, actor string, now time.Time, from ...MilestoneStatus) error {
	for _, s := range from {
		if s == m.Status {
			m.Status = to
			m.UpdatedBy = actor
			m.Touch(now)
			m.Evaluate(now)
			return nil
		}
	}
	return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
		"cannot move milestone from "+string(m.Status)+" to "+string(to))
}

func (m *Milestone) Start(actor string, now time.Time) error {
	return m.move(MilestoneStatusInProgress, actor, now, MilestoneStatusPending, MilestoneStatusDelayed)
}

func (m *Milestone) MarkDelayed(actor string, now time.Time) error {
	return m.move(MilestoneStatusDelayed, actor, now, MilestoneStatusPending, MilestoneStatusInProgress)
}

func (m *Milestone) Cancel(actor string, now time.Time) error {
	return m.move(MilestoneStatusCancelled, actor, now,
		MilestoneStatusPending, MilestoneStatusInProgress, MilestoneStatusDelayed)
}

// Complete records the completion date, which completes the milestone.
func (m *Milestone) Complete(completedDate time.Time, actor string, now time.Time) error {
	if m.Status == MilestoneStatusCompleted || m.Status == MilestoneStatusCancelled {
		return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
			"cannot complete a milestone in status "+string(m.Status))
	}
	m.CompletedDate = &completedDate
	m.Status = MilestoneStatusCompleted
	m.UpdatedBy = actor
	m.Touch(now)
	m.Evaluate(now)
	return nil
}
