// api/model/workflow.go
package model

import (
	"sort"
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type WorkflowType string

const (
	WorkflowTypeReview    WorkflowType = "DOCUMENT_REVIEW"
	WorkflowTypeApproval  WorkflowType = "DOCUMENT_APPROVAL"
	WorkflowTypeSignature WorkflowType = "DOCUMENT_SIGNATURE"
	WorkflowTypeArchival  WorkflowType = "DOCUMENT_ARCHIVAL"
)

// WorkflowStatus covers both the stored status and the derived one.
type WorkflowStatus string

const (
	WorkflowStatusDraft      WorkflowStatus = "DRAFT"
	WorkflowStatusActive     WorkflowStatus = "ACTIVE"
	WorkflowStatusArchived   WorkflowStatus = "ARCHIVED"
	WorkflowStatusDeprecated WorkflowStatus = "DEPRECATED"

	WorkflowStatusPending    WorkflowStatus = "PENDING"
	WorkflowStatusInProgress WorkflowStatus = "IN_PROGRESS"
	WorkflowStatusCompleted  WorkflowStatus = "COMPLETED"
	WorkflowStatusRejected   WorkflowStatus = "REJECTED"
)

type StepType string

const (
	StepTypeReview  StepType = "REVIEW"
	StepTypeApprove StepType = "APPROVE"
	StepTypeSign    StepType = "SIGN"
	StepTypeNotify  StepType = "NOTIFY"
)

type StepStatus string

const (
	StepStatusPending    StepStatus = "PENDING"
	StepStatusInProgress StepStatus = "IN_PROGRESS"
	StepStatusCompleted  StepStatus = "COMPLETED"
	StepStatusRejected   StepStatus = "REJECTED"
	StepStatusSkipped    StepStatus = "SKIPPED"
)

type StepComment struct {
	UserID    string    `json:"user" bson:"user"`
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type WorkflowStep struct {
	Order       int           `json:"order" bson:"order" validate:"min=0"`
	Name        string        `json:"name" bson:"name" validate:"required"`
	Type        StepType      `json:"type" bson:"type" validate:"required,oneof=REVIEW APPROVE SIGN NOTIFY"`
	Assignees   []string      `json:"assignees" bson:"assignees" validate:"required,min=1,dive,required"`
	Deadline    *time.Time    `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Status      StepStatus    `json:"status" bson:"status"`
	Comments    []StepComment `json:"comments" bson:"comments"`
	CompletedBy string        `json:"completedBy,omitempty" bson:"completedBy,omitempty"`
	CompletedAt *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// NotificationRule is stored with the workflow; delivery happens elsewhere.
type NotificationRule struct {
	Type       string   `json:"type" bson:"type" validate:"omitempty,oneof=EMAIL IN_APP SMS"`
	Recipients []string `json:"recipients" bson:"recipients"`
	Trigger    string   `json:"trigger" bson:"trigger" validate:"omitempty,oneof=STEP_START STEP_COMPLETE WORKFLOW_COMPLETE DEADLINE_APPROACHING"`
	Template   string   `json:"template,omitempty" bson:"template,omitempty"`
	Enabled    bool     `json:"enabled" bson:"enabled"`
}

type Workflow struct {
	Base          `bson:",inline"`
	WorkflowID    string             `json:"workflowId" bson:"workflowId" validate:"omitempty,max=64"`
	Name          string             `json:"name" bson:"name" validate:"required,max=200"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Type          WorkflowType       `json:"type" bson:"type" validate:"required,oneof=DOCUMENT_REVIEW DOCUMENT_APPROVAL DOCUMENT_SIGNATURE DOCUMENT_ARCHIVAL"`
	Status        WorkflowStatus     `json:"status" bson:"status"`
	DocumentID    string             `json:"documentId" bson:"documentId" validate:"required"`
	Steps         []WorkflowStep     `json:"steps" bson:"steps" validate:"required,min=1,dive"`
	CurrentStep   int                `json:"currentStep" bson:"currentStep"`
	Notifications []NotificationRule `json:"notifications" bson:"notifications" validate:"dive"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedBy     string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`

	// Derived on read.
	WorkflowStatus WorkflowStatus `json:"workflowStatus,omitempty" bson:"-"`
	Progress       float64        `json:"progress" bson:"-"`
}

// Initialize orders the steps and resets every step to PENDING.
func (w *Workflow) Initialize(actor string, now time.Time) error {
	sort.SliceStable(w.Steps, func(i, j int) bool { return w.Steps[i].Order < w.Steps[j].Order })
	for i := range w.Steps {
		if i > 0 && w.Steps[i].Order == w.Steps[i-1].Order {
			return etmf_errors.Validation("duplicate step order %d", w.Steps[i].Order)
		}
		w.Steps[i].Status = StepStatusPending
		w.Steps[i].CompletedBy = ""
		w.Steps[i].CompletedAt = nil
		if w.Steps[i].Comments == nil {
			w.Steps[i].Comments = []StepComment{}
		}
	}
	if w.Notifications == nil {
		w.Notifications = []NotificationRule{}
	}
	w.Status = WorkflowStatusDraft
	w.CreatedBy = actor
	w.UpdatedBy = actor
	w.CurrentStep = 0
	w.Touch(now)
	w.Evaluate()
	return nil
}

// DerivedStatus reports the workflow-level status computed from its steps.
func (w *Workflow) DerivedStatus() WorkflowStatus {
	switch w.Status {
	case WorkflowStatusArchived, WorkflowStatusDeprecated:
		return w.Status
	}
	if len(w.Steps) > 0 {
		allCompleted := true
		for _, s := range w.Steps {
			if s.Status != StepStatusCompleted {
				allCompleted = false
				break
			}
		}
		if allCompleted {
			return WorkflowStatusCompleted
		}
	}
	for _, s := range w.Steps {
		if s.Status == StepStatusRejected {
			return WorkflowStatusRejected
		}
	}
	for _, s := range w.Steps {
		if s.Status == StepStatusInProgress {
			return WorkflowStatusInProgress
		}
	}
	return WorkflowStatusPending
}

// ProgressPercent is the share of COMPLETED steps.
func (w *Workflow) ProgressPercent() float64 {
	if len(w.Steps) == 0 {
		return 0
	}
	completed := 0
	for _, s := range w.Steps {
		if s.Status == StepStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(w.Steps)) * 100
}

// Evaluate fills the derived fields for presentation.
func (w *Workflow) Evaluate() {
	w.WorkflowStatus = w.DerivedStatus()
	w.Progress = w.ProgressPercent()
}
