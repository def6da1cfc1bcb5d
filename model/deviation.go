// api/model/deviation.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type DeviationStatus string

const (
	DeviationStatusDraft     DeviationStatus = "DRAFT"
	DeviationStatusSubmitted DeviationStatus = "SUBMITTED"
	DeviationStatusReview    DeviationStatus = "REVIEW"
	DeviationStatusApproved  DeviationStatus = "APPROVED"
	DeviationStatusRejected  DeviationStatus = "REJECTED"
	DeviationStatusClosed    DeviationStatus = "CLOSED"
)

type CorrectiveAction struct {
	Planned       string `json:"planned,omitempty" bson:"planned,omitempty"`
	Implemented   string `json:"implemented,omitempty" bson:"implemented,omitempty"`
	Effectiveness string `json:"effectiveness,omitempty" bson:"effectiveness,omitempty"`
}

// DeviationReview is one reviewer or approver decision.
type DeviationReview struct {
	UserID     string    `json:"user" bson:"user"`
	Role       string    `json:"role,omitempty" bson:"role,omitempty"`
	Status     string    `json:"status" bson:"status" validate:"oneof=PENDING APPROVED REJECTED"`
	Comments   string    `json:"comments,omitempty" bson:"comments,omitempty"`
	ReviewedAt time.Time `json:"reviewedAt" bson:"reviewedAt"`
}

type Deviation struct {
	Base             `bson:",inline"`
	DeviationID      string            `json:"deviationId" bson:"deviationId" validate:"required,max=64"`
	TrialID          string            `json:"trialId" bson:"trialId"`
	SiteID           string            `json:"siteId" bson:"siteId" validate:"required"`
	SubjectID        string            `json:"subject,omitempty" bson:"subject,omitempty"`
	Type             string            `json:"type" bson:"type" validate:"required,oneof=PROTOCOL PROCEDURE REGULATORY SAFETY QUALITY OTHER"`
	Severity         string            `json:"severity" bson:"severity" validate:"required,oneof=MINOR MODERATE MAJOR CRITICAL"`
	Status           DeviationStatus   `json:"status" bson:"status"`
	Description      string            `json:"description" bson:"description" validate:"required"`
	Impact           string            `json:"impact" bson:"impact" validate:"required"`
	RootCause        string            `json:"rootCause,omitempty" bson:"rootCause,omitempty"`
	CorrectiveAction CorrectiveAction  `json:"correctiveAction" bson:"correctiveAction"`
	PreventiveAction string            `json:"preventiveAction,omitempty" bson:"preventiveAction,omitempty"`
	ReportedDate     time.Time         `json:"reportedDate" bson:"reportedDate"`
	DiscoveredDate   *time.Time        `json:"discoveredDate,omitempty" bson:"discoveredDate,omitempty"`
	ResolvedDate     *time.Time        `json:"resolvedDate,omitempty" bson:"resolvedDate,omitempty"`
	Reviewers        []DeviationReview `json:"reviewers" bson:"reviewers"`
	Approvers        []DeviationReview `json:"approvers" bson:"approvers"`
	CreatedBy        string            `json:"createdBy" bson:"createdBy"`
	UpdatedBy        string            `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	AuditTrail       AuditTrail        `json:"auditTrail" bson:"auditTrail"`
}

func (d *Deviation) Initialize(trialID, actor string, now time.Time) {
	d.TrialID = trialID
	d.Status = DeviationStatusDraft
	d.ResolvedDate = nil
	if d.ReportedDate.IsZero() {
		d.ReportedDate = now
	}
	d.Reviewers = []DeviationReview{}
	d.Approvers = []DeviationReview{}
	d.CreatedBy = actor
	d.UpdatedBy = actor
	d.AuditTrail = AuditTrail{}
	d.AuditTrail.Append("DEVIATION_CREATED", actor, now, nil)
	d.Touch(now)
}

func (d *Deviation) move(action string, to DeviationStatus, actor string, now time.Time, from ...DeviationStatus) error {
	for _, s := range from {
		if s == d.Status {
			d.Status = to
			d.UpdatedBy = actor
			d.AuditTrail.Append(action, actor, now, statusChange(string(s), string(to)))
			d.Touch(now)
			return nil
		}
	}
	return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
		"cannot move deviation from "+string(d.Status)+" to "+string(to))
}

func (d *Deviation) Submit(actor string, now time.Time) error {
	return d.move("SUBMIT", DeviationStatusSubmitted, actor, now, DeviationStatusDraft)
}

func (d *Deviation) StartReview(actor string, now time.Time) error {
	return d.move("START_REVIEW", DeviationStatusReview, actor, now, DeviationStatusSubmitted)
}

// AddReview appends a reviewer decision while the deviation is under review.
func (d *Deviation) AddReview(review DeviationReview, now time.Time) error {
	if d.Status != DeviationStatusReview {
		return etmf_errors.Newf(etmf_errors.ErrInvalidState, "reviews are only accepted in %s, deviation is %s",
			DeviationStatusReview, d.Status)
	}
	if review.Status == "" {
		review.Status = "PENDING"
	}
	review.ReviewedAt = now
	d.Reviewers = append(d.Reviewers, review)
	d.UpdatedBy = review.UserID
	d.AuditTrail.Append("REVIEW_ADDED", review.UserID, now, map[string]interface{}{"decision": review.Status})
	d.Touch(now)
	return nil
}

func (d *Deviation) decide(action string, to DeviationStatus, actor, role, comments string, now time.Time) error {
	if err := d.move(action, to, actor, now, DeviationStatusReview); err != nil {
		return err
	}
	decision := "APPROVED"
	if to == DeviationStatusRejected {
		decision = "REJECTED"
	}
	d.Approvers = append(d.Approvers, DeviationReview{
		UserID:     actor,
		Role:       role,
		Status:     decision,
		Comments:   comments,
		ReviewedAt: now,
	})
	return nil
}

func (d *Deviation) Approve(actor, role, comments string, now time.Time) error {
	return d.decide("APPROVE", DeviationStatusApproved, actor, role, comments, now)
}

func (d *Deviation) Reject(actor, role, comments string, now time.Time) error {
	return d.decide("REJECT", DeviationStatusRejected, actor, role, comments, now)
}

func (d *Deviation) Close(actor string, now time.Time) error {
	return d.move("CLOSE", DeviationStatusClosed, actor, now, DeviationStatusApproved, DeviationStatusRejected)
}

// Resolve sets resolvedDate and closes the deviation from any state.
// It reports false and changes nothing when the deviation is already closed.
func (d *Deviation) Resolve(resolvedDate time.Time, actor string, now time.Time) bool {
	if d.Status == DeviationStatusClosed {
		return false
	}
	from := d.Status
	d.ResolvedDate = &resolvedDate
	d.Status = DeviationStatusClosed
	d.UpdatedBy = actor
	details := statusChange(string(from), string(DeviationStatusClosed))
	details["resolvedDate"] = resolvedDate.Format(time.RFC3339)
	d.AuditTrail.Append("RESOLVE", actor, now, details)
	d.Touch(now)
	return true
}
