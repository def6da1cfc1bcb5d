// api/model/controlled.go
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

// ControlledStatus is the lifecycle shared by SOPs and document templates.
type ControlledStatus string

const (
	ControlledStatusDraft      ControlledStatus = "DRAFT"
	ControlledStatusReview     ControlledStatus = "REVIEW"
	ControlledStatusApproved   ControlledStatus = "APPROVED"
	ControlledStatusArchived   ControlledStatus = "ARCHIVED"
	ControlledStatusDeprecated ControlledStatus = "DEPRECATED"
)

var controlledTransitions = map[ControlledStatus][]ControlledStatus{
	ControlledStatusDraft:      {ControlledStatusReview},
	ControlledStatusReview:     {ControlledStatusApproved, ControlledStatusDraft},
	ControlledStatusApproved:   {ControlledStatusDeprecated, ControlledStatusArchived},
	ControlledStatusDeprecated: {ControlledStatusArchived},
}

const (
	ActionControlledCreated = "CREATED"
	ActionControlledStatus  = "STATUS_CHANGE"
	ActionControlledExpiry  = "EXPIRY_UPDATED"
	ActionControlledReview  = "REVIEW_ADDED"
)

// ControlledReview is one reviewer or approver decision.
type ControlledReview struct {
	UserID     string    `json:"user" bson:"user"`
	Status     string    `json:"status" bson:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Comments   string    `json:"comments,omitempty" bson:"comments,omitempty"`
	ReviewedAt time.Time `json:"reviewedAt" bson:"reviewedAt"`
}

// Control holds the version, effective window and sign-off history of a controlled record.
// Valid is derived on read and never stored.
type Control struct {
	Version       string             `json:"version" bson:"version" validate:"required"`
	Status        ControlledStatus   `json:"status" bson:"status"`
	EffectiveDate *time.Time         `json:"effectiveDate,omitempty" bson:"effectiveDate,omitempty"`
	ExpiryDate    *time.Time         `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	Reviewers     []ControlledReview `json:"reviewers" bson:"reviewers"`
	Approvers     []ControlledReview `json:"approvers" bson:"approvers"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedBy     string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	AuditTrail    AuditTrail         `json:"auditTrail" bson:"auditTrail"`
	Valid         bool               `json:"isValid" bson:"-"`
}

// ParseVersion splits a MAJOR.MINOR version string.
func ParseVersion(v string) (major, minor int, err error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return 0, 0, etmf_errors.Wrap(etmf_errors.ErrValidation, etmf_errors.ErrInvalidVersion, "invalid version "+v)
	}
	if major, err = strconv.Atoi(parts[0]); err != nil || major < 0 {
		return 0, 0, etmf_errors.Wrap(etmf_errors.ErrValidation, etmf_errors.ErrInvalidVersion, "invalid version "+v)
	}
	if minor, err = strconv.Atoi(parts[1]); err != nil || minor < 0 {
		return 0, 0, etmf_errors.Wrap(etmf_errors.ErrValidation, etmf_errors.ErrInvalidVersion, "invalid version "+v)
	}
	return major, minor, nil
}

// NextMinorVersion returns v with its minor number incremented.
func NextMinorVersion(v string) (string, error) {
	major, minor, err := ParseVersion(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d", major, minor+1), nil
}

func (c *Control) initialize(actor string, now time.Time) error {
	if _, _, err := ParseVersion(c.Version); err != nil {
		return err
	}
	if c.EffectiveDate != nil && c.ExpiryDate != nil && !c.EffectiveDate.Before(*c.ExpiryDate) {
		return etmf_errors.Validation("effectiveDate must be before expiryDate")
	}
	c.Status = ControlledStatusDraft
	c.Reviewers = []ControlledReview{}
	c.Approvers = []ControlledReview{}
	c.CreatedBy = actor
	c.UpdatedBy = actor
	c.AuditTrail = AuditTrail{}
	c.AuditTrail.Append(ActionControlledCreated, actor, now, nil)
	c.expire(actor, now)
	c.Evaluate(now)
	return nil
}

// IsValidAt reports whether the record is approved and inside its effective window.
func (c *Control) IsValidAt(now time.Time) bool {
	if c.Status != ControlledStatusApproved {
		return false
	}
	if c.EffectiveDate != nil && c.EffectiveDate.After(now) {
		return false
	}
	return c.ExpiryDate == nil || !c.ExpiryDate.Before(now)
}

// EffectiveStatusAt is DEPRECATED once the expiry date has passed, unless the record is archived.
func (c *Control) EffectiveStatusAt(now time.Time) ControlledStatus {
	if c.expiredAt(now) && c.Status != ControlledStatusArchived {
		return ControlledStatusDeprecated
	}
	return c.Status
}

// Evaluate applies the effective status and validity for reads.
func (c *Control) Evaluate(now time.Time) {
	c.Status = c.EffectiveStatusAt(now)
	c.Valid = c.IsValidAt(now)
}

func (c *Control) expiredAt(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}

func (c *Control) changeStatus(kind string, to ControlledStatus, actor string, now time.Time) error {
	c.expire(actor, now)
	if c.Status == to && to == ControlledStatusDeprecated {
		return nil
	}
	allowed := false
	for _, s := range controlledTransitions[c.Status] {
		if s == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
			"cannot move "+kind+" from "+string(c.Status)+" to "+string(to))
	}

	switch to {
	case ControlledStatusApproved:
		for _, r := range c.Reviewers {
			if r.Status == "REJECTED" {
				return etmf_errors.Newf(etmf_errors.ErrInvalidState, "%s has a rejected review from %s", kind, r.UserID)
			}
		}
		if c.EffectiveDate == nil {
			effective := now
			c.EffectiveDate = &effective
		}
		c.Approvers = append(c.Approvers, ControlledReview{UserID: actor, Status: "APPROVED", ReviewedAt: now})
	case ControlledStatusDraft:
		c.Reviewers = []ControlledReview{}
	}

	from := c.Status
	c.Status = to
	c.UpdatedBy = actor
	c.AuditTrail.Append(ActionControlledStatus, actor, now, statusChange(string(from), string(to)))
	c.Evaluate(now)
	return nil
}

// expire deprecates a record whose expiry date has passed.
func (c *Control) expire(actor string, now time.Time) {
	if !c.expiredAt(now) {
		return
	}
	if c.Status == ControlledStatusArchived || c.Status == ControlledStatusDeprecated {
		return
	}
	from := c.Status
	c.Status = ControlledStatusDeprecated
	c.AuditTrail.Append(ActionControlledStatus, actor, now, statusChange(string(from), string(ControlledStatusDeprecated)))
}

func (c *Control) setExpiry(expiry *time.Time, actor string, now time.Time) error {
	if c.Status == ControlledStatusArchived {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "archived records cannot change expiry")
	}
	if expiry != nil && c.EffectiveDate != nil && !c.EffectiveDate.Before(*expiry) {
		return etmf_errors.Validation("expiryDate must be after effectiveDate")
	}
	c.ExpiryDate = expiry
	c.UpdatedBy = actor
	details := map[string]interface{}{"expiryDate": nil}
	if expiry != nil {
		details["expiryDate"] = expiry.Format(time.RFC3339)
	}
	c.AuditTrail.Append(ActionControlledExpiry, actor, now, details)
	c.expire(actor, now)
	c.Evaluate(now)
	return nil
}

func (c *Control) addReview(kind string, review ControlledReview, now time.Time) error {
	c.expire(review.UserID, now)
	if c.Status != ControlledStatusReview {
		return etmf_errors.Newf(etmf_errors.ErrInvalidState, "reviews are only accepted in %s, %s is %s",
			ControlledStatusReview, kind, c.Status)
	}
	if review.Status == "" {
		review.Status = "PENDING"
	}
	review.ReviewedAt = now
	c.Reviewers = append(c.Reviewers, review)
	c.UpdatedBy = review.UserID
	c.AuditTrail.Append(ActionControlledReview, review.UserID, now, map[string]interface{}{"decision": review.Status})
	return nil
}
