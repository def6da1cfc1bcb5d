// api/model/site.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type SiteStatus string

const (
	SiteStatusPlanned    SiteStatus = "PLANNED"
	SiteStatusActive     SiteStatus = "ACTIVE"
	SiteStatusCompleted  SiteStatus = "COMPLETED"
	SiteStatusSuspended  SiteStatus = "SUSPENDED"
	SiteStatusTerminated SiteStatus = "TERMINATED"
)

var siteTransitions = map[SiteStatus][]SiteStatus{
	SiteStatusPlanned:   {SiteStatusActive, SiteStatusTerminated},
	SiteStatusActive:    {SiteStatusSuspended, SiteStatusCompleted, SiteStatusTerminated},
	SiteStatusSuspended: {SiteStatusActive, SiteStatusTerminated},
}

type Address struct {
	Street     string `json:"street,omitempty" bson:"street,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	Country    string `json:"country,omitempty" bson:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
}

type ContactInfo struct {
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Fax   string `json:"fax,omitempty" bson:"fax,omitempty"`
}

type Investigator struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	User  string `json:"user,omitempty" bson:"user,omitempty"`
}

type Site struct {
	Base             `bson:",inline"`
	SiteID           string         `json:"siteId" bson:"siteId" validate:"required,max=64"`
	TrialID          string         `json:"trialId" bson:"trialId"`
	Name             string         `json:"name" bson:"name" validate:"required,max=200"`
	Status           SiteStatus     `json:"status" bson:"status"`
	Address          Address        `json:"address" bson:"address"`
	ContactInfo      ContactInfo    `json:"contactInfo" bson:"contactInfo"`
	Investigators    []Investigator `json:"investigators" bson:"investigators" validate:"dive"`
	SiteType         string         `json:"siteType,omitempty" bson:"siteType,omitempty" validate:"omitempty,oneof=HOSPITAL CLINIC RESEARCH_CENTER PHYSICIAN_OFFICE OTHER"`
	StartDate        *time.Time     `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EstimatedEndDate *time.Time     `json:"estimatedEndDate,omitempty" bson:"estimatedEndDate,omitempty"`
	ActualEndDate    *time.Time     `json:"actualEndDate,omitempty" bson:"actualEndDate,omitempty"`
	EnrollmentTarget int            `json:"enrollmentTarget" bson:"enrollmentTarget" validate:"min=0"`
	ActualEnrollment int            `json:"actualEnrollment" bson:"actualEnrollment" validate:"min=0"`
	CreatedBy        string         `json:"createdBy" bson:"createdBy"`
	UpdatedBy        string         `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	AuditTrail       AuditTrail     `json:"auditTrail" bson:"auditTrail"`
}

func (s *Site) Initialize(trialID, actor string, now time.Time) {
	s.TrialID = trialID
	s.Status = SiteStatusPlanned
	s.CreatedBy = actor
	s.UpdatedBy = actor
	s.ActualEndDate = nil
	if s.Investigators == nil {
		s.Investigators = []Investigator{}
	}
	s.AuditTrail = AuditTrail{}
	s.AuditTrail.Append("SITE_CREATED", actor, now, nil)
	s.Touch(now)
}

func (s *Site) mutated(action, actor string, now time.Time, details map[string]interface{}) {
	s.UpdatedBy = actor
	s.AuditTrail.Append(action, actor, now, details)
	s.Touch(now)
}

func (s *Site) ChangeStatus(to SiteStatus, actor string, now time.Time) error {
	for _, allowed := range siteTransitions[s.Status] {
		if allowed == to {
			from := s.Status
			s.Status = to
			s.mutated("STATUS_CHANGE", actor, now, statusChange(string(from), string(to)))
			return nil
		}
	}
	return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
		"cannot move site from "+string(s.Status)+" to "+string(to))
}

// SetActualEndDate records the close-out date, which completes the site.
func (s *Site) SetActualEndDate(end time.Time, actor string, now time.Time) error {
	if s.Status == SiteStatusTerminated {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "site is terminated")
	}
	if s.StartDate != nil && end.Before(*s.StartDate) {
		return etmf_errors.Validation("actual end date cannot precede start date")
	}
	from := s.Status
	s.ActualEndDate = &end
	s.Status = SiteStatusCompleted
	s.mutated("SITE_ENDED", actor, now, statusChange(string(from), string(SiteStatusCompleted)))
	return nil
}

func (s *Site) UpdateEnrollment(target, actual int, actor string, now time.Time) error {
	if target < 0 || actual < 0 {
		return etmf_errors.Validation("enrollment figures cannot be negative")
	}
	s.EnrollmentTarget = target
	s.ActualEnrollment = actual
	s.mutated("ENROLLMENT_UPDATED", actor, now, map[string]interface{}{"target": target, "actual": actual})
	return nil
}

// EnrollmentProgress is nil until both figures are known.
func (s *Site) EnrollmentProgress() *float64 {
	if s.EnrollmentTarget == 0 || s.ActualEnrollment == 0 {
		return nil
	}
	p := float64(s.ActualEnrollment) / float64(s.EnrollmentTarget) * 100
	return &p
}
