// api/model/sop.go
package model

import "time"

type SOPAttachment struct {
	Name string `json:"name" bson:"name" validate:"required"`
	URL  string `json:"url" bson:"url" validate:"required,url"`
	Type string `json:"type,omitempty" bson:"type,omitempty"`
	Size int64  `json:"size,omitempty" bson:"size,omitempty" validate:"min=0"`
}

// SOP is a standard operating procedure under version and approval control.
type SOP struct {
	Base          `bson:",inline"`
	Control       `bson:",inline"`
	SOPID         string          `json:"sopId" bson:"sopId" validate:"required,max=64"`
	Title         string          `json:"title" bson:"title" validate:"required,max=200"`
	Description   string          `json:"description,omitempty" bson:"description,omitempty"`
	Content       string          `json:"content" bson:"content" validate:"required"`
	Department    string          `json:"department" bson:"department" validate:"required"`
	Category      string          `json:"category" bson:"category" validate:"required"`
	Keywords      []string        `json:"keywords" bson:"keywords"`
	Attachments   []SOPAttachment `json:"attachments" bson:"attachments" validate:"dive"`
	RelatedSOPIDs []string        `json:"relatedSops" bson:"relatedSops"`
}

// SOPFilter narrows SOP listings. Empty fields match everything.
type SOPFilter struct {
	Department string
	Category   string
	Status     ControlledStatus
	Keyword    string
}

func (s *SOP) Initialize(actor string, now time.Time) error {
	if err := s.Control.initialize(actor, now); err != nil {
		return err
	}
	if s.Keywords == nil {
		s.Keywords = []string{}
	}
	if s.Attachments == nil {
		s.Attachments = []SOPAttachment{}
	}
	if s.RelatedSOPIDs == nil {
		s.RelatedSOPIDs = []string{}
	}
	s.Touch(now)
	return nil
}

func (s *SOP) ChangeStatus(to ControlledStatus, actor string, now time.Time) error {
	if err := s.Control.changeStatus("SOP", to, actor, now); err != nil {
		return err
	}
	s.Touch(now)
	return nil
}

// SetExpiry deprecates the SOP when expiry is already in the past.
func (s *SOP) SetExpiry(expiry *time.Time, actor string, now time.Time) error {
	if err := s.Control.setExpiry(expiry, actor, now); err != nil {
		return err
	}
	s.Touch(now)
	return nil
}

func (s *SOP) AddReview(review ControlledReview, now time.Time) error {
	if err := s.Control.addReview("SOP", review, now); err != nil {
		return err
	}
	s.Touch(now)
	return nil
}

// LinkSOP is idempotent and ignores self references.
func (s *SOP) LinkSOP(id, actor string, now time.Time) bool {
	if id == s.ID || containsString(s.RelatedSOPIDs, id) {
		return false
	}
	s.RelatedSOPIDs = append(s.RelatedSOPIDs, id)
	s.UpdatedBy = actor
	s.AuditTrail.Append("SOP_LINKED", actor, now, map[string]interface{}{"sop": id})
	s.Touch(now)
	return true
}
