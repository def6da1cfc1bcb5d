// api/model/trial.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type TrialStatus string

const (
	TrialStatusPlanning   TrialStatus = "PLANNING"
	TrialStatusActive     TrialStatus = "ACTIVE"
	TrialStatusOnHold     TrialStatus = "ON_HOLD"
	TrialStatusCompleted  TrialStatus = "COMPLETED"
	TrialStatusTerminated TrialStatus = "TERMINATED"
	TrialStatusArchived   TrialStatus = "ARCHIVED"
)

var trialTransitions = map[TrialStatus][]TrialStatus{
	TrialStatusPlanning:   {TrialStatusActive, TrialStatusTerminated},
	TrialStatusActive:     {TrialStatusOnHold, TrialStatusCompleted, TrialStatusTerminated},
	TrialStatusOnHold:     {TrialStatusActive, TrialStatusTerminated},
	TrialStatusCompleted:  {TrialStatusArchived},
	TrialStatusTerminated: {TrialStatusArchived},
}

const (
	ActionTrialCreated      = "TRIAL_CREATED"
	ActionTrialStatus       = "STATUS_CHANGE"
	ActionTrialDates        = "DATES_UPDATED"
	ActionTeamMemberAdded   = "TEAM_MEMBER_ADDED"
	ActionTeamMemberRemoved = "TEAM_MEMBER_REMOVED"
	ActionCountryAdded      = "COUNTRY_ADDED"
	ActionSiteLinked        = "SITE_ADDED"
)

type CRO struct {
	Name           string `json:"name,omitempty" bson:"name,omitempty"`
	ContractNumber string `json:"contractNumber,omitempty" bson:"contractNumber,omitempty"`
}

type TeamMember struct {
	UserID     string    `json:"user" bson:"user" validate:"required"`
	Role       string    `json:"role" bson:"role" validate:"required,oneof=STUDY_MANAGER PROJECT_MANAGER QUALITY_ASSURANCE MONITOR_CRA COUNTRY_MANAGER INVESTIGATOR STUDY_COORDINATOR"`
	AssignedAt time.Time `json:"assignedAt" bson:"assignedAt"`
}

type CountryEntry struct {
	Code      string     `json:"code" bson:"code" validate:"required,len=2"`
	Name      string     `json:"name" bson:"name" validate:"required"`
	Status    string     `json:"status" bson:"status" validate:"omitempty,oneof=PLANNED ACTIVE COMPLETED TERMINATED"`
	StartDate *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

type Trial struct {
	Base                    `bson:",inline"`
	StudyID                 string         `json:"studyId" bson:"studyId" validate:"required,max=64"`
	ProtocolNumber          string         `json:"protocolNumber" bson:"protocolNumber" validate:"required,max=64"`
	Title                   string         `json:"title" bson:"title" validate:"required,max=200"`
	Description             string         `json:"description,omitempty" bson:"description,omitempty"`
	Phase                   string         `json:"phase,omitempty" bson:"phase,omitempty" validate:"omitempty,oneof=PHASE_1 PHASE_2 PHASE_3 PHASE_4 POST_MARKETING"`
	TherapeuticArea         string         `json:"therapeuticArea,omitempty" bson:"therapeuticArea,omitempty"`
	Indication              string         `json:"indication,omitempty" bson:"indication,omitempty"`
	Status                  TrialStatus    `json:"status" bson:"status"`
	StartDate               time.Time      `json:"startDate" bson:"startDate" validate:"required"`
	EndDate                 time.Time      `json:"endDate" bson:"endDate" validate:"required"`
	EstimatedCompletionDate *time.Time     `json:"estimatedCompletionDate,omitempty" bson:"estimatedCompletionDate,omitempty"`
	Sponsor                 string         `json:"sponsor,omitempty" bson:"sponsor,omitempty"`
	CRO                     CRO            `json:"cro" bson:"cro"`
	RegulatoryAuthority     string         `json:"regulatoryAuthority,omitempty" bson:"regulatoryAuthority,omitempty" validate:"omitempty,oneof=FDA EMA OTHER"`
	RetentionPeriod         int            `json:"retentionPeriod" bson:"retentionPeriod" validate:"min=0"`
	CreatedBy               string         `json:"createdBy" bson:"createdBy"`
	StudyTeam               []TeamMember   `json:"studyTeam" bson:"studyTeam"`
	Countries               []CountryEntry `json:"countries" bson:"countries"`
	SiteIDs                 []string       `json:"siteIds" bson:"siteIds"`
	AuditTrail              AuditTrail     `json:"auditTrail" bson:"auditTrail"`
}

// ValidateTrialDates enforces startDate < endDate.
func ValidateTrialDates(start, end time.Time) error {
	if !start.Before(end) {
		return etmf_errors.ErrTrialDates
	}
	return nil
}

func (t *Trial) Initialize(actor string, now time.Time) error {
	if err := ValidateTrialDates(t.StartDate, t.EndDate); err != nil {
		return err
	}
	t.Status = TrialStatusPlanning
	t.CreatedBy = actor
	if t.RetentionPeriod == 0 {
		t.RetentionPeriod = 25
	}
	if t.StudyTeam == nil {
		t.StudyTeam = []TeamMember{}
	}
	if t.Countries == nil {
		t.Countries = []CountryEntry{}
	}
	t.SiteIDs = []string{}
	t.AuditTrail = AuditTrail{}
	t.AuditTrail.Append(ActionTrialCreated, actor, now, nil)
	t.Touch(now)
	return nil
}

// IsActive reports whether now falls inside the trial's date range.
func (t *Trial) IsActive(now time.Time) bool {
	return !t.StartDate.After(now) && !t.EndDate.Before(now)
}

func (t *Trial) mutated(action, actor string, now time.Time, details map[string]interface{}) {
	t.AuditTrail.Append(action, actor, now, details)
	t.Touch(now)
}

func (t *Trial) ChangeStatus(to TrialStatus, actor string, now time.Time) error {
	for _, allowed := range trialTransitions[t.Status] {
		if allowed == to {
			from := t.Status
			t.Status = to
			t.mutated(ActionTrialStatus, actor, now, statusChange(string(from), string(to)))
			return nil
		}
	}
	return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
		"cannot move trial from "+string(t.Status)+" to "+string(to))
}

func (t *Trial) UpdateDates(start, end time.Time, actor string, now time.Time) error {
	if t.Status == TrialStatusArchived {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "trial is archived")
	}
	if err := ValidateTrialDates(start, end); err != nil {
		return err
	}
	t.StartDate = start
	t.EndDate = end
	t.mutated(ActionTrialDates, actor, now, map[string]interface{}{
		"startDate": start.Format(time.RFC3339),
		"endDate":   end.Format(time.RFC3339),
	})
	return nil
}

// AddTeamMember is idempotent per user.
func (t *Trial) AddTeamMember(member TeamMember, actor string, now time.Time) bool {
	for _, m := range t.StudyTeam {
		if m.UserID == member.UserID {
			return false
		}
	}
	member.AssignedAt = now
	t.StudyTeam = append(t.StudyTeam, member)
	t.mutated(ActionTeamMemberAdded, actor, now, map[string]interface{}{"user": member.UserID, "role": member.Role})
	return true
}

func (t *Trial) RemoveTeamMember(userID, actor string, now time.Time) bool {
	for i, m := range t.StudyTeam {
		if m.UserID == userID {
			t.StudyTeam = append(t.StudyTeam[:i], t.StudyTeam[i+1:]...)
			t.mutated(ActionTeamMemberRemoved, actor, now, map[string]interface{}{"user": userID})
			return true
		}
	}
	return false
}

// AddCountry is idempotent per country code.
func (t *Trial) AddCountry(country CountryEntry, actor string, now time.Time) bool {
	for _, c := range t.Countries {
		if c.Code == country.Code {
			return false
		}
	}
	if country.Status == "" {
		country.Status = "PLANNED"
	}
	t.Countries = append(t.Countries, country)
	t.mutated(ActionCountryAdded, actor, now, map[string]interface{}{"code": country.Code})
	return true
}

func (t *Trial) LinkSite(siteID, actor string, now time.Time) {
	if containsString(t.SiteIDs, siteID) {
		return
	}
	t.SiteIDs = append(t.SiteIDs, siteID)
	t.mutated(ActionSiteLinked, actor, now, map[string]interface{}{"site": siteID})
}
