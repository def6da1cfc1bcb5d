// api/model/template.go
package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

type PlaceholderType string

const (
	PlaceholderText        PlaceholderType = "TEXT"
	PlaceholderDate        PlaceholderType = "DATE"
	PlaceholderNumber      PlaceholderType = "NUMBER"
	PlaceholderSelect      PlaceholderType = "SELECT"
	PlaceholderMultiSelect PlaceholderType = "MULTISELECT"
	PlaceholderReference   PlaceholderType = "REFERENCE"
)

type PlaceholderRule struct {
	Pattern string   `json:"pattern,omitempty" bson:"pattern,omitempty"`
	Min     *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" bson:"max,omitempty"`
}

// Placeholder is a named slot written as {{name}} in template content.
type Placeholder struct {
	Name        string          `json:"name" bson:"name" validate:"required,max=64"`
	Type        PlaceholderType `json:"type" bson:"type" validate:"required,oneof=TEXT DATE NUMBER SELECT MULTISELECT REFERENCE"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Required    bool            `json:"required" bson:"required"`
	Options     []string        `json:"options,omitempty" bson:"options,omitempty"`
	Validation  PlaceholderRule `json:"validation" bson:"validation"`
}

// DocumentTemplate is an approved skeleton new trial documents are rendered from.
type DocumentTemplate struct {
	Base         `bson:",inline"`
	Control      `bson:",inline"`
	TemplateID   string                 `json:"templateId" bson:"templateId" validate:"required,max=64"`
	Name         string                 `json:"name" bson:"name" validate:"required,max=200"`
	Description  string                 `json:"description,omitempty" bson:"description,omitempty"`
	Type         string                 `json:"type" bson:"type" validate:"required,oneof=TRIAL SITE SUBJECT SAFETY QUALITY GENERAL"`
	Category     string                 `json:"category" bson:"category" validate:"required"`
	Content      string                 `json:"content" bson:"content" validate:"required"`
	Placeholders []Placeholder          `json:"placeholders" bson:"placeholders" validate:"dive"`
	Metadata     map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

type TemplateFilter struct {
	Type     string
	Category string
	Status   ControlledStatus
}

func (t *DocumentTemplate) Initialize(actor string, now time.Time) error {
	if err := t.checkPlaceholders(); err != nil {
		return err
	}
	if err := t.Control.initialize(actor, now); err != nil {
		return err
	}
	if t.Placeholders == nil {
		t.Placeholders = []Placeholder{}
	}
	t.Touch(now)
	return nil
}

func (t *DocumentTemplate) checkPlaceholders() error {
	seen := make(map[string]bool, len(t.Placeholders))
	for _, p := range t.Placeholders {
		if seen[p.Name] {
			return etmf_errors.Validation("placeholder %s is declared twice", p.Name)
		}
		seen[p.Name] = true
		if (p.Type == PlaceholderSelect || p.Type == PlaceholderMultiSelect) && len(p.Options) == 0 {
			return etmf_errors.Validation("placeholder %s needs options", p.Name)
		}
		if p.Validation.Pattern != "" {
			if _, err := regexp.Compile(p.Validation.Pattern); err != nil {
				return etmf_errors.Validation("placeholder %s has an invalid pattern: %v", p.Name, err)
			}
		}
	}
	return nil
}

func (t *DocumentTemplate) ChangeStatus(to ControlledStatus, actor string, now time.Time) error {
	if err := t.Control.changeStatus("template", to, actor, now); err != nil {
		return err
	}
	t.Touch(now)
	return nil
}

// SetExpiry deprecates the template when expiry is already in the past.
func (t *DocumentTemplate) SetExpiry(expiry *time.Time, actor string, now time.Time) error {
	if err := t.Control.setExpiry(expiry, actor, now); err != nil {
		return err
	}
	t.Touch(now)
	return nil
}

func (t *DocumentTemplate) AddReview(review ControlledReview, now time.Time) error {
	if err := t.Control.addReview("template", review, now); err != nil {
		return err
	}
	t.Touch(now)
	return nil
}

// Render fills every {{name}} slot in the content. Values must satisfy their placeholder's
// type and rules, and names that are not declared are rejected.
func (t *DocumentTemplate) Render(values map[string]string, now time.Time) (string, error) {
	if !t.IsValidAt(now) {
		return "", etmf_errors.ErrTemplateNotValid
	}

	declared := make(map[string]bool, len(t.Placeholders))
	pairs := make([]string, 0, 2*len(t.Placeholders))
	for _, p := range t.Placeholders {
		declared[p.Name] = true
		value, ok := values[p.Name]
		if !ok || value == "" {
			if p.Required {
				return "", etmf_errors.Validation("placeholder %s is required", p.Name)
			}
			value = ""
		} else if err := p.check(value); err != nil {
			return "", err
		}
		pairs = append(pairs, "{{"+p.Name+"}}", value)
	}
	for name := range values {
		if !declared[name] {
			return "", etmf_errors.Validation("unknown placeholder %s", name)
		}
	}
	return strings.NewReplacer(pairs...).Replace(t.Content), nil
}

func (p Placeholder) check(value string) error {
	switch p.Type {
	case PlaceholderNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return etmf_errors.Validation("placeholder %s must be a number", p.Name)
		}
		if p.Validation.Min != nil && n < *p.Validation.Min {
			return etmf_errors.Validation("placeholder %s must be at least %g", p.Name, *p.Validation.Min)
		}
		if p.Validation.Max != nil && n > *p.Validation.Max {
			return etmf_errors.Validation("placeholder %s must be at most %g", p.Name, *p.Validation.Max)
		}
	case PlaceholderDate:
		if _, err := helper_util.ParseTime(value); err != nil {
			return etmf_errors.Validation("placeholder %s must be a date", p.Name)
		}
	case PlaceholderSelect:
		if !containsString(p.Options, value) {
			return etmf_errors.Validation("placeholder %s must be one of %s", p.Name, strings.Join(p.Options, ", "))
		}
	case PlaceholderMultiSelect:
		for _, v := range strings.Split(value, ",") {
			if !containsString(p.Options, strings.TrimSpace(v)) {
				return etmf_errors.Validation("placeholder %s must be one of %s", p.Name, strings.Join(p.Options, ", "))
			}
		}
	}
	if p.Validation.Pattern != "" {
		if ok, _ := regexp.MatchString(p.Validation.Pattern, value); !ok {
			return etmf_errors.Validation("placeholder %s does not match %s", p.Name, p.Validation.Pattern)
		}
	}
	return nil
}
