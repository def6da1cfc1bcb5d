// api/model/governance_test.go
package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

func TestNextMinorVersion(t *testing.T) {
	next, err := model.NextMinorVersion("2.9")
	require.NoError(t, err)
	assert.Equal(t, "2.10", next)

	for _, bad := range []string{"", "1", "1.2.3", "v1.0", "1.x", "-1.0"} {
		_, err := model.NextMinorVersion(bad)
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation), bad)
		assert.True(t, errors.Is(err, etmf_errors.ErrInvalidVersion), bad)
	}
}

func TestProtocolAmendment(t *testing.T) {
	p := &model.Protocol{ProtocolID: "PR-1", Title: "Dose finding", Version: "1.0",
		Design: model.ProtocolDesign{Type: "RANDOMIZED"}}
	require.NoError(t, p.Initialize("trial-1", "author", now))
	assert.Equal(t, model.ProtocolStatusDraft, p.Status)
	assert.False(t, p.Valid)

	amendment := model.Amendment{Description: "Extend visit window"}
	assert.True(t, errors.Is(p.Amend(amendment, "author", now), etmf_errors.ErrInvalidState))
	assert.True(t, errors.Is(p.ChangeStatus(model.ProtocolStatusAmended, "author", now), etmf_errors.ErrInvalidState))

	require.NoError(t, p.ChangeStatus(model.ProtocolStatusReview, "author", now))
	require.NoError(t, p.ChangeStatus(model.ProtocolStatusApproved, "sponsor", now))
	assert.True(t, p.Valid)

	require.NoError(t, p.Amend(amendment, "sponsor", now))
	require.NoError(t, p.Amend(model.Amendment{Description: "Add secondary endpoint"}, "sponsor", now))
	assert.Equal(t, model.ProtocolStatusAmended, p.Status)
	assert.Equal(t, "1.2", p.Version)
	require.Len(t, p.Amendments, 2)
	assert.Equal(t, "1.1", p.Amendments[0].Version)
	assert.Equal(t, "sponsor", p.Amendments[1].ApprovedBy)
	assert.True(t, p.Valid)

	require.NoError(t, p.RecordApproval(model.RegulatoryApproval{Type: "IRB", Status: "PENDING"}, "cra", now))
	require.NoError(t, p.RecordApproval(model.RegulatoryApproval{Type: "IRB", Status: "APPROVED"}, "cra", now))
	require.Len(t, p.Approvals, 1)
	assert.Equal(t, "APPROVED", p.Approvals[0].Status)

	require.NoError(t, p.ChangeStatus(model.ProtocolStatusArchived, "author", now))
	assert.False(t, p.Valid)
	assert.True(t, errors.Is(p.RecordApproval(model.RegulatoryApproval{Type: "EC", Status: "APPROVED"}, "cra", now), etmf_errors.ErrInvalidState))
}

func TestSOPLifecycle(t *testing.T) {
	newSOP := func() *model.SOP {
		sop := &model.SOP{SOPID: "SOP-1", Title: "Document QC", Content: "Steps", Department: "QA", Category: "TMF",
			Control: model.Control{Version: "1.0"}}
		require.NoError(t, sop.Initialize("qa", now))
		return sop
	}

	t.Run("RejectedReviewBlocksApproval", func(t *testing.T) {
		sop := newSOP()
		assert.True(t, errors.Is(sop.AddReview(model.ControlledReview{UserID: "r1"}, now), etmf_errors.ErrInvalidState))

		require.NoError(t, sop.ChangeStatus(model.ControlledStatusReview, "qa", now))
		require.NoError(t, sop.AddReview(model.ControlledReview{UserID: "r1", Status: "REJECTED"}, now))
		assert.True(t, errors.Is(sop.ChangeStatus(model.ControlledStatusApproved, "head", now), etmf_errors.ErrInvalidState))

		require.NoError(t, sop.ChangeStatus(model.ControlledStatusDraft, "qa", now))
		assert.Empty(t, sop.Reviewers)
		require.NoError(t, sop.ChangeStatus(model.ControlledStatusReview, "qa", now))
		require.NoError(t, sop.ChangeStatus(model.ControlledStatusApproved, "head", now))
		require.NotNil(t, sop.EffectiveDate)
		assert.True(t, sop.Valid)
		require.Len(t, sop.Approvers, 1)
		assert.Equal(t, "head", sop.Approvers[0].UserID)
	})

	t.Run("PastExpiryDeprecates", func(t *testing.T) {
		sop := newSOP()
		require.NoError(t, sop.ChangeStatus(model.ControlledStatusReview, "qa", now))
		require.NoError(t, sop.ChangeStatus(model.ControlledStatusApproved, "head", now))

		past := now.Add(-time.Hour)
		assert.True(t, errors.Is(sop.SetExpiry(&past, "qa", now), etmf_errors.ErrValidation))

		later := now.Add(24 * time.Hour)
		require.NoError(t, sop.SetExpiry(&later, "qa", now))
		assert.Equal(t, model.ControlledStatusApproved, sop.Status)

		afterExpiry := now.Add(48 * time.Hour)
		assert.Equal(t, model.ControlledStatusDeprecated, sop.EffectiveStatusAt(afterExpiry))
		assert.False(t, sop.IsValidAt(afterExpiry))

		require.NoError(t, sop.ChangeStatus(model.ControlledStatusArchived, "qa", afterExpiry))
		assert.Equal(t, model.ControlledStatusArchived, sop.Status)
		assert.Equal(t, model.ControlledStatusArchived, sop.EffectiveStatusAt(afterExpiry))
		assert.True(t, errors.Is(sop.SetExpiry(nil, "qa", afterExpiry), etmf_errors.ErrInvalidState))
	})

	t.Run("DraftWithPastExpiry", func(t *testing.T) {
		sop := newSOP()
		past := now.Add(-time.Hour)
		require.NoError(t, sop.SetExpiry(&past, "qa", now))
		assert.Equal(t, model.ControlledStatusDeprecated, sop.Status)
		assert.False(t, sop.Valid)
	})

	t.Run("LinkIsIdempotent", func(t *testing.T) {
		sop := newSOP()
		sop.ID = "sop-a"
		assert.True(t, sop.LinkSOP("sop-b", "qa", now))
		assert.False(t, sop.LinkSOP("sop-b", "qa", now))
		assert.False(t, sop.LinkSOP("sop-a", "qa", now))
		assert.Equal(t, []string{"sop-b"}, sop.RelatedSOPIDs)
	})
}

func approvedTemplate(t *testing.T, placeholders ...model.Placeholder) *model.DocumentTemplate {
	t.Helper()
	tpl := &model.DocumentTemplate{TemplateID: "TPL-1", Name: "Site visit report", Type: "SITE", Category: "Monitoring",
		Content: "Site {{site}} visited on {{date}} by {{monitor}}. Subjects: {{subjects}}. Arms: {{arms}}.",
		Control: model.Control{Version: "1.0"}, Placeholders: placeholders}
	require.NoError(t, tpl.Initialize("author", now))
	require.NoError(t, tpl.ChangeStatus(model.ControlledStatusReview, "author", now))
	require.NoError(t, tpl.ChangeStatus(model.ControlledStatusApproved, "qa", now))
	return tpl
}

func TestTemplateRender(t *testing.T) {
	ten := 10.0
	tpl := approvedTemplate(t,
		model.Placeholder{Name: "site", Type: model.PlaceholderText, Required: true, Validation: model.PlaceholderRule{Pattern: `^S-\d+$`}},
		model.Placeholder{Name: "date", Type: model.PlaceholderDate, Required: true},
		model.Placeholder{Name: "monitor", Type: model.PlaceholderSelect, Options: []string{"Alice", "Bob"}},
		model.Placeholder{Name: "subjects", Type: model.PlaceholderNumber, Validation: model.PlaceholderRule{Max: &ten}},
		model.Placeholder{Name: "arms", Type: model.PlaceholderMultiSelect, Options: []string{"A", "B", "C"}},
	)

	out, err := tpl.Render(map[string]string{
		"site": "S-12", "date": "2024-03-01", "monitor": "Bob", "subjects": "7", "arms": "A, C",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "Site S-12 visited on 2024-03-01 by Bob. Subjects: 7. Arms: A, C.", out)

	out, err = tpl.Render(map[string]string{"site": "S-1", "date": "2024-03-01"}, now)
	require.NoError(t, err)
	assert.Equal(t, "Site S-1 visited on 2024-03-01 by . Subjects: . Arms: .", out)

	for name, values := range map[string]map[string]string{
		"MissingRequired": {"site": "S-1"},
		"PatternMismatch": {"site": "12", "date": "2024-03-01"},
		"BadDate":         {"site": "S-1", "date": "March"},
		"NotAnOption":     {"site": "S-1", "date": "2024-03-01", "monitor": "Carol"},
		"AboveMax":        {"site": "S-1", "date": "2024-03-01", "subjects": "11"},
		"NotANumber":      {"site": "S-1", "date": "2024-03-01", "subjects": "many"},
		"BadMultiSelect":  {"site": "S-1", "date": "2024-03-01", "arms": "A,D"},
		"Undeclared":      {"site": "S-1", "date": "2024-03-01", "sponsor": "Acme"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tpl.Render(values, now)
			assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
		})
	}

	t.Run("ExpiredTemplate", func(t *testing.T) {
		later := now.Add(time.Hour)
		require.NoError(t, tpl.SetExpiry(&later, "qa", now))
		_, err := tpl.Render(map[string]string{"site": "S-1", "date": "2024-03-01"}, now.Add(2*time.Hour))
		assert.True(t, errors.Is(err, etmf_errors.ErrTemplateNotValid))
	})
}

func TestTemplatePlaceholderDeclarations(t *testing.T) {
	for name, placeholders := range map[string][]model.Placeholder{
		"Duplicate":      {{Name: "a", Type: model.PlaceholderText}, {Name: "a", Type: model.PlaceholderDate}},
		"SelectNoOption": {{Name: "arm", Type: model.PlaceholderSelect}},
		"BadPattern":     {{Name: "id", Type: model.PlaceholderText, Validation: model.PlaceholderRule{Pattern: "("}}},
	} {
		t.Run(name, func(t *testing.T) {
			tpl := &model.DocumentTemplate{TemplateID: "TPL-2", Name: "n", Type: "GENERAL", Category: "c", Content: "x",
				Control: model.Control{Version: "1.0"}, Placeholders: placeholders}
			assert.True(t, errors.Is(tpl.Initialize("author", now), etmf_errors.ErrValidation))
		})
	}

	draft := &model.DocumentTemplate{TemplateID: "TPL-3", Name: "n", Type: "GENERAL", Category: "c", Content: "x",
		Control: model.Control{Version: "1.0"}}
	require.NoError(t, draft.Initialize("author", now))
	_, err := draft.Render(nil, now)
	assert.True(t, errors.Is(err, etmf_errors.ErrTemplateNotValid))
}
