// api/service/governance_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

func TestProtocolService(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ps := env.services.Protocol
	trial := createTrial(t, env, "ST-700")

	newProtocol := func(id, version string) model.Protocol {
		return model.Protocol{ProtocolID: id, Title: "Protocol " + id, Version: version,
			Design: model.ProtocolDesign{Type: "RANDOMIZED", Phases: []string{"PHASE_2"}}}
	}

	protocol, err := ps.Create(ctx, trial.ID, newProtocol("PR-1", "1.0"), "author")
	require.NoError(t, err)
	assert.Equal(t, trial.ID, protocol.TrialID)
	assert.Equal(t, model.ProtocolStatusDraft, protocol.Status)

	t.Run("Rejected", func(t *testing.T) {
		_, err := ps.Create(ctx, "missing", newProtocol("PR-2", "1.0"), "author")
		assert.True(t, errors.Is(err, etmf_errors.ErrTrialNotFound))

		_, err = ps.Create(ctx, trial.ID, newProtocol("PR-1", "1.0"), "author")
		assert.True(t, errors.Is(err, etmf_errors.ErrProtocolConflict))

		_, err = ps.Create(ctx, trial.ID, newProtocol("PR-3", "one"), "author")
		assert.True(t, errors.Is(err, etmf_errors.ErrInvalidVersion))

		bad := newProtocol("PR-4", "1.0")
		bad.Design.Phases = []string{"PHASE_9"}
		_, err = ps.Create(ctx, trial.ID, bad, "author")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
	})

	_, err = ps.ChangeStatus(ctx, protocol.ID, model.ProtocolStatusReview, "author")
	require.NoError(t, err)
	approved, err := ps.ChangeStatus(ctx, protocol.ID, model.ProtocolStatusApproved, "sponsor")
	require.NoError(t, err)
	assert.True(t, approved.Valid)

	_, err = ps.Amend(ctx, protocol.ID, model.Amendment{}, "sponsor")
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

	amended, err := ps.Amend(ctx, protocol.ID, model.Amendment{Description: "Widen inclusion age", Changes: []string{"Age 18-75"}}, "sponsor")
	require.NoError(t, err)
	assert.Equal(t, "1.1", amended.Version)
	assert.Equal(t, model.ProtocolStatusAmended, amended.Status)

	_, err = ps.RecordApproval(ctx, protocol.ID, model.RegulatoryApproval{Type: "DSMB", Status: "APPROVED"}, "cra")
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
	withApproval, err := ps.RecordApproval(ctx, protocol.ID, model.RegulatoryApproval{Type: "IRB", Status: "APPROVED", Reference: "IRB-22"}, "cra")
	require.NoError(t, err)
	require.Len(t, withApproval.Approvals, 1)

	_, err = ps.Create(ctx, trial.ID, newProtocol("PR-5", "2.0"), "author")
	require.NoError(t, err)

	all, err := ps.ListByTrial(ctx, trial.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	amendedOnly, err := ps.ListByTrial(ctx, trial.ID, model.ProtocolStatusAmended)
	require.NoError(t, err)
	require.Len(t, amendedOnly, 1)
	assert.Equal(t, "PR-1", amendedOnly[0].ProtocolID)
	assert.True(t, amendedOnly[0].Valid)

	got, err := ps.Get(ctx, protocol.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.1", got.Version)
	assert.True(t, got.Valid)
}

func createApprovedSOP(t *testing.T, env *testEnv, sopID, department string) *model.SOP {
	t.Helper()
	ctx := context.Background()
	sop, err := env.services.SOP.Create(ctx, model.SOP{SOPID: sopID, Title: "SOP " + sopID, Content: "Procedure",
		Department: department, Category: "TMF", Keywords: []string{"filing"}, Control: model.Control{Version: "1.0"}}, "qa")
	require.NoError(t, err)
	_, err = env.services.SOP.ChangeStatus(ctx, sop.ID, model.ControlledStatusReview, "qa")
	require.NoError(t, err)
	sop, err = env.services.SOP.ChangeStatus(ctx, sop.ID, model.ControlledStatusApproved, "head")
	require.NoError(t, err)
	return sop
}

func TestSOPService(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ss := env.services.SOP

	qc := createApprovedSOP(t, env, "SOP-1", "QA")
	filing := createApprovedSOP(t, env, "SOP-2", "QA")
	draft, err := ss.Create(ctx, model.SOP{SOPID: "SOP-3", Title: "Training", Content: "Steps", Department: "HR",
		Category: "TRAINING", Control: model.Control{Version: "0.1"}}, "hr")
	require.NoError(t, err)

	t.Run("Create", func(t *testing.T) {
		_, err := ss.Create(ctx, model.SOP{SOPID: "SOP-1", Title: "Copy", Content: "x", Department: "QA", Category: "TMF",
			Control: model.Control{Version: "1.0"}}, "qa")
		assert.True(t, errors.Is(err, etmf_errors.ErrSOPConflict))

		_, err = ss.Create(ctx, model.SOP{SOPID: "SOP-4", Title: "No version", Content: "x", Department: "QA", Category: "TMF"}, "qa")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

		_, err = ss.Create(ctx, model.SOP{SOPID: "SOP-5", Title: "Related", Content: "x", Department: "QA", Category: "TMF",
			Control: model.Control{Version: "1.0"}, RelatedSOPIDs: []string{"missing"}}, "qa")
		assert.True(t, errors.Is(err, etmf_errors.ErrSOPNotFound))
	})

	t.Run("Reviews", func(t *testing.T) {
		_, err := ss.AddReview(ctx, draft.ID, model.ControlledReview{Status: "APPROVED"}, "reviewer")
		assert.True(t, errors.Is(err, etmf_errors.ErrInvalidState))

		_, err = ss.ChangeStatus(ctx, draft.ID, model.ControlledStatusReview, "hr")
		require.NoError(t, err)
		_, err = ss.AddReview(ctx, draft.ID, model.ControlledReview{Status: "MAYBE"}, "reviewer")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
		reviewed, err := ss.AddReview(ctx, draft.ID, model.ControlledReview{Status: "APPROVED", Comments: "ok"}, "reviewer")
		require.NoError(t, err)
		require.Len(t, reviewed.Reviewers, 1)
		assert.Equal(t, "reviewer", reviewed.Reviewers[0].UserID)
	})

	t.Run("Links", func(t *testing.T) {
		_, err := ss.LinkSOP(ctx, qc.ID, qc.ID, "qa")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
		_, err = ss.LinkSOP(ctx, qc.ID, "missing", "qa")
		assert.True(t, errors.Is(err, etmf_errors.ErrSOPNotFound))

		linked, err := ss.LinkSOP(ctx, qc.ID, filing.ID, "qa")
		require.NoError(t, err)
		again, err := ss.LinkSOP(ctx, qc.ID, filing.ID, "qa")
		require.NoError(t, err)
		assert.Equal(t, linked.Revision, again.Revision)
		assert.Equal(t, []string{filing.ID}, again.RelatedSOPIDs)
	})

	expiry := env.clock.Now().Add(24 * time.Hour)
	withExpiry, err := ss.SetExpiry(ctx, filing.ID, &expiry, "qa")
	require.NoError(t, err)
	assert.True(t, withExpiry.Valid)

	approved, err := ss.List(ctx, model.SOPFilter{Department: "QA", Status: model.ControlledStatusApproved})
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	env.clock.Advance(48 * time.Hour)

	approved, err = ss.List(ctx, model.SOPFilter{Department: "QA", Status: model.ControlledStatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "SOP-1", approved[0].SOPID)

	deprecated, err := ss.List(ctx, model.SOPFilter{Status: model.ControlledStatusDeprecated})
	require.NoError(t, err)
	require.Len(t, deprecated, 1)
	assert.Equal(t, "SOP-2", deprecated[0].SOPID)
	assert.False(t, deprecated[0].Valid)

	byKeyword, err := ss.List(ctx, model.SOPFilter{Keyword: "filing"})
	require.NoError(t, err)
	assert.Len(t, byKeyword, 2)

	archived, err := ss.ChangeStatus(ctx, filing.ID, model.ControlledStatusArchived, "qa")
	require.NoError(t, err)
	assert.Equal(t, model.ControlledStatusArchived, archived.Status)
	stored, err := env.store.SOPs.Get(ctx, filing.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ControlledStatusArchived, stored.Status)
	assert.GreaterOrEqual(t, len(stored.AuditTrail), 5)
}

func TestTemplateService(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ts := env.services.Template

	tpl, err := ts.Create(ctx, model.DocumentTemplate{
		TemplateID: "TPL-1", Name: "Note to file", Type: "TRIAL", Category: "Correspondence",
		Content: "Study {{study}}: {{note}}", Control: model.Control{Version: "1.0"},
		Placeholders: []model.Placeholder{
			{Name: "study", Type: model.PlaceholderReference, Required: true},
			{Name: "note", Type: model.PlaceholderText, Required: true},
		},
	}, "author")
	require.NoError(t, err)

	t.Run("InvalidDeclarations", func(t *testing.T) {
		_, err := ts.Create(ctx, model.DocumentTemplate{TemplateID: "TPL-2", Name: "n", Type: "LETTER", Category: "c",
			Content: "x", Control: model.Control{Version: "1.0"}}, "author")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

		_, err = ts.Create(ctx, model.DocumentTemplate{TemplateID: "TPL-3", Name: "n", Type: "GENERAL", Category: "c",
			Content: "x", Control: model.Control{Version: "1.0"},
			Placeholders: []model.Placeholder{{Name: "p", Type: "COLOR"}}}, "author")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
	})

	values := map[string]string{"study": "ST-1", "note": "Monitor changed"}
	_, err = ts.Render(ctx, tpl.ID, values, "cra")
	assert.True(t, errors.Is(err, etmf_errors.ErrTemplateNotValid))

	_, err = ts.ChangeStatus(ctx, tpl.ID, model.ControlledStatusReview, "author")
	require.NoError(t, err)
	_, err = ts.AddReview(ctx, tpl.ID, model.ControlledReview{Status: "APPROVED"}, "qa")
	require.NoError(t, err)
	_, err = ts.ChangeStatus(ctx, tpl.ID, model.ControlledStatusApproved, "qa")
	require.NoError(t, err)

	content, err := ts.Render(ctx, tpl.ID, values, "cra")
	require.NoError(t, err)
	assert.Equal(t, "Study ST-1: Monitor changed", content)

	_, err = ts.Render(ctx, tpl.ID, map[string]string{"study": "ST-1"}, "cra")
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

	_, err = ts.Render(ctx, "missing", values, "cra")
	assert.True(t, errors.Is(err, etmf_errors.ErrTemplateNotFound))

	listed, err := ts.List(ctx, model.TemplateFilter{Type: "TRIAL", Status: model.ControlledStatusApproved})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Valid)

	past := env.clock.Now().Add(-time.Hour)
	_, err = ts.SetExpiry(ctx, tpl.ID, &past, "qa")
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

	soon := env.clock.Now().Add(time.Hour)
	_, err = ts.SetExpiry(ctx, tpl.ID, &soon, "qa")
	require.NoError(t, err)
	env.clock.Advance(2 * time.Hour)

	_, err = ts.Render(ctx, tpl.ID, values, "cra")
	assert.True(t, errors.Is(err, etmf_errors.ErrTemplateNotValid))

	got, err := ts.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ControlledStatusDeprecated, got.Status)
	assert.False(t, got.Valid)

	listed, err = ts.List(ctx, model.TemplateFilter{Status: model.ControlledStatusApproved})
	require.NoError(t, err)
	assert.Empty(t, listed)
}
