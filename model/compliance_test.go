// api/model/compliance_test.go
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

func TestSiteLifecycle(t *testing.T) {
	site := &model.Site{SiteID: "S-1", Name: "Berlin Charite"}
	site.Initialize("trial-1", "pm", now)
	assert.Equal(t, model.SiteStatusPlanned, site.Status)
	assert.Nil(t, site.EnrollmentProgress())

	require.NoError(t, site.UpdateEnrollment(40, 10, "pm", now))
	require.NotNil(t, site.EnrollmentProgress())
	assert.InDelta(t, 25.0, *site.EnrollmentProgress(), 0.001)
	assert.True(t, errors.Is(site.UpdateEnrollment(-1, 0, "pm", now), etmf_errors.ErrValidation))

	require.NoError(t, site.ChangeStatus(model.SiteStatusActive, "pm", now))
	require.NoError(t, site.SetActualEndDate(now.AddDate(0, 3, 0), "pm", now))
	assert.Equal(t, model.SiteStatusCompleted, site.Status)
	assert.True(t, errors.Is(site.ChangeStatus(model.SiteStatusActive, "pm", now), etmf_errors.ErrInvalidState))
}

func TestMilestoneEvaluate(t *testing.T) {
	m := &model.Milestone{MilestoneID: "M-1", Name: "First patient in", Type: "ENROLLMENT", DueDate: now.Add(-24 * time.Hour)}
	m.Initialize("trial-1", "pm", now)

	assert.True(t, m.IsOverdue)
	assert.Equal(t, "OVERDUE", m.CompletionStatus)
	assert.Equal(t, "MEDIUM", m.Priority)

	require.NoError(t, m.Start("pm", now))
	require.NoError(t, m.Complete(now, "pm", now))
	assert.False(t, m.IsOverdue)
	assert.Equal(t, "COMPLETED", m.CompletionStatus)
	require.NotNil(t, m.CompletedDate)

	assert.True(t, errors.Is(m.Cancel("pm", now), etmf_errors.ErrInvalidState))
	assert.True(t, errors.Is(m.Complete(now, "pm", now), etmf_errors.ErrInvalidState))
}

func TestDeviationWorkflow(t *testing.T) {
	d := &model.Deviation{DeviationID: "DEV-1", SiteID: "site-1", Type: "PROTOCOL", Severity: "MAJOR",
		Description: "Visit out of window", Impact: "Low"}
	d.Initialize("trial-1", "cra", now)
	assert.Equal(t, model.DeviationStatusDraft, d.Status)

	assert.True(t, errors.Is(d.AddReview(model.DeviationReview{UserID: "qa"}, now), etmf_errors.ErrInvalidState))

	require.NoError(t, d.Submit("cra", now))
	require.NoError(t, d.StartReview("qa", now))
	require.NoError(t, d.AddReview(model.DeviationReview{UserID: "qa", Status: "APPROVED"}, now))
	require.NoError(t, d.Approve("lead", "QUALITY_ASSURANCE", "ok", now))
	require.Len(t, d.Approvers, 1)
	assert.Equal(t, "APPROVED", d.Approvers[0].Status)

	require.NoError(t, d.Close("lead", now))
	assert.True(t, errors.Is(d.Close("lead", now), etmf_errors.ErrInvalidState))
}

func TestDeviationResolve(t *testing.T) {
	d := &model.Deviation{DeviationID: "DEV-2"}
	d.Initialize("trial-1", "cra", now)

	resolved := now.Add(time.Hour)
	assert.True(t, d.Resolve(resolved, "cra", now))
	assert.Equal(t, model.DeviationStatusClosed, d.Status)
	require.NotNil(t, d.ResolvedDate)
	assert.Equal(t, resolved, *d.ResolvedDate)

	trail := len(d.AuditTrail)
	assert.False(t, d.Resolve(now.Add(2*time.Hour), "cra", now))
	assert.Equal(t, resolved, *d.ResolvedDate)
	assert.Len(t, d.AuditTrail, trail)
}

func TestESignature(t *testing.T) {
	sig := &model.ESignature{ESignatureID: "ES-1", UserID: "signer", DocumentID: "doc-1", Type: "ELECTRONIC"}
	sig.Initialize("owner", now)
	assert.Equal(t, model.SignatureStatusPending, sig.Status)
	assert.False(t, sig.Valid)

	assert.True(t, errors.Is(sig.Sign("someone-else", "data", now), etmf_errors.ErrNotSigner))
	assert.True(t, errors.Is(sig.Sign("signer", "", now), etmf_errors.ErrValidation))

	require.NoError(t, sig.Sign("signer", "base64sig", now))
	assert.True(t, sig.IsValid(now))

	require.NoError(t, sig.SetExpiry(now.Add(time.Hour), "owner", now))
	assert.True(t, sig.Evaluate(now.Add(2*time.Hour)))
	assert.Equal(t, model.SignatureStatusExpired, sig.Status)
	assert.False(t, sig.Valid)

	assert.True(t, errors.Is(sig.Revoke("owner", now.Add(2*time.Hour)), etmf_errors.ErrInvalidState))
}

func TestRoleImmutability(t *testing.T) {
	role := &model.Role{RoleID: "R-1", Name: "Admin", Description: "System administrator", IsSystem: true}
	role.Initialize("root", now)
	assert.Equal(t, model.RoleLevelEnterprise, role.Level)
	assert.False(t, role.HasPermissions)

	perms := model.Permissions{Documents: model.DocumentPermissions{Read: true}}
	assert.True(t, errors.Is(role.UpdatePermissions(perms, "root", now), etmf_errors.ErrSystemRoleImmutable))
	assert.True(t, errors.Is(role.UpdatePermissions(model.Permissions{}, "root", now), etmf_errors.ErrSystemRoleImmutable))
	assert.True(t, errors.Is(role.SetStatus(model.RoleStatusInactive, "root", now), etmf_errors.ErrInvalidState))

	custom := &model.Role{RoleID: "R-2", Name: "Monitor", Description: "CRA"}
	custom.Initialize("root", now)
	require.NoError(t, custom.UpdatePermissions(perms, "root", now))
	assert.True(t, custom.HasPermissions)
	require.NoError(t, custom.SetStatus(model.RoleStatusDeprecated, "root", now))
	assert.True(t, errors.Is(custom.UpdatePermissions(perms, "root", now), etmf_errors.ErrInvalidState))
}
