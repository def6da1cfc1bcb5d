// api/service/trial_service_test.go
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

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func newTrial(studyID, protocol string, start time.Time) model.Trial {
	return model.Trial{
		StudyID:        studyID,
		ProtocolNumber: protocol,
		Title:          "Study " + studyID,
		Phase:          "PHASE_2",
		StartDate:      start,
		EndDate:        start.AddDate(2, 0, 0),
	}
}

func createTrial(t *testing.T, env *testEnv, studyID string) *model.Trial {
	t.Helper()
	trial, err := env.services.Trial.Create(context.Background(), newTrial(studyID, "PRT-"+studyID, day(2024, 1, 15)), "manager")
	require.NoError(t, err)
	return trial
}

func TestTrialCreate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ts := env.services.Trial

	trial := createTrial(t, env, "ST-100")
	assert.Equal(t, model.TrialStatusPlanning, trial.Status)
	assert.Equal(t, 25, trial.RetentionPeriod)
	assert.Empty(t, trial.SiteIDs)

	t.Run("InvertedDates", func(t *testing.T) {
		bad := newTrial("ST-101", "PRT-101", day(2024, 5, 1))
		bad.EndDate = day(2024, 4, 1)
		_, err := ts.Create(ctx, bad, "manager")
		assert.True(t, errors.Is(err, etmf_errors.ErrTrialDates))
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
	})

	t.Run("EqualDates", func(t *testing.T) {
		bad := newTrial("ST-102", "PRT-102", day(2024, 5, 1))
		bad.EndDate = bad.StartDate
		_, err := ts.Create(ctx, bad, "manager")
		assert.True(t, errors.Is(err, etmf_errors.ErrTrialDates))
	})

	t.Run("DuplicateStudyID", func(t *testing.T) {
		_, err := ts.Create(ctx, newTrial("ST-100", "PRT-other", day(2024, 1, 1)), "manager")
		assert.True(t, errors.Is(err, etmf_errors.ErrTrialConflict))
	})

	t.Run("GetByStudyID", func(t *testing.T) {
		found, err := ts.GetByStudyID(ctx, "ST-100")
		require.NoError(t, err)
		assert.Equal(t, trial.ID, found.ID)

		_, err = ts.GetByStudyID(ctx, "ST-404")
		assert.True(t, errors.Is(err, etmf_errors.ErrTrialNotFound))
	})
}

func TestTrialList(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ts := env.services.Trial

	_, err := ts.Create(ctx, newTrial("ST-1", "P-1", day(2023, 1, 1)), "manager")
	require.NoError(t, err)
	second, err := ts.Create(ctx, newTrial("ST-2", "P-2", day(2024, 1, 1)), "manager")
	require.NoError(t, err)
	_, err = ts.ChangeStatus(ctx, second.ID, model.TrialStatusActive, "manager")
	require.NoError(t, err)

	all, total, err := ts.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "ST-2", all[0].StudyID)

	active, total, err := ts.List(ctx, model.TrialStatusActive, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestTrialMutations(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ts := env.services.Trial
	trial := createTrial(t, env, "ST-200")

	_, err := ts.UpdateDates(ctx, trial.ID, day(2025, 1, 1), day(2024, 1, 1), "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrTrialDates))

	updated, err := ts.UpdateDates(ctx, trial.ID, day(2024, 2, 1), day(2026, 2, 1), "manager")
	require.NoError(t, err)
	assert.Equal(t, day(2026, 2, 1), updated.EndDate.UTC())

	member := model.TeamMember{UserID: "u-1", Role: "MONITOR_CRA"}
	withMember, err := ts.AddTeamMember(ctx, trial.ID, member, "manager")
	require.NoError(t, err)
	require.Len(t, withMember.StudyTeam, 1)

	again, err := ts.AddTeamMember(ctx, trial.ID, member, "manager")
	require.NoError(t, err)
	assert.Equal(t, withMember.Revision, again.Revision)

	_, err = ts.AddTeamMember(ctx, trial.ID, model.TeamMember{UserID: "u-2", Role: "JANITOR"}, "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

	removed, err := ts.RemoveTeamMember(ctx, trial.ID, "u-1", "manager")
	require.NoError(t, err)
	assert.Empty(t, removed.StudyTeam)

	withCountry, err := ts.AddCountry(ctx, trial.ID, model.CountryEntry{Code: "DE", Name: "Germany"}, "manager")
	require.NoError(t, err)
	require.Len(t, withCountry.Countries, 1)
	assert.Equal(t, "PLANNED", withCountry.Countries[0].Status)

	_, err = ts.Archive(ctx, trial.ID, "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrInvalidState))

	for _, to := range []model.TrialStatus{model.TrialStatusActive, model.TrialStatusCompleted, model.TrialStatusArchived} {
		_, err = ts.ChangeStatus(ctx, trial.ID, to, "manager")
		require.NoError(t, err, to)
	}

	_, err = ts.UpdateDates(ctx, trial.ID, day(2024, 2, 1), day(2027, 2, 1), "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrInvalidState))
}

func TestSiteService(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ss := env.services.Site
	trial := createTrial(t, env, "ST-300")

	site, err := ss.Create(ctx, trial.ID, model.Site{SiteID: "SITE-01", Name: "Berlin Charite", EnrollmentTarget: 40}, "manager")
	require.NoError(t, err)
	assert.Equal(t, model.SiteStatusPlanned, site.Status)
	assert.Equal(t, trial.ID, site.TrialID)

	linked, err := env.services.Trial.Get(ctx, trial.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{site.ID}, linked.SiteIDs)

	_, err = ss.Create(ctx, "missing", model.Site{SiteID: "SITE-02", Name: "Nowhere"}, "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrTrialNotFound))

	_, err = ss.Create(ctx, trial.ID, model.Site{SiteID: "SITE-01", Name: "Duplicate"}, "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrSiteConflict))

	sites, err := ss.ListByTrial(ctx, trial.ID)
	require.NoError(t, err)
	assert.Len(t, sites, 1)

	_, err = ss.ChangeStatus(ctx, site.ID, model.SiteStatusCompleted, "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrInvalidState))

	active, err := ss.ChangeStatus(ctx, site.ID, model.SiteStatusActive, "manager")
	require.NoError(t, err)
	assert.Equal(t, model.SiteStatusActive, active.Status)

	enrolled, err := ss.UpdateEnrollment(ctx, site.ID, 40, 10, "manager")
	require.NoError(t, err)
	require.NotNil(t, enrolled.EnrollmentProgress())
	assert.InDelta(t, 25.0, *enrolled.EnrollmentProgress(), 0.001)

	_, err = ss.UpdateEnrollment(ctx, site.ID, -1, 0, "manager")
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

	closed, err := ss.SetActualEndDate(ctx, site.ID, day(2025, 12, 31), "manager")
	require.NoError(t, err)
	assert.Equal(t, model.SiteStatusCompleted, closed.Status)
	require.NotNil(t, closed.ActualEndDate)
}
