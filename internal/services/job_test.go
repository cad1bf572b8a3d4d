package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectdesk/projectdesk/internal/apperror"
)

func newJobService(t *testing.T) *JobService {
	return NewJobService(newTestDB(t), testLogger())
}

func TestJobCreateUnknownProjectIsNotFound(t *testing.T) {
	svc := newJobService(t)

	_, err := svc.Create(map[string]any{"title": "Deploy", "projectId": float64(99)})
	require.EqualError(t, err, "Project with ID 99 not found")
	assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
}

func TestJobCreateDefaultsStatus(t *testing.T) {
	svc := newJobService(t)
	project := seedProject(t, svc.db, "Apollo")

	job, err := svc.Create(map[string]any{"title": "Deploy", "projectId": float64(project.ID)})
	require.NoError(t, err)
	assert.Equal(t, project.ID, job.ProjectID)
	assert.Equal(t, "pending", job.Status)
}

func TestJobUpdateIgnoresProjectID(t *testing.T) {
	svc := newJobService(t)
	projectA := seedProject(t, svc.db, "Apollo")
	projectB := seedProject(t, svc.db, "Gemini")

	job, err := svc.Create(map[string]any{"title": "Deploy", "projectId": float64(projectA.ID)})
	require.NoError(t, err)

	updated, err := svc.Update(job.ID, map[string]any{
		"status":    "running",
		"projectId": float64(projectB.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "running", updated.Status)
	assert.Equal(t, projectA.ID, updated.ProjectID)
}

func TestJobListIncludeProject(t *testing.T) {
	svc := newJobService(t)
	project := seedProject(t, svc.db, "Apollo")
	_, err := svc.Create(map[string]any{"title": "Deploy", "projectId": float64(project.ID)})
	require.NoError(t, err)

	page, err := svc.List(0, 0, "project")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Jobs, 1)

	details, ok := page.Jobs[0]["ProjectDetails"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Apollo", details["name"])
}

func TestJobListWithoutInclude(t *testing.T) {
	svc := newJobService(t)
	project := seedProject(t, svc.db, "Apollo")
	_, err := svc.Create(map[string]any{"title": "Deploy", "projectId": float64(project.ID)})
	require.NoError(t, err)

	page, err := svc.List(0, 0, "")
	require.NoError(t, err)
	require.Len(t, page.Jobs, 1)
	assert.NotContains(t, page.Jobs[0], "ProjectDetails")
}

func TestJobDelete(t *testing.T) {
	svc := newJobService(t)
	project := seedProject(t, svc.db, "Apollo")
	job, err := svc.Create(map[string]any{"title": "Deploy", "projectId": float64(project.ID)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(job.ID))

	err = svc.Delete(job.ID)
	assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
}
