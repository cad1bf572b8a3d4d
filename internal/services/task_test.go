package services

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/models"
)

func newTaskService(t *testing.T) *TaskService {
	return NewTaskService(newTestDB(t), testLogger())
}

func TestTaskCreateRejectsUnknownProject(t *testing.T) {
	svc := newTaskService(t)

	_, err := svc.Create(map[string]any{"name": "Prep", "project_id": float64(42)}, 1)
	require.EqualError(t, err, "Invalid Project ID: 42")
	assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
}

func TestTaskCreate(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	status := seedStatus(t, svc.db, "open")

	task, err := svc.Create(map[string]any{
		"name":       "Prep",
		"project_id": float64(project.ID),
		"status_id":  float64(status.ID),
		"due_date":   "2026-09-15",
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, project.ID, task.ProjectID)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, 5, *task.CreatedByUserID)
}

func TestTaskCreateIgnoresCompletionFields(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")

	task, err := svc.Create(map[string]any{
		"name":         "Prep",
		"project_id":   float64(project.ID),
		"completed_at": "2026-01-05",
		"actual_hours": float64(3),
	}, 1)
	require.NoError(t, err)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.ActualHours)

	updated, err := svc.Update(task.ID, map[string]any{
		"completed_at": "2026-01-05",
		"actual_hours": float64(3),
	}, 1)
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	require.NotNil(t, updated.ActualHours)
	assert.Equal(t, 3.0, *updated.ActualHours)
}

func TestTaskUpdateProjectIDImmutable(t *testing.T) {
	svc := newTaskService(t)
	projectA := seedProject(t, svc.db, "Apollo")
	projectB := seedProject(t, svc.db, "Gemini")
	task := seedTask(t, svc.db, "Prep", projectA.ID)

	updated, err := svc.Update(task.ID, map[string]any{
		"name":       "Prep v2",
		"project_id": float64(projectB.ID),
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Prep v2", updated.Name)
	assert.Equal(t, projectA.ID, updated.ProjectID)
}

func TestTaskUpdateUnknownStatus(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	task := seedTask(t, svc.db, "Prep", project.ID)

	_, err := svc.Update(task.ID, map[string]any{"status_id": float64(55)}, 1)
	require.EqualError(t, err, "Invalid Status ID: 55")
}

func TestTaskListAssigneeFilterNarrowsToAssignedTasks(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	assigned := seedTask(t, svc.db, "Assigned", project.ID)
	seedTask(t, svc.db, "Unassigned", project.ID)
	person := seedPerson(t, svc.db, "dev@example.com", "pw")

	_, err := svc.AssignUser(assigned.ID, person.EmployeeID)
	require.NoError(t, err)

	page, err := svc.List(ListOptions{
		Filter: url.Values{"assigned_user_id": {strconv.Itoa(person.EmployeeID)}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Tasks, 1)
	assert.Equal(t, "Assigned", page.Tasks[0]["name"])

	assignees, ok := page.Tasks[0]["Assignees"].([]any)
	require.True(t, ok)
	require.Len(t, assignees, 1)
	member := assignees[0].(map[string]any)
	assert.Equal(t, "dev@example.com", member["email"])
	assert.NotContains(t, member, "password")
}

func TestTaskListProjectionKeepsInclude(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	seedTask(t, svc.db, "Prep", project.ID)

	page, err := svc.List(ListOptions{Fields: "id,name", Include: "project"})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)

	row := page.Tasks[0]
	assert.Equal(t, "Prep", row["name"])
	// The FK is selected so the preload can resolve, but never surfaced.
	assert.NotContains(t, row, "project_id")

	included, ok := row["Project"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Apollo", included["name"])
}

func TestTaskListAssigneeFilterWithProjection(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	task := seedTask(t, svc.db, "Assigned", project.ID)
	person := seedPerson(t, svc.db, "dev@example.com", "pw")

	_, err := svc.AssignUser(task.ID, person.EmployeeID)
	require.NoError(t, err)

	page, err := svc.List(ListOptions{
		Fields: "id,name",
		Filter: url.Values{"assigned_user_id": {strconv.Itoa(person.EmployeeID)}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Tasks, 1)

	row := page.Tasks[0]
	assert.Equal(t, "Assigned", row["name"])
	// The sort column rides along in the distinct selection but is stripped.
	assert.NotContains(t, row, "created_at")
	assert.Contains(t, row, "Assignees")
}

func TestTaskListAssigneeFilterNoMatches(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	seedTask(t, svc.db, "Prep", project.ID)

	page, err := svc.List(ListOptions{
		Filter: url.Values{"assigned_user_id": {"9"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, page.Tasks)
}

func TestTaskAssignDuplicateConflicts(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	task := seedTask(t, svc.db, "Prep", project.ID)
	person := seedPerson(t, svc.db, "dev@example.com", "pw")

	_, err := svc.AssignUser(task.ID, person.EmployeeID)
	require.NoError(t, err)

	_, err = svc.AssignUser(task.ID, person.EmployeeID)
	require.Error(t, err)
	assert.True(t, apperror.IsStatus(err, http.StatusConflict))
}

func TestTaskAssignUnknownPerson(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	task := seedTask(t, svc.db, "Prep", project.ID)

	_, err := svc.AssignUser(task.ID, 99)
	require.EqualError(t, err, "Person with User ID 99 not found")
}

func TestTaskUnassignMissingAssignment(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	task := seedTask(t, svc.db, "Prep", project.ID)
	person := seedPerson(t, svc.db, "dev@example.com", "pw")

	err := svc.UnassignUser(task.ID, person.EmployeeID)
	require.Error(t, err)
	assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
}

func TestTaskDeleteRemovesAssignments(t *testing.T) {
	svc := newTaskService(t)
	project := seedProject(t, svc.db, "Apollo")
	task := seedTask(t, svc.db, "Prep", project.ID)
	person := seedPerson(t, svc.db, "dev@example.com", "pw")

	_, err := svc.AssignUser(task.ID, person.EmployeeID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(task.ID))

	var count int64
	require.NoError(t, svc.db.Model(&models.TaskAssignment{}).Where("task_id = ?", task.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
