package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIncludesDropsUnknownTokens(t *testing.T) {
	incs := BuildIncludes(ProjectSchema, "tasks,unicorns,status", nil)
	require.Len(t, incs, 2)
	assert.Equal(t, "Tasks", incs[0].Relation.Association)
	assert.Equal(t, "Status", incs[1].Relation.Association)
}

func TestBuildIncludesNormalizesAndDedupes(t *testing.T) {
	incs := BuildIncludes(ProjectSchema, " Tasks , tasks ,TASKS", nil)
	require.Len(t, incs, 1)
	assert.Equal(t, "Tasks", incs[0].Relation.Association)
}

func TestBuildIncludesAcceptsUnbackedAlias(t *testing.T) {
	incs := BuildIncludes(ProjectSchema, "address", nil)
	require.Len(t, incs, 1)
	assert.Empty(t, incs[0].Relation.Association)
	assert.Empty(t, IncludeAliases(incs))
}

func TestBuildIncludesForcesAssigneeJoin(t *testing.T) {
	filter := url.Values{"assigned_user_id": {"7"}}

	incs := BuildIncludes(TaskSchema, "", filter)
	require.Len(t, incs, 1)
	assert.Equal(t, "Assignees", incs[0].Relation.Association)
	assert.True(t, incs[0].Required)
	assert.Equal(t, 7, incs[0].AssigneeID)
	assert.True(t, HasRequired(incs))
}

func TestBuildIncludesMergesAssigneeFilterIntoExplicitInclude(t *testing.T) {
	filter := url.Values{"assigned_user_id": {"7"}}

	incs := BuildIncludes(TaskSchema, "assignees,project", filter)
	require.Len(t, incs, 2)
	assert.Equal(t, "Assignees", incs[0].Relation.Association)
	assert.True(t, incs[0].Required)
	assert.Equal(t, 7, incs[0].AssigneeID)
	assert.False(t, incs[1].Required)
}

func TestBuildIncludesIgnoresBadAssigneeValue(t *testing.T) {
	filter := url.Values{"assigned_user_id": {"seven"}}

	incs := BuildIncludes(TaskSchema, "", filter)
	assert.Empty(t, incs)
	assert.False(t, HasRequired(incs))
}

func TestIncludeAliases(t *testing.T) {
	incs := BuildIncludes(TaskSchema, "project,assignees,job", nil)
	assert.Equal(t, []string{"Project", "Assignees"}, IncludeAliases(incs))
}
