package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFieldsEmptyMeansAll(t *testing.T) {
	assert.Nil(t, BuildFields(ProjectSchema, ""))
	assert.Nil(t, BuildFields(ProjectSchema, "   "))
}

func TestBuildFieldsDropsUnknownNames(t *testing.T) {
	fields := BuildFields(ProjectSchema, "name,password,notes")
	assert.Equal(t, []string{"name", "notes", "id"}, fields)
}

func TestBuildFieldsAllInvalidFallsBackToAll(t *testing.T) {
	assert.Nil(t, BuildFields(ProjectSchema, "password,secret"))
}

func TestBuildFieldsAlwaysIncludesPrimaryKey(t *testing.T) {
	fields := BuildFields(TaskSchema, "name")
	assert.Equal(t, []string{"name", "id"}, fields)
}

func TestBuildFieldsDoesNotDuplicatePrimaryKey(t *testing.T) {
	fields := BuildFields(TaskSchema, "id,name")
	assert.Equal(t, []string{"id", "name"}, fields)
}
