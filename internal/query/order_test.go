package query

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectdesk/projectdesk/internal/apperror"
)

func TestBuildOrderDefault(t *testing.T) {
	orders, err := BuildOrder(ProjectSchema, "")
	require.NoError(t, err)
	assert.Equal(t, []Order{{Column: "created_at", Direction: "desc"}}, orders)
}

func TestBuildOrderBlankTokensFallBack(t *testing.T) {
	orders, err := BuildOrder(ProjectSchema, " , ,")
	require.NoError(t, err)
	assert.Equal(t, []Order{{Column: "created_at", Direction: "desc"}}, orders)
}

func TestBuildOrderParsesFieldsAndDirections(t *testing.T) {
	orders, err := BuildOrder(TaskSchema, "due_date:asc,priority:DESC,name")
	require.NoError(t, err)
	assert.Equal(t, []Order{
		{Column: "due_date", Direction: "asc"},
		{Column: "priority", Direction: "desc"},
		{Column: "name", Direction: "asc"},
	}, orders)
}

func TestBuildOrderRejectsBadDirection(t *testing.T) {
	_, err := BuildOrder(ProjectSchema, "name:sideways")
	require.EqualError(t, err, "Invalid sort order")
	assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
}

func TestBuildOrderRejectsUnknownField(t *testing.T) {
	_, err := BuildOrder(ProjectSchema, "password:asc")
	require.EqualError(t, err, "Invalid sort field")
	assert.True(t, apperror.IsStatus(err, http.StatusBadRequest))
}

// A bad direction on an unknown field reports the direction problem: the
// direction is validated before the field name.
func TestBuildOrderDirectionCheckedFirst(t *testing.T) {
	_, err := BuildOrder(ProjectSchema, "nope:sideways")
	require.EqualError(t, err, "Invalid sort order")
}

func TestBuildOrderFailsWholeListOnOneBadToken(t *testing.T) {
	_, err := BuildOrder(TaskSchema, "name:asc,bogus:desc")
	require.EqualError(t, err, "Invalid sort field")
}
