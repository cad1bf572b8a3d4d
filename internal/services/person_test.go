package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/models"
)

func newPersonService(t *testing.T) *PersonService {
	return NewPersonService(newTestDB(t), testLogger())
}

func TestPersonCreateHashesPassword(t *testing.T) {
	svc := newPersonService(t)

	person, err := svc.Create(map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"password":   "difference-engine",
	})
	require.NoError(t, err)
	assert.Empty(t, person.Password)
	assert.Equal(t, "member", person.Role)

	var stored models.Person
	require.NoError(t, svc.db.First(&stored, person.EmployeeID).Error)
	assert.NotEqual(t, "difference-engine", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("difference-engine")))
}

func TestPersonCreateDuplicateEmailConflicts(t *testing.T) {
	svc := newPersonService(t)
	seedPerson(t, svc.db, "ada@example.com", "pw")

	_, err := svc.Create(map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"password":   "pw",
	})
	require.EqualError(t, err, "A person with the provided email already exists")
	assert.True(t, apperror.IsStatus(err, http.StatusConflict))
}

func TestPersonListExcludesPassword(t *testing.T) {
	svc := newPersonService(t)
	seedPerson(t, svc.db, "ada@example.com", "pw")

	page, err := svc.List(0, 0)
	require.NoError(t, err)
	require.Len(t, page.People, 1)
	assert.Empty(t, page.People[0].Password)
}

func TestPersonUpdateRehashesPassword(t *testing.T) {
	svc := newPersonService(t)
	person := seedPerson(t, svc.db, "ada@example.com", "old-pw")

	_, err := svc.Update(person.EmployeeID, map[string]any{"password": "new-pw"})
	require.NoError(t, err)

	_, err = svc.Authenticate("ada@example.com", "old-pw")
	assert.True(t, apperror.IsStatus(err, http.StatusUnauthorized))

	authed, err := svc.Authenticate("ada@example.com", "new-pw")
	require.NoError(t, err)
	assert.Equal(t, person.EmployeeID, authed.EmployeeID)
}

func TestAuthenticate(t *testing.T) {
	svc := newPersonService(t)
	person := seedPerson(t, svc.db, "ada@example.com", "secret")

	authed, err := svc.Authenticate("  ADA@example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, person.EmployeeID, authed.EmployeeID)
	assert.Empty(t, authed.Password)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc := newPersonService(t)
	seedPerson(t, svc.db, "ada@example.com", "secret")

	_, wrongPassword := svc.Authenticate("ada@example.com", "nope")
	_, unknownEmail := svc.Authenticate("ghost@example.com", "secret")

	require.EqualError(t, wrongPassword, "Invalid email or password")
	require.EqualError(t, unknownEmail, "Invalid email or password")
}

func TestPersonDelete(t *testing.T) {
	svc := newPersonService(t)
	person := seedPerson(t, svc.db, "ada@example.com", "pw")

	require.NoError(t, svc.Delete(person.EmployeeID))

	err := svc.Delete(person.EmployeeID)
	assert.True(t, apperror.IsStatus(err, http.StatusNotFound))
}
