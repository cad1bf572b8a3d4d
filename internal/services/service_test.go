package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/db"
	"github.com/projectdesk/projectdesk/internal/models"
)

// newTestDB opens a private in-memory database with the full schema. The pool
// is pinned to one connection so the memory database survives across queries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))
	return database
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedStatus(t *testing.T, database *gorm.DB, name string) *models.Status {
	t.Helper()
	status := &models.Status{Name: name}
	require.NoError(t, database.Create(status).Error)
	return status
}

func seedPerson(t *testing.T, database *gorm.DB, email, password string) *models.Person {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	person := &models.Person{
		FirstName: "Test",
		LastName:  "Person",
		Email:     email,
		Password:  string(hashed),
		Role:      "member",
		Active:    true,
	}
	require.NoError(t, database.Create(person).Error)
	return person
}

func seedProject(t *testing.T, database *gorm.DB, name string) *models.Project {
	t.Helper()
	project := &models.Project{Name: name}
	require.NoError(t, database.Create(project).Error)
	return project
}

func seedTask(t *testing.T, database *gorm.DB, name string, projectID int) *models.Task {
	t.Helper()
	task := &models.Task{Name: name, ProjectID: projectID}
	require.NoError(t, database.Create(task).Error)
	return task
}
