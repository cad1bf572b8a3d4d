package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/models"
)

// Connect opens the database named by dsn. TranslateError is enabled so
// driver-level unique violations surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	return database, nil
}

// Migrate creates the schema. Join tables are registered first so the
// many-to-many associations use the explicit models with their composite keys.
func Migrate(database *gorm.DB) error {
	if err := database.SetupJoinTable(&models.Project{}, "AssignedPeople", &models.ProjectAssignment{}); err != nil {
		return err
	}
	if err := database.SetupJoinTable(&models.Task{}, "Assignees", &models.TaskAssignment{}); err != nil {
		return err
	}

	targets := []interface{}{
		&models.Status{},
		&models.Person{},
		&models.Project{},
		&models.Task{},
		&models.Job{},
		&models.ProjectAssignment{},
		&models.TaskAssignment{},
	}

	for _, target := range targets {
		if err := database.AutoMigrate(target); err != nil {
			return err
		}
	}

	return nil
}
