package models

import "time"

// ProjectAssignment is a pure join row with a composite primary key.
type ProjectAssignment struct {
	ProjectID  int       `gorm:"column:project_id;primaryKey" json:"project_id"`
	UserID     int       `gorm:"column:user_id;primaryKey" json:"user_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	ModifiedAt time.Time `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`
}

func (ProjectAssignment) TableName() string {
	return "project_assignments"
}
