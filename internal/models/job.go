package models

import "time"

// Job carries a project_id column at the model level, but the historical
// schema never shipped the relational path back from projects, so the
// project jobs sub-listing stays empty. See ProjectService.ListJobs.
type Job struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description *string   `gorm:"column:description" json:"description"`
	Status      string    `gorm:"column:status;default:pending" json:"status"`
	ProjectID   int       `gorm:"column:project_id;not null" json:"projectId"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	ModifiedAt  time.Time `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`

	// Relationships
	ProjectDetails *Project `gorm:"foreignKey:ProjectID" json:"ProjectDetails,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}
