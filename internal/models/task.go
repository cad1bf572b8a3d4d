package models

import "time"

// Task.ProjectID is immutable after creation; update requests that try to
// change it are silently dropped by the service layer.
type Task struct {
	ID               int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name             string     `gorm:"column:name;not null" json:"name"`
	Description      *string    `gorm:"column:description" json:"description"`
	ProjectID        int        `gorm:"column:project_id;not null" json:"project_id"`
	StatusID         *int       `gorm:"column:status_id" json:"status_id"`
	Priority         *string    `gorm:"column:priority" json:"priority"`
	Archived         *bool      `gorm:"column:archived" json:"archived"`
	StartDate        *time.Time `gorm:"column:start_date" json:"start_date"`
	DueDate          *time.Time `gorm:"column:due_date" json:"due_date"`
	CompletedAt      *time.Time `gorm:"column:completed_at" json:"completed_at"`
	EstimatedHours   *float64   `gorm:"column:estimated_hours" json:"estimated_hours"`
	ActualHours      *float64   `gorm:"column:actual_hours" json:"actual_hours"`
	CreatedByUserID  *int       `gorm:"column:created_by_user_id" json:"created_by_user_id"`
	ModifiedByUserID *int       `gorm:"column:modified_by_user_id" json:"modified_by_user_id"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"created_at"`
	ModifiedAt       time.Time  `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`

	// Relationships
	Project   *Project `gorm:"foreignKey:ProjectID" json:"Project,omitempty"`
	Status    *Status  `gorm:"foreignKey:StatusID" json:"Status,omitempty"`
	Creator   *Person  `gorm:"foreignKey:CreatedByUserID;references:EmployeeID" json:"Creator,omitempty"`
	Modifier  *Person  `gorm:"foreignKey:ModifiedByUserID;references:EmployeeID" json:"Modifier,omitempty"`
	Assignees []Person `gorm:"many2many:task_assignments;foreignKey:ID;joinForeignKey:TaskID;references:EmployeeID;joinReferences:EmployeeID" json:"Assignees,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}
