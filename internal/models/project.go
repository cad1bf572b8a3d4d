package models

import "time"

type Project struct {
	ID               int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name             string     `gorm:"column:name;not null" json:"name"`
	ClickupSpaceID   *string    `gorm:"column:clickup_space_id;unique" json:"clickup_space_id"`
	ClickupID        *string    `gorm:"column:clickup_id;unique" json:"clickup_id"`
	StatusID         *int       `gorm:"column:status_id" json:"status_id"`
	CreatedByUserID  *int       `gorm:"column:created_by_user_id" json:"created_by_user_id"`
	ModifiedByUserID *int       `gorm:"column:modified_by_user_id" json:"modified_by_user_id"`
	Description      *string    `gorm:"column:description" json:"description"`
	Notes            *string    `gorm:"column:notes" json:"notes"`
	ProjectOpen      *bool      `gorm:"column:project_open" json:"project_open"`
	Archived         *bool      `gorm:"column:archived" json:"archived"`
	StartDate        *time.Time `gorm:"column:start_date" json:"start_date"`
	DueDate          *time.Time `gorm:"column:due_date" json:"due_date"`
	ClosedAt         *time.Time `gorm:"column:closed_at" json:"closed_at"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"created_at"`
	ModifiedAt       time.Time  `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`

	// Relationships
	Status         *Status  `gorm:"foreignKey:StatusID" json:"Status,omitempty"`
	Creator        *Person  `gorm:"foreignKey:CreatedByUserID;references:EmployeeID" json:"Creator,omitempty"`
	Modifier       *Person  `gorm:"foreignKey:ModifiedByUserID;references:EmployeeID" json:"Modifier,omitempty"`
	Tasks          []Task   `gorm:"foreignKey:ProjectID" json:"Tasks,omitempty"`
	Jobs           []Job    `gorm:"foreignKey:ProjectID" json:"Jobs,omitempty"`
	AssignedPeople []Person `gorm:"many2many:project_assignments;foreignKey:ID;joinForeignKey:ProjectID;references:EmployeeID;joinReferences:UserID" json:"AssignedPeople,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
