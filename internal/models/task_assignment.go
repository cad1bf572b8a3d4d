package models

import "time"

// TaskAssignment is a pure join row with a composite primary key.
type TaskAssignment struct {
	TaskID     int       `gorm:"column:task_id;primaryKey" json:"task_id"`
	EmployeeID int       `gorm:"column:employee_id;primaryKey" json:"employee_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	ModifiedAt time.Time `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`
}

func (TaskAssignment) TableName() string {
	return "task_assignments"
}
