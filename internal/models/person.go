package models

// Person is keyed by employee_id rather than a surrogate id. The password
// column is never serialized; queries that eager-load people additionally
// restrict their column selection to PersonPublicColumns.
type Person struct {
	EmployeeID int     `gorm:"column:employee_id;primaryKey;autoIncrement" json:"employee_id"`
	FirstName  string  `gorm:"column:first_name;not null" json:"first_name"`
	LastName   string  `gorm:"column:last_name;not null" json:"last_name"`
	Email      string  `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password   string  `gorm:"column:password" json:"-"`
	ClickupID  *string `gorm:"column:clickup_id;unique" json:"clickup_id,omitempty"`
	Role       string  `gorm:"column:role;default:member" json:"role"`
	Active     bool    `gorm:"column:active;default:true" json:"active"`
}

func (Person) TableName() string {
	return "people"
}

// PersonPublicColumns are the columns safe to expose on any Person-backed
// association. The password column is excluded with no exception.
var PersonPublicColumns = []string{
	"employee_id", "first_name", "last_name", "email", "clickup_id", "role", "active",
}
