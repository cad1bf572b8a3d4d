package query

// FieldKind selects how a raw query parameter is turned into a predicate.
type FieldKind int

const (
	// KindInt is a single integer equality match.
	KindInt FieldKind = iota
	// KindIntSet accepts a comma-separated integer list as set membership.
	KindIntSet
	// KindText is a case-insensitive contains match.
	KindText
	// KindExact is a literal string equality match.
	KindExact
	// KindBool accepts only the literals "true"/"false".
	KindBool
)

type FilterField struct {
	Param  string
	Column string
	Kind   FieldKind
}

// DateRange is a from/to parameter pair over one timestamp column. The upper
// bound is extended to the last instant of its calendar day.
type DateRange struct {
	FromParam string
	ToParam   string
	Column    string
}

type Order struct {
	Column    string
	Direction string
}

// Relation maps a lower-cased include token to an association. Association is
// empty for aliases the API accepts but the schema cannot back; those resolve
// to no directive. Person-backed relations are restricted to the public
// Person columns when loaded. FKColumn names the owning-side foreign key a
// belongs-to association resolves through; it must be selected for the
// preload to work, so projections are widened with it (has-many and
// many-to-many relations resolve through the primary key, which every
// projection already carries).
type Relation struct {
	Name        string
	Association string
	Alias       string
	Person      bool
	FKColumn    string
	JoinExpr    string
	JoinColumn  string
}

// Include is one eager-load directive. Required marks an inner join that
// excludes parent rows without a matching related row; AssigneeID carries the
// forced equality condition for the assignee filter.
type Include struct {
	Relation   Relation
	Required   bool
	AssigneeID int
}

// Schema is the closed per-entity enumeration the builders validate against,
// resolved once at package init.
type Schema struct {
	Table      string
	PrimaryKey string
	Attributes []string
	Filters    []FilterField
	DateRanges []DateRange
	Relations  map[string]Relation
	CreatedCol string
}

func (s *Schema) hasAttribute(name string) bool {
	for _, a := range s.Attributes {
		if a == name {
			return true
		}
	}
	return false
}

// ProjectSchema describes the projects table for the query pipeline.
var ProjectSchema = &Schema{
	Table:      "projects",
	PrimaryKey: "id",
	Attributes: []string{
		"id", "name", "clickup_space_id", "clickup_id", "status_id",
		"created_by_user_id", "modified_by_user_id", "description", "notes",
		"project_open", "archived", "start_date", "due_date", "closed_at",
		"created_at", "modified_at",
	},
	Filters: []FilterField{
		{Param: "name", Column: "name", Kind: KindText},
		{Param: "status_id", Column: "status_id", Kind: KindIntSet},
		{Param: "project_open", Column: "project_open", Kind: KindBool},
		{Param: "archived", Column: "archived", Kind: KindBool},
		{Param: "created_by_user_id", Column: "created_by_user_id", Kind: KindInt},
	},
	DateRanges: []DateRange{
		{FromParam: "created_from", ToParam: "created_to", Column: "created_at"},
		{FromParam: "start_from", ToParam: "start_to", Column: "start_date"},
		{FromParam: "due_from", ToParam: "due_to", Column: "due_date"},
		{FromParam: "closed_from", ToParam: "closed_to", Column: "closed_at"},
		{FromParam: "modified_from", ToParam: "modified_to", Column: "modified_at"},
	},
	Relations: map[string]Relation{
		"tasks":    {Name: "tasks", Association: "Tasks", Alias: "Tasks"},
		"jobs":     {Name: "jobs", Association: "Jobs", Alias: "Jobs"},
		"people":   {Name: "people", Association: "AssignedPeople", Alias: "AssignedPeople", Person: true},
		"status":   {Name: "status", Association: "Status", Alias: "Status", FKColumn: "status_id"},
		"creator":  {Name: "creator", Association: "Creator", Alias: "Creator", Person: true, FKColumn: "created_by_user_id"},
		"modifier": {Name: "modifier", Association: "Modifier", Alias: "Modifier", Person: true, FKColumn: "modified_by_user_id"},
		// Declared alias without a backing association in the current schema.
		"address": {Name: "address", Alias: "address"},
	},
	CreatedCol: "created_at",
}

// TaskSchema describes the tasks table for the query pipeline. The
// assigned_user_id parameter is deliberately absent from Filters: it is a
// join-based predicate handled by BuildIncludes.
var TaskSchema = &Schema{
	Table:      "tasks",
	PrimaryKey: "id",
	Attributes: []string{
		"id", "name", "description", "project_id", "status_id", "priority",
		"archived", "start_date", "due_date", "completed_at",
		"estimated_hours", "actual_hours", "created_by_user_id",
		"modified_by_user_id", "created_at", "modified_at",
	},
	Filters: []FilterField{
		{Param: "name", Column: "name", Kind: KindText},
		{Param: "project_id", Column: "project_id", Kind: KindInt},
		{Param: "status_id", Column: "status_id", Kind: KindIntSet},
		{Param: "priority", Column: "priority", Kind: KindExact},
		{Param: "archived", Column: "archived", Kind: KindBool},
		{Param: "created_by_user_id", Column: "created_by_user_id", Kind: KindInt},
	},
	DateRanges: []DateRange{
		{FromParam: "created_from", ToParam: "created_to", Column: "created_at"},
		{FromParam: "start_from", ToParam: "start_to", Column: "start_date"},
		{FromParam: "due_from", ToParam: "due_to", Column: "due_date"},
		{FromParam: "completed_from", ToParam: "completed_to", Column: "completed_at"},
		{FromParam: "modified_from", ToParam: "modified_to", Column: "modified_at"},
	},
	Relations: map[string]Relation{
		"project":  {Name: "project", Association: "Project", Alias: "Project", FKColumn: "project_id"},
		"status":   {Name: "status", Association: "Status", Alias: "Status", FKColumn: "status_id"},
		"creator":  {Name: "creator", Association: "Creator", Alias: "Creator", Person: true, FKColumn: "created_by_user_id"},
		"modifier": {Name: "modifier", Association: "Modifier", Alias: "Modifier", Person: true, FKColumn: "modified_by_user_id"},
		"assignees": {
			Name:        "assignees",
			Association: "Assignees",
			Alias:       "Assignees",
			Person:      true,
			JoinExpr:    "INNER JOIN task_assignments ON task_assignments.task_id = tasks.id",
			JoinColumn:  "task_assignments.employee_id",
		},
		// Declared alias without a backing association in the current schema.
		"job": {Name: "job", Alias: "job"},
	},
	CreatedCol: "created_at",
}
