package services

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/models"
	"github.com/projectdesk/projectdesk/internal/query"
)

// projectMutableFields is the allow-list for project writes. id, timestamps
// and created_by_user_id are deliberately absent.
var projectMutableFields = []string{
	"name", "clickup_space_id", "clickup_id", "status_id",
	"project_open", "archived", "start_date", "due_date", "closed_at",
	"description", "notes",
}

var projectDateFields = []string{"start_date", "due_date", "closed_at"}

type ProjectService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProjectService(db *gorm.DB, log *zap.Logger) *ProjectService {
	return &ProjectService{db: db, log: log}
}

type ProjectPage struct {
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
	Projects []map[string]any `json:"projects"`
}

func (s *ProjectService) List(opts ListOptions) (*ProjectPage, error) {
	limit := clampLimit(opts.Limit)
	offset := clampOffset(opts.Offset)

	conds := query.BuildConditions(query.ProjectSchema, opts.Filter)
	orders, err := query.BuildOrder(query.ProjectSchema, opts.Sort)
	if err != nil {
		return nil, err
	}
	fields := query.BuildFields(query.ProjectSchema, opts.Fields)
	incs := query.BuildIncludes(query.ProjectSchema, opts.Include, opts.Filter)
	required := query.HasRequired(incs)

	countTx := query.ApplyRequiredJoins(query.ApplyConditions(s.db.Model(&models.Project{}), conds), incs)
	if required {
		countTx = query.CountDistinct(countTx, query.ProjectSchema)
	}

	var total int64
	if err := countTx.Count(&total).Error; err != nil {
		s.log.Error("counting projects failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve projects")
	}

	cols := query.SelectColumns(query.ProjectSchema, fields, incs, orders, required)

	fetchTx := s.db.Model(&models.Project{})
	fetchTx = query.ApplyConditions(fetchTx, conds)
	fetchTx = query.ApplyRequiredJoins(fetchTx, incs)
	fetchTx = query.ApplyPreloads(fetchTx, incs)
	fetchTx = query.ApplyProjection(fetchTx, query.ProjectSchema, cols, required)
	fetchTx = query.ApplyOrder(fetchTx, query.ProjectSchema, orders)

	var rows []models.Project
	if err := fetchTx.Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		s.log.Error("fetching projects failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve projects")
	}

	aliases := query.IncludeAliases(incs)
	projects := make([]map[string]any, 0, len(rows))
	for i := range rows {
		m, err := query.ShapeRow(&rows[i], fields, aliases)
		if err != nil {
			return nil, apperror.Internal("Failed to retrieve projects")
		}
		projects = append(projects, m)
	}

	return &ProjectPage{Total: total, Limit: limit, Offset: offset, Projects: projects}, nil
}

func (s *ProjectService) GetByID(id int, includeParam, fieldsParam string) (map[string]any, error) {
	fields := query.BuildFields(query.ProjectSchema, fieldsParam)
	incs := query.BuildIncludes(query.ProjectSchema, includeParam, nil)

	cols := query.SelectColumns(query.ProjectSchema, fields, incs, nil, false)
	tx := query.ApplyPreloads(s.db.Model(&models.Project{}), incs)
	tx = query.ApplyProjection(tx, query.ProjectSchema, cols, false)

	var project models.Project
	if err := tx.First(&project, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Project with ID %d not found", id)
		}
		s.log.Error("fetching project failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve project with ID %d", id)
	}

	return query.ShapeRow(&project, fields, query.IncludeAliases(incs))
}

func (s *ProjectService) Create(data map[string]any, actorID int) (*models.Project, error) {
	picked := pickAllowed(data, projectMutableFields)
	if err := normalizeDates(picked, projectDateFields...); err != nil {
		return nil, err
	}

	if err := s.checkStatusRef(picked); err != nil {
		return nil, err
	}

	var project models.Project
	if err := remarshal(picked, &project); err != nil {
		return nil, apperror.Validation("Invalid project data")
	}
	project.CreatedByUserID = &actorID

	if err := s.db.Create(&project).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("A project with the provided unique field already exists")
		}
		s.log.Error("creating project failed", zap.Error(err))
		return nil, apperror.Internal("Failed to create project")
	}

	return &project, nil
}

func (s *ProjectService) Update(id int, data map[string]any, actorID int) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Project with ID %d not found", id)
		}
		s.log.Error("loading project failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update project with ID %d", id)
	}

	picked := pickAllowed(data, projectMutableFields)
	if len(picked) == 0 {
		return &project, nil
	}
	if err := normalizeDates(picked, projectDateFields...); err != nil {
		return nil, err
	}
	if err := s.checkStatusRef(picked); err != nil {
		return nil, err
	}
	picked["modified_by_user_id"] = actorID

	if err := s.db.Model(&project).Updates(picked).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("A project with the provided unique field already exists")
		}
		s.log.Error("updating project failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update project with ID %d", id)
	}

	if err := s.db.First(&project, id).Error; err != nil {
		s.log.Error("reloading project failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update project with ID %d", id)
	}
	return &project, nil
}

// Delete refuses to remove a project that still has tasks or assigned
// people. The dependency check and the delete are not atomic; see DESIGN.md.
func (s *ProjectService) Delete(id int) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Project with ID %d not found", id)
		}
		s.log.Error("loading project failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete project with ID %d", id)
	}

	var taskCount int64
	if err := s.db.Model(&models.Task{}).Where("project_id = ?", id).Count(&taskCount).Error; err != nil {
		return apperror.Internal("Failed to delete project with ID %d", id)
	}
	if taskCount > 0 {
		return apperror.Conflict("Cannot delete project ID %d: it has %d associated task(s)", id, taskCount)
	}

	var assignmentCount int64
	if err := s.db.Model(&models.ProjectAssignment{}).Where("project_id = ?", id).Count(&assignmentCount).Error; err != nil {
		return apperror.Internal("Failed to delete project with ID %d", id)
	}
	if assignmentCount > 0 {
		return apperror.Conflict("Cannot delete project ID %d: it has %d assigned person(s)", id, assignmentCount)
	}

	if err := s.db.Delete(&models.Project{}, id).Error; err != nil {
		s.log.Error("deleting project failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete project with ID %d", id)
	}
	return nil
}

func (s *ProjectService) ListTasks(projectID, limit, offset int) (*TaskPage, error) {
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	offset = clampOffset(offset)

	var total int64
	if err := s.db.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, apperror.Internal("Failed to retrieve tasks for project ID %d", projectID)
	}

	var rows []models.Task
	if err := s.db.Where("project_id = ?", projectID).Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, apperror.Internal("Failed to retrieve tasks for project ID %d", projectID)
	}

	tasks := make([]map[string]any, 0, len(rows))
	for i := range rows {
		m, err := query.ShapeRow(&rows[i], nil, nil)
		if err != nil {
			return nil, apperror.Internal("Failed to retrieve tasks for project ID %d", projectID)
		}
		tasks = append(tasks, m)
	}

	return &TaskPage{Total: total, Limit: limit, Offset: offset, Tasks: tasks}, nil
}

// ListJobs always returns an empty page: the historical jobs schema never
// carried the relational path back from projects, and the endpoint contract
// preserves that until the product owner decides otherwise.
func (s *ProjectService) ListJobs(projectID, limit, offset int) (*JobPage, error) {
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}
	return &JobPage{
		Total:  0,
		Limit:  clampLimit(limit),
		Offset: clampOffset(offset),
		Jobs:   []map[string]any{},
	}, nil
}

type PeoplePage struct {
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	People []models.Person `json:"people"`
}

// ListPeople resolves the assignment rows for the project first, then pages
// over a lookup of the member identities. Pagination therefore applies to
// the member fetch, not the assignment fetch.
func (s *ProjectService) ListPeople(projectID, limit, offset int) (*PeoplePage, error) {
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	offset = clampOffset(offset)

	var userIDs []int
	if err := s.db.Model(&models.ProjectAssignment{}).
		Where("project_id = ?", projectID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, apperror.Internal("Failed to retrieve people for project ID %d", projectID)
	}

	page := &PeoplePage{Total: 0, Limit: limit, Offset: offset, People: []models.Person{}}
	if len(userIDs) == 0 {
		return page, nil
	}

	if err := s.db.Model(&models.Person{}).
		Where("employee_id IN ?", userIDs).
		Count(&page.Total).Error; err != nil {
		return nil, apperror.Internal("Failed to retrieve people for project ID %d", projectID)
	}

	if err := s.db.Select(models.PersonPublicColumns).
		Where("employee_id IN ?", userIDs).
		Limit(limit).Offset(offset).
		Find(&page.People).Error; err != nil {
		return nil, apperror.Internal("Failed to retrieve people for project ID %d", projectID)
	}

	return page, nil
}

func (s *ProjectService) requireProject(id int) error {
	var count int64
	if err := s.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperror.Internal("Failed to retrieve project with ID %d", id)
	}
	if count == 0 {
		return apperror.NotFound("Project with ID %d not found", id)
	}
	return nil
}

// checkStatusRef verifies a submitted status_id references an existing row.
func (s *ProjectService) checkStatusRef(data map[string]any) error {
	v, ok := data["status_id"]
	if !ok || v == nil {
		return nil
	}
	statusID, ok := intFromAny(v)
	if !ok {
		return apperror.Validation("Invalid Status ID")
	}
	var count int64
	if err := s.db.Model(&models.Status{}).Where("id = ?", statusID).Count(&count).Error; err != nil {
		return apperror.Internal("Failed to validate status reference")
	}
	if count == 0 {
		return apperror.Validation("Invalid Status ID: %d", statusID)
	}
	return nil
}

// remarshal round-trips an allow-listed map into the model struct.
func remarshal(data map[string]any, out any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
