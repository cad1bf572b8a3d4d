package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/models"
	"github.com/projectdesk/projectdesk/internal/query"
)

// taskCreateFields is the allow-list for task creation. completed_at and
// actual_hours are update-only: a task cannot be born finished.
var taskCreateFields = []string{
	"name", "description", "project_id", "status_id", "priority",
	"start_date", "due_date", "estimated_hours", "archived",
}

// taskUpdateFields additionally admits the completion data. project_id stays
// listed so Update can inspect it before dropping it; it is immutable after
// creation.
var taskUpdateFields = []string{
	"name", "description", "project_id", "status_id", "priority",
	"start_date", "due_date", "completed_at", "estimated_hours",
	"actual_hours", "archived",
}

var taskDateFields = []string{"start_date", "due_date", "completed_at"}

type TaskService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTaskService(db *gorm.DB, log *zap.Logger) *TaskService {
	return &TaskService{db: db, log: log}
}

type TaskPage struct {
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Tasks  []map[string]any `json:"tasks"`
}

func (s *TaskService) List(opts ListOptions) (*TaskPage, error) {
	limit := clampLimit(opts.Limit)
	offset := clampOffset(opts.Offset)

	conds := query.BuildConditions(query.TaskSchema, opts.Filter)
	orders, err := query.BuildOrder(query.TaskSchema, opts.Sort)
	if err != nil {
		return nil, err
	}
	fields := query.BuildFields(query.TaskSchema, opts.Fields)
	incs := query.BuildIncludes(query.TaskSchema, opts.Include, opts.Filter)
	required := query.HasRequired(incs)

	countTx := query.ApplyRequiredJoins(query.ApplyConditions(s.db.Model(&models.Task{}), conds), incs)
	if required {
		countTx = query.CountDistinct(countTx, query.TaskSchema)
	}

	var total int64
	if err := countTx.Count(&total).Error; err != nil {
		s.log.Error("counting tasks failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve tasks")
	}

	cols := query.SelectColumns(query.TaskSchema, fields, incs, orders, required)

	fetchTx := s.db.Model(&models.Task{})
	fetchTx = query.ApplyConditions(fetchTx, conds)
	fetchTx = query.ApplyRequiredJoins(fetchTx, incs)
	fetchTx = query.ApplyPreloads(fetchTx, incs)
	fetchTx = query.ApplyProjection(fetchTx, query.TaskSchema, cols, required)
	fetchTx = query.ApplyOrder(fetchTx, query.TaskSchema, orders)

	var rows []models.Task
	if err := fetchTx.Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		s.log.Error("fetching tasks failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve tasks")
	}

	aliases := query.IncludeAliases(incs)
	tasks := make([]map[string]any, 0, len(rows))
	for i := range rows {
		m, err := query.ShapeRow(&rows[i], fields, aliases)
		if err != nil {
			return nil, apperror.Internal("Failed to retrieve tasks")
		}
		tasks = append(tasks, m)
	}

	return &TaskPage{Total: total, Limit: limit, Offset: offset, Tasks: tasks}, nil
}

func (s *TaskService) GetByID(id int, includeParam, fieldsParam string) (map[string]any, error) {
	fields := query.BuildFields(query.TaskSchema, fieldsParam)
	incs := query.BuildIncludes(query.TaskSchema, includeParam, nil)

	cols := query.SelectColumns(query.TaskSchema, fields, incs, nil, false)
	tx := query.ApplyPreloads(s.db.Model(&models.Task{}), incs)
	tx = query.ApplyProjection(tx, query.TaskSchema, cols, false)

	var task models.Task
	if err := tx.First(&task, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Task with ID %d not found", id)
		}
		s.log.Error("fetching task failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve task with ID %d", id)
	}

	return query.ShapeRow(&task, fields, query.IncludeAliases(incs))
}

func (s *TaskService) Create(data map[string]any, actorID int) (*models.Task, error) {
	picked := pickAllowed(data, taskCreateFields)
	if err := normalizeDates(picked, taskDateFields...); err != nil {
		return nil, err
	}

	if err := s.checkProjectRef(picked); err != nil {
		return nil, err
	}
	if err := s.checkStatusRef(picked); err != nil {
		return nil, err
	}

	var task models.Task
	if err := remarshal(picked, &task); err != nil {
		return nil, apperror.Validation("Invalid task data")
	}
	task.CreatedByUserID = &actorID

	if err := s.db.Create(&task).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("A task with the provided unique field already exists")
		}
		s.log.Error("creating task failed", zap.Error(err))
		return nil, apperror.Internal("Failed to create task")
	}

	return &task, nil
}

func (s *TaskService) Update(id int, data map[string]any, actorID int) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Task with ID %d not found", id)
		}
		s.log.Error("loading task failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update task with ID %d", id)
	}

	picked := pickAllowed(data, taskUpdateFields)

	// project_id is immutable after creation: attempts to change it are
	// dropped, not rejected.
	if v, ok := picked["project_id"]; ok {
		if n, isInt := intFromAny(v); !isInt || n != task.ProjectID {
			delete(picked, "project_id")
		}
	}

	if len(picked) == 0 {
		return &task, nil
	}
	if err := normalizeDates(picked, taskDateFields...); err != nil {
		return nil, err
	}
	if err := s.checkStatusRef(picked); err != nil {
		return nil, err
	}
	picked["modified_by_user_id"] = actorID

	if err := s.db.Model(&task).Updates(picked).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("A task with the provided unique field already exists")
		}
		s.log.Error("updating task failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update task with ID %d", id)
	}

	if err := s.db.First(&task, id).Error; err != nil {
		s.log.Error("reloading task failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update task with ID %d", id)
	}
	return &task, nil
}

// Delete removes the task unconditionally; its assignment rows go with it.
func (s *TaskService) Delete(id int) error {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Task with ID %d not found", id)
		}
		s.log.Error("loading task failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete task with ID %d", id)
	}

	if err := s.db.Where("task_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
		s.log.Error("deleting task assignments failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete task with ID %d", id)
	}
	if err := s.db.Delete(&models.Task{}, id).Error; err != nil {
		s.log.Error("deleting task failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete task with ID %d", id)
	}
	return nil
}

// AssignUser links a person to a task. Duplicate assignments conflict.
func (s *TaskService) AssignUser(taskID, userID int) (*models.TaskAssignment, error) {
	if err := s.requireTask(taskID); err != nil {
		return nil, err
	}
	if err := s.requirePerson(userID); err != nil {
		return nil, err
	}

	assignment := models.TaskAssignment{TaskID: taskID, EmployeeID: userID}
	if err := s.db.Create(&assignment).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("User %d is already assigned to task %d", userID, taskID)
		}
		s.log.Error("assigning user failed", zap.Int("task_id", taskID), zap.Int("user_id", userID), zap.Error(err))
		return nil, apperror.Internal("Failed to assign user to task")
	}
	return &assignment, nil
}

func (s *TaskService) UnassignUser(taskID, userID int) error {
	if err := s.requireTask(taskID); err != nil {
		return err
	}
	if err := s.requirePerson(userID); err != nil {
		return err
	}

	res := s.db.Where("task_id = ? AND employee_id = ?", taskID, userID).Delete(&models.TaskAssignment{})
	if res.Error != nil {
		s.log.Error("unassigning user failed", zap.Int("task_id", taskID), zap.Int("user_id", userID), zap.Error(res.Error))
		return apperror.Internal("Failed to unassign user from task")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Assignment for Task ID %d and User ID %d not found", taskID, userID)
	}
	return nil
}

func (s *TaskService) requireTask(id int) error {
	var count int64
	if err := s.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperror.Internal("Failed to retrieve task with ID %d", id)
	}
	if count == 0 {
		return apperror.NotFound("Task with ID %d not found", id)
	}
	return nil
}

func (s *TaskService) requirePerson(id int) error {
	var count int64
	if err := s.db.Model(&models.Person{}).Where("employee_id = ?", id).Count(&count).Error; err != nil {
		return apperror.Internal("Failed to retrieve person with ID %d", id)
	}
	if count == 0 {
		return apperror.NotFound("Person with User ID %d not found", id)
	}
	return nil
}

// checkProjectRef verifies a submitted project_id references an existing row.
func (s *TaskService) checkProjectRef(data map[string]any) error {
	v, ok := data["project_id"]
	if !ok || v == nil {
		return nil
	}
	projectID, ok := intFromAny(v)
	if !ok {
		return apperror.Validation("Invalid Project ID")
	}
	var count int64
	if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return apperror.Internal("Failed to validate project reference")
	}
	if count == 0 {
		return apperror.Validation("Invalid Project ID: %d", projectID)
	}
	return nil
}

func (s *TaskService) checkStatusRef(data map[string]any) error {
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
