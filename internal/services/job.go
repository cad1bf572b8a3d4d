package services

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/models"
	"github.com/projectdesk/projectdesk/internal/query"
)

// jobMutableFields uses the API's camel-cased projectId key; it maps onto the
// project_id column through the model's JSON tag. projectId is only settable
// on create.
var jobMutableFields = []string{"title", "description", "status", "projectId"}

var jobUpdateFields = []string{"title", "description", "status"}

type JobService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewJobService(db *gorm.DB, log *zap.Logger) *JobService {
	return &JobService{db: db, log: log}
}

type JobPage struct {
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Jobs   []map[string]any `json:"jobs"`
}

func (s *JobService) List(limit, offset int, includeParam string) (*JobPage, error) {
	limit = clampLimit(limit)
	offset = clampOffset(offset)

	var total int64
	if err := s.db.Model(&models.Job{}).Count(&total).Error; err != nil {
		s.log.Error("counting jobs failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve jobs")
	}

	tx := s.db.Model(&models.Job{})
	if includesProject(includeParam) {
		tx = tx.Preload("ProjectDetails", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		})
	}

	var rows []models.Job
	if err := tx.Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		s.log.Error("fetching jobs failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve jobs")
	}

	jobs := make([]map[string]any, 0, len(rows))
	for i := range rows {
		m, err := query.ShapeRow(&rows[i], nil, nil)
		if err != nil {
			return nil, apperror.Internal("Failed to retrieve jobs")
		}
		jobs = append(jobs, m)
	}

	return &JobPage{Total: total, Limit: limit, Offset: offset, Jobs: jobs}, nil
}

func (s *JobService) GetByID(id int, includeParam string) (*models.Job, error) {
	tx := s.db
	if includesProject(includeParam) {
		tx = tx.Preload("ProjectDetails", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		})
	}

	var job models.Job
	if err := tx.First(&job, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Job with ID %d not found", id)
		}
		s.log.Error("fetching job failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve job with ID %d", id)
	}
	return &job, nil
}

// Create fails with NotFound when the referenced project does not exist;
// jobs surface a missing parent, not a bad field value.
func (s *JobService) Create(data map[string]any) (*models.Job, error) {
	picked := pickAllowed(data, jobMutableFields)

	if v, ok := picked["projectId"]; ok && v != nil {
		projectID, isInt := intFromAny(v)
		if !isInt {
			return nil, apperror.Validation("Invalid Project ID")
		}
		var count int64
		if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
			return nil, apperror.Internal("Failed to validate project reference")
		}
		if count == 0 {
			return nil, apperror.NotFound("Project with ID %d not found", projectID)
		}
	}

	var job models.Job
	if err := remarshal(picked, &job); err != nil {
		return nil, apperror.Validation("Invalid job data")
	}

	if err := s.db.Create(&job).Error; err != nil {
		s.log.Error("creating job failed", zap.Error(err))
		return nil, apperror.Internal("Failed to create job")
	}
	return &job, nil
}

func (s *JobService) Update(id int, data map[string]any) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Job with ID %d not found", id)
		}
		s.log.Error("loading job failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update job with ID %d", id)
	}

	picked := pickAllowed(data, jobUpdateFields)
	if len(picked) == 0 {
		return &job, nil
	}

	if err := s.db.Model(&job).Updates(picked).Error; err != nil {
		s.log.Error("updating job failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update job with ID %d", id)
	}

	if err := s.db.First(&job, id).Error; err != nil {
		return nil, apperror.Internal("Failed to update job with ID %d", id)
	}
	return &job, nil
}

func (s *JobService) Delete(id int) error {
	var job models.Job
	if err := s.db.First(&job, id).Error; err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Job with ID %d not found", id)
		}
		s.log.Error("loading job failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete job with ID %d", id)
	}

	if err := s.db.Delete(&models.Job{}, id).Error; err != nil {
		s.log.Error("deleting job failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete job with ID %d", id)
	}
	return nil
}

func includesProject(includeParam string) bool {
	for _, token := range strings.Split(includeParam, ",") {
		if strings.EqualFold(strings.TrimSpace(token), "project") {
			return true
		}
	}
	return false
}
