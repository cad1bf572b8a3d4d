package services

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/projectdesk/projectdesk/internal/apperror"
	"github.com/projectdesk/projectdesk/internal/models"
)

var personMutableFields = []string{
	"first_name", "last_name", "email", "password", "clickup_id", "role", "active",
}

type PersonService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPersonService(db *gorm.DB, log *zap.Logger) *PersonService {
	return &PersonService{db: db, log: log}
}

type PersonPage struct {
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	People []models.Person `json:"people"`
}

func (s *PersonService) List(limit, offset int) (*PersonPage, error) {
	limit = clampLimit(limit)
	offset = clampOffset(offset)

	page := &PersonPage{Limit: limit, Offset: offset, People: []models.Person{}}
	if err := s.db.Model(&models.Person{}).Count(&page.Total).Error; err != nil {
		s.log.Error("counting people failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve people")
	}

	if err := s.db.Select(models.PersonPublicColumns).
		Limit(limit).Offset(offset).
		Find(&page.People).Error; err != nil {
		s.log.Error("fetching people failed", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve people")
	}
	return page, nil
}

func (s *PersonService) GetByID(id int) (*models.Person, error) {
	var person models.Person
	if err := s.db.Select(models.PersonPublicColumns).First(&person, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Person with ID %d not found", id)
		}
		s.log.Error("fetching person failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve person with ID %d", id)
	}
	return &person, nil
}

func (s *PersonService) Create(data map[string]any) (*models.Person, error) {
	picked := pickAllowed(data, personMutableFields)

	if err := hashPasswordField(picked); err != nil {
		return nil, err
	}

	var person models.Person
	if err := remarshal(picked, &person); err != nil {
		return nil, apperror.Validation("Invalid person data")
	}
	// json:"-" keeps the password out of remarshal; set it from the picked map.
	if hashed, ok := picked["password"].(string); ok {
		person.Password = hashed
	}
	if person.Role == "" {
		person.Role = "member"
	}

	if err := s.db.Create(&person).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("A person with the provided email already exists")
		}
		s.log.Error("creating person failed", zap.Error(err))
		return nil, apperror.Internal("Failed to create person")
	}

	person.Password = ""
	return &person, nil
}

func (s *PersonService) Update(id int, data map[string]any) (*models.Person, error) {
	var person models.Person
	if err := s.db.First(&person, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Person with ID %d not found", id)
		}
		s.log.Error("loading person failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update person with ID %d", id)
	}

	picked := pickAllowed(data, personMutableFields)
	if len(picked) == 0 {
		person.Password = ""
		return &person, nil
	}
	if err := hashPasswordField(picked); err != nil {
		return nil, err
	}

	if err := s.db.Model(&person).Updates(picked).Error; err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("A person with the provided email already exists")
		}
		s.log.Error("updating person failed", zap.Int("id", id), zap.Error(err))
		return nil, apperror.Internal("Failed to update person with ID %d", id)
	}

	if err := s.db.Select(models.PersonPublicColumns).First(&person, id).Error; err != nil {
		return nil, apperror.Internal("Failed to update person with ID %d", id)
	}
	return &person, nil
}

func (s *PersonService) Delete(id int) error {
	var person models.Person
	if err := s.db.First(&person, id).Error; err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Person with ID %d not found", id)
		}
		s.log.Error("loading person failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete person with ID %d", id)
	}

	if err := s.db.Delete(&models.Person{}, id).Error; err != nil {
		s.log.Error("deleting person failed", zap.Int("id", id), zap.Error(err))
		return apperror.Internal("Failed to delete person with ID %d", id)
	}
	return nil
}

// Authenticate verifies credentials for login. The same error comes back for
// an unknown email and a wrong password.
func (s *PersonService) Authenticate(email, password string) (*models.Person, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var person models.Person
	if err := s.db.Where("email = ?", email).First(&person).Error; err != nil {
		if isNotFound(err) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		s.log.Error("fetching person for login failed", zap.Error(err))
		return nil, apperror.Internal("Failed to authenticate")
	}

	if person.Password == "" {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	person.Password = ""
	return &person, nil
}

func hashPasswordField(data map[string]any) error {
	v, ok := data["password"]
	if !ok {
		return nil
	}
	if v == nil {
		return nil
	}
	raw, ok := v.(string)
	if !ok || raw == "" {
		return apperror.Validation("Invalid password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("Failed to hash password")
	}
	data["password"] = string(hashed)
	return nil
}
