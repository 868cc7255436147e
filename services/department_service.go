package services

import (
	"errors"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"gorm.io/gorm"
)

type DepartmentService struct {
	DB *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

type DepartmentView struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	IsActive       bool   `json:"is_active"`
	EmployeesCount int64  `json:"employees_count"`
}

func (s *DepartmentService) view(d *models.Department) DepartmentView {
	var count int64
	s.DB.Model(&models.User{}).
		Where("department_id = ? AND is_kitchen_admin = ?", d.ID, false).
		Count(&count)
	return DepartmentView{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		IsActive:       d.IsActive,
		EmployeesCount: count,
	}
}

// List returns active departments, for registration and profile forms.
func (s *DepartmentService) List() ([]DepartmentView, error) {
	return s.list(s.DB.Where("is_active = ?", true))
}

// ListAll returns every department including deactivated ones.
func (s *DepartmentService) ListAll() ([]DepartmentView, error) {
	return s.list(s.DB)
}

func (s *DepartmentService) list(q *gorm.DB) ([]DepartmentView, error) {
	var departments []models.Department
	if err := q.Order("name").Find(&departments).Error; err != nil {
		return nil, err
	}
	out := make([]DepartmentView, 0, len(departments))
	for i := range departments {
		out = append(out, s.view(&departments[i]))
	}
	return out, nil
}

func (s *DepartmentService) Create(adminID uint, name, description string) (*models.Department, error) {
	department := &models.Department{
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedByID: &adminID,
	}
	if err := s.DB.Create(department).Error; err != nil {
		return nil, errConflict("a department with this name already exists")
	}
	return department, nil
}

type DepartmentUpdate struct {
	Name        *string
	Description *string
	IsActive    *bool
}

func (s *DepartmentService) Update(id uint, input DepartmentUpdate) (*models.Department, error) {
	var department models.Department
	if err := s.DB.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("department not found")
		}
		return nil, err
	}

	if input.Name != nil {
		department.Name = *input.Name
	}
	if input.Description != nil {
		department.Description = *input.Description
	}
	if input.IsActive != nil {
		department.IsActive = *input.IsActive
	}

	if err := s.DB.Save(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// Deactivate soft-disables a department; users keep their reference so
// historical orders stay attributable.
func (s *DepartmentService) Deactivate(id uint) error {
	res := s.DB.Model(&models.Department{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFound("department not found")
	}
	return nil
}
