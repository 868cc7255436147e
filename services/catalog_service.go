package services

import (
	"errors"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"gorm.io/gorm"
)

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// --- categories ---

type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MealsCount  int64  `json:"meals_count"`
}

func (s *CatalogService) ListCategories() ([]CategoryView, error) {
	var categories []models.MealCategory
	if err := s.DB.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	out := make([]CategoryView, 0, len(categories))
	for _, cat := range categories {
		var count int64
		s.DB.Model(&models.Meal{}).
			Where("category_id = ? AND is_available = ?", cat.ID, true).
			Count(&count)
		out = append(out, CategoryView{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			MealsCount:  count,
		})
	}
	return out, nil
}

func (s *CatalogService) CreateCategory(name, description string) (*models.MealCategory, error) {
	category := &models.MealCategory{Name: name, Description: description}
	if err := s.DB.Create(category).Error; err != nil {
		return nil, errConflict("a category with this name already exists")
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(id uint, name, description string) (*models.MealCategory, error) {
	var category models.MealCategory
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("category not found")
		}
		return nil, err
	}
	category.Name = name
	category.Description = description
	if err := s.DB.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	var meals int64
	s.DB.Model(&models.Meal{}).Where("category_id = ?", id).Count(&meals)
	if meals > 0 {
		return errConflict("category still has meals")
	}
	res := s.DB.Delete(&models.MealCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFound("category not found")
	}
	return nil
}

// --- meals ---

// ListAvailableMeals is the employee-facing catalog view.
func (s *CatalogService) ListAvailableMeals() ([]models.Meal, error) {
	var meals []models.Meal
	err := s.DB.Preload("Category").
		Where("is_available = ?", true).
		Order("category_id, name").
		Find(&meals).Error
	return meals, err
}

// ListAllMeals includes unavailable meals, for admin management.
func (s *CatalogService) ListAllMeals() ([]models.Meal, error) {
	var meals []models.Meal
	err := s.DB.Preload("Category").Order("category_id, name").Find(&meals).Error
	return meals, err
}

func (s *CatalogService) GetMeal(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.DB.Preload("Category").First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("meal not found")
		}
		return nil, err
	}
	return &meal, nil
}

type MealInput struct {
	Name           string
	Description    string
	Price          float64
	CategoryID     uint
	ImageURL       string
	IsAvailable    *bool
	MaxPerPerson   uint
	UnitsAvailable *int
}

func (s *CatalogService) CreateMeal(input MealInput) (*models.Meal, error) {
	if input.Price <= 0 {
		return nil, errBadRequest("price must be positive")
	}
	if input.MaxPerPerson < 1 {
		input.MaxPerPerson = 1
	}
	if input.UnitsAvailable != nil && *input.UnitsAvailable < 0 {
		return nil, errBadRequest("units_available cannot be negative")
	}

	var category models.MealCategory
	if err := s.DB.First(&category, input.CategoryID).Error; err != nil {
		return nil, errBadRequest("category not found")
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	meal := &models.Meal{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		CategoryID:     input.CategoryID,
		ImageURL:       input.ImageURL,
		IsAvailable:    available,
		MaxPerPerson:   input.MaxPerPerson,
		UnitsAvailable: input.UnitsAvailable,
	}
	if err := s.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *CatalogService) UpdateMeal(id uint, input MealInput) (*models.Meal, error) {
	meal, err := s.GetMeal(id)
	if err != nil {
		return nil, err
	}
	if input.Price <= 0 {
		return nil, errBadRequest("price must be positive")
	}
	if input.UnitsAvailable != nil && *input.UnitsAvailable < 0 {
		return nil, errBadRequest("units_available cannot be negative")
	}

	meal.Name = input.Name
	meal.Description = input.Description
	meal.Price = input.Price
	meal.CategoryID = input.CategoryID
	if input.ImageURL != "" {
		meal.ImageURL = input.ImageURL
	}
	if input.IsAvailable != nil {
		meal.IsAvailable = *input.IsAvailable
	}
	if input.MaxPerPerson >= 1 {
		meal.MaxPerPerson = input.MaxPerPerson
	}
	meal.UnitsAvailable = input.UnitsAvailable

	if err := s.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *CatalogService) DeleteMeal(id uint) error {
	res := s.DB.Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFound("meal not found")
	}
	return nil
}
