package controllers

import (
	"net/http"

	"github.com/Nyandiekahh/CA-Menu-Backend/services"
	"github.com/Nyandiekahh/CA-Menu-Backend/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.CatalogService
}

func NewMealController(svc *services.CatalogService) *MealController {
	return &MealController{Svc: svc}
}

// --- employee-facing catalog ---

func (h *MealController) ListCategories(c *gin.Context) {
	categories, err := h.Svc.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *MealController) ListMeals(c *gin.Context) {
	meals, err := h.Svc.ListAvailableMeals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) GetMeal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	meal, err := h.Svc.GetMeal(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// --- admin catalog management ---

type categoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *MealController) CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.Svc.CreateCategory(input.Name, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *MealController) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.Svc.UpdateCategory(id, input.Name, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *MealController) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func (h *MealController) AdminListMeals(c *gin.Context) {
	meals, err := h.Svc.ListAllMeals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

type mealInput struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	CategoryID     uint    `json:"category_id" binding:"required"`
	ImageBase64    string  `json:"image_base64"`
	IsAvailable    *bool   `json:"is_available"`
	MaxPerPerson   uint    `json:"max_per_person"`
	UnitsAvailable *int    `json:"units_available"`
}

// uploadImage pushes an optional base64 meal photo to S3.
func uploadImage(c *gin.Context, base64Data string) (string, bool) {
	if base64Data == "" {
		return "", true
	}
	url, err := utils.UploadMealImage(base64Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed", "detail": err.Error()})
		return "", false
	}
	return url, true
}

func (h *MealController) CreateMeal(c *gin.Context) {
	var input mealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, ok := uploadImage(c, input.ImageBase64)
	if !ok {
		return
	}

	meal, err := h.Svc.CreateMeal(services.MealInput{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		CategoryID:     input.CategoryID,
		ImageURL:       imageURL,
		IsAvailable:    input.IsAvailable,
		MaxPerPerson:   input.MaxPerPerson,
		UnitsAvailable: input.UnitsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input mealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, ok := uploadImage(c, input.ImageBase64)
	if !ok {
		return
	}

	meal, err := h.Svc.UpdateMeal(id, services.MealInput{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		CategoryID:     input.CategoryID,
		ImageURL:       imageURL,
		IsAvailable:    input.IsAvailable,
		MaxPerPerson:   input.MaxPerPerson,
		UnitsAvailable: input.UnitsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMeal(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
