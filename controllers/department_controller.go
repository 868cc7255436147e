package controllers

import (
	"net/http"

	"github.com/Nyandiekahh/CA-Menu-Backend/services"

	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	Svc *services.DepartmentService
}

func NewDepartmentController(svc *services.DepartmentService) *DepartmentController {
	return &DepartmentController{Svc: svc}
}

// List returns active departments for forms.
func (h *DepartmentController) List(c *gin.Context) {
	departments, err := h.Svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *DepartmentController) AdminList(c *gin.Context) {
	departments, err := h.Svc.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

type departmentInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *DepartmentController) Create(c *gin.Context) {
	var input departmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.Svc.Create(c.GetUint("userID"), input.Name, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

type departmentUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (h *DepartmentController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input departmentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.Svc.Update(id, services.DepartmentUpdate{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    input.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentController) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Deactivate(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "department deactivated"})
}
