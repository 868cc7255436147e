package controllers

import (
	"net/http"
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/services"

	"github.com/gin-gonic/gin"
)

type FreeMealDayController struct {
	Svc *services.FreeMealDayService
}

func NewFreeMealDayController(svc *services.FreeMealDayService) *FreeMealDayController {
	return &FreeMealDayController{Svc: svc}
}

// CheckToday tells employees whether today's meals are sponsor-paid.
func (h *FreeMealDayController) CheckToday(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"is_free_meal_day": h.Svc.IsFreeMealDay(time.Now()),
		"date":             time.Now().UTC().Format("2006-01-02"),
	})
}

func (h *FreeMealDayController) List(c *gin.Context) {
	days, err := h.Svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

type freeMealDayInput struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

func (h *FreeMealDayController) Create(c *gin.Context) {
	var input freeMealDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	day, err := h.Svc.Create(c.GetUint("userID"), date, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, day)
}

type freeMealDayUpdateInput struct {
	Reason   *string `json:"reason"`
	IsActive *bool   `json:"is_active"`
}

func (h *FreeMealDayController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input freeMealDayUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.Svc.Update(id, services.FreeMealDayUpdate{
		Reason:   input.Reason,
		IsActive: input.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *FreeMealDayController) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Deactivate(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "free meal day deactivated"})
}
