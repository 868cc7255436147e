package controllers

import (
	"net/http"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"
	"github.com/Nyandiekahh/CA-Menu-Backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

func (h *PaymentController) Submit(c *gin.Context) {
	var input services.SubmitPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.Svc.Submit(c.GetUint("userID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, paymentView(payment))
}

func (h *PaymentController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	payment, err := h.Svc.GetOwned(c.GetUint("userID"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paymentView(payment))
}

// --- admin ---

func (h *PaymentController) AdminList(c *gin.Context) {
	payments, err := h.Svc.AdminList()
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(payments))
	for i := range payments {
		out = append(out, paymentView(&payments[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PaymentController) AdminGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	payment, err := h.Svc.AdminGet(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paymentView(payment))
}

func (h *PaymentController) AdminUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input services.PaymentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.Svc.AdminUpdate(c.GetUint("userID"), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paymentView(payment))
}

// paymentView adds the derived remaining/fully-paid figures the model
// computes from the loaded order.
func paymentView(p *models.Payment) gin.H {
	return gin.H{
		"id":                 p.ID,
		"order_id":           p.OrderID,
		"transaction_code":   p.TransactionCode,
		"amount_paid":        p.AmountPaid,
		"phone_number":       p.PhoneNumber,
		"amount_remaining":   p.AmountRemaining(),
		"is_fully_paid":      p.IsFullyPaid(),
		"is_verified":        p.IsVerified,
		"verification_notes": p.VerificationNotes,
		"verified_at":        p.VerifiedAt,
		"created_at":         p.CreatedAt,
		"order": gin.H{
			"id":             p.Order.ID,
			"total_amount":   p.Order.TotalAmount,
			"status":         p.Order.Status,
			"customer":       p.Order.User.FullName(),
			"customer_email": p.Order.User.Email,
		},
	}
}
