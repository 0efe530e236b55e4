package controllers

import (
	"cooksync/pkg/resp"
	"cooksync/services"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{svc: svc}
}

type CheckoutReq struct {
	Package         string `json:"package" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// POST /payments (protected) — charge the membership package, record the
// payment, upgrade the badge.
func (ctl *PaymentController) Checkout(c *gin.Context) {
	var req CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, err := ctl.svc.Checkout(c.Request.Context(), utils.CurrentEmail(c), req.Package, req.PaymentMethodID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /payments (protected) — caller's payment history.
func (ctl *PaymentController) History(c *gin.Context) {
	payments, err := ctl.svc.History(utils.CurrentEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": payments})
}
