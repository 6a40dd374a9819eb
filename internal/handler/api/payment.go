package api

import (
	"errors"
	"net/http"

	reqdto "smartpark/internal/handler/dto/request"
	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Record payment
// @Description Record a payment against a completed parking record
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body reqdto.PayRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /records/{id}/payments [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.paymentCommands.Pay(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment amount",
			})
		case errors.Is(err, commands.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		case errors.Is(err, commands.ErrRecordNotCompleted):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Record is not completed",
			})
		case errors.Is(err, commands.ErrPaymentAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment already exists for this record",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Get fee quote
// @Description Quote the parking fee for a completed record
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.FeeQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /records/{id}/fee [get]
func (h *PaymentHandler) QuoteFee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	view, err := h.paymentQueries.QuoteForRecord(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		case errors.Is(err, queries.ErrRecordNotCompleted):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Record is not completed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeeQuoteView(view))
}

// @Summary Get payment for record
// @Description Get the payment recorded for a parking record
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /records/{id}/payments [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	view, err := h.paymentQueries.GetByRecordID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary List payments
// @Description List all payments, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	views, err := h.paymentQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}
