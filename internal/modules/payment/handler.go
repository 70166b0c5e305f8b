package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelapp/internal/domain"
	"travelapp/internal/gateway"
	"travelapp/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/initiate", h.InitiatePayment)
	rg.POST("/payments/verify", h.VerifyPayment)
	rg.GET("/payments", h.ListPayments)
	rg.GET("/payments/:id", h.GetPayment)
}

// InitiatePayment godoc
// @Summary      Initiate a payment
// @Description  Creates a hosted checkout with the gateway and records a Pending payment
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body InitiatePaymentRequest true "Payment init payload"
// @Success      200 {object} InitiatePaymentResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /payments/initiate [post]
func (h *Handler) InitiatePayment(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "booking_reference, amount, and email are required")
		return
	}

	resp, err := h.service.Initiate(c.Request.Context(), req)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// VerifyPayment godoc
// @Summary      Verify a payment
// @Description  Resolves a Pending payment to Completed or Failed via the gateway
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body VerifyPaymentRequest true "Payment verify payload"
// @Success      200 {object} VerifyPaymentResponse
// @Failure      400 {object} VerifyPaymentResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /payments/verify [post]
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "payment_id is required")
		return
	}

	resp, err := h.service.Verify(c.Request.Context(), req.PaymentID)
	if err != nil {
		writePaymentError(c, err)
		return
	}

	if resp.Status == string(domain.PaymentFailed) {
		response.JSON(c, http.StatusBadRequest, resp)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// ListPayments godoc
// @Summary      List payments
// @Tags         Payments
// @Produce      json
// @Success      200 {array} domain.Payment
// @Router       /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	out, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list payments")
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// GetPayment godoc
// @Summary      Get a payment by id
// @Tags         Payments
// @Produce      json
// @Param        id path integer true "Payment ID"
// @Success      200 {object} domain.Payment
// @Failure      404 {object} ErrorResponse
// @Router       /payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	p, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func writePaymentError(c *gin.Context, err error) {
	var gwErr *gateway.Error
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Payment not found")
	case errors.Is(err, ErrDuplicatePayment):
		response.Error(c, http.StatusConflict, err.Error())
	case errors.As(err, &gwErr):
		if gwErr.Transient {
			response.Error(c, http.StatusBadGateway, gwErr.Message)
			return
		}
		response.Error(c, http.StatusBadRequest, gwErr.Message)
	default:
		response.Error(c, http.StatusInternalServerError, "internal error")
	}
}
