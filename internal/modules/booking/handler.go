package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travelapp/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
}

// CreateBooking godoc
// @Summary      Create a booking
// @Description  Persists a booking and queues a confirmation email
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        body body CreateBookingRequest true "Booking payload"
// @Success      201 {object} CreateBookingResponse
// @Failure      400 {object} ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "user_email, property_name, check_in_date, check_out_date, and total_price are required")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create booking")
		return
	}

	response.JSON(c, http.StatusCreated, CreateBookingResponse{
		Message: "Booking created successfully. Confirmation email will be sent shortly.",
		Booking: b,
	})
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         Bookings
// @Produce      json
// @Success      200 {array} domain.Booking
// @Router       /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	out, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// GetBooking godoc
// @Summary      Get a booking by id
// @Tags         Bookings
// @Produce      json
// @Param        id path integer true "Booking ID"
// @Success      200 {object} domain.Booking
// @Failure      404 {object} ErrorResponse
// @Router       /bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load booking")
		return
	}
	response.JSON(c, http.StatusOK, b)
}
