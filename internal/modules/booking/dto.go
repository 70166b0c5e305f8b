package booking

import "travelapp/internal/domain"

type CreateBookingRequest struct {
	UserEmail    string  `json:"user_email" binding:"required"`
	PropertyName string  `json:"property_name" binding:"required"`
	CheckInDate  string  `json:"check_in_date" binding:"required"`
	CheckOutDate string  `json:"check_out_date" binding:"required"`
	TotalPrice   float64 `json:"total_price" binding:"required"`
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request"`
}
