package payment

type InitiatePaymentRequest struct {
	BookingReference string  `json:"booking_reference" binding:"required" example:"BK-1A2B3C4D"`
	Amount           float64 `json:"amount" binding:"required" example:"150.00"`
	Email            string  `json:"email" binding:"required" example:"guest@example.com"`
}

type InitiatePaymentResponse struct {
	CheckoutURL string `json:"checkout_url" example:"https://checkout.chapa.co/checkout/..."`
	PaymentID   int64  `json:"payment_id" example:"1"`
}

type VerifyPaymentRequest struct {
	PaymentID int64 `json:"payment_id" binding:"required" example:"1"`
}

type VerifyPaymentResponse struct {
	Status  string `json:"status" example:"Completed"`
	Message string `json:"message,omitempty" example:"Verification failed"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request"`
}
