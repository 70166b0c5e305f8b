package domain

import "time"

type Booking struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	UserEmail        string    `gorm:"type:varchar(254);not null" json:"user_email" validate:"required,email"`
	PropertyName     string    `gorm:"type:varchar(255);not null" json:"property_name" validate:"required"`
	CheckInDate      time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate     time.Time `json:"check_out_date" validate:"required"`
	TotalPrice       float64   `json:"total_price" validate:"required,gt=0"`
	BookingReference string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"booking_reference"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Booking) TableName() string { return "bookings" }
