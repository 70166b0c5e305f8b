package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// Terminal reports whether the status may no longer change.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

type Payment struct {
	ID               int64         `gorm:"primaryKey" json:"id"`
	BookingReference string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"booking_reference"`
	Amount           float64       `gorm:"not null" json:"amount"`
	TransactionID    string        `gorm:"type:varchar(64);index;not null" json:"transaction_id"`
	Status           PaymentStatus `gorm:"type:varchar(16);default:'Pending';index" json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
