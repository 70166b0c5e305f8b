package mailer

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ConfirmationJob is everything needed to render a booking
// confirmation email. Fields are snapshotted at enqueue time so the
// worker never touches the database.
type ConfirmationJob struct {
	Email            string
	BookingReference string
	PropertyName     string
	CheckInDate      string
	CheckOutDate     string
	TotalPrice       float64
}

type JobID string

// Dispatcher accepts confirmation jobs for asynchronous delivery.
// Enqueue must never block the caller; ok is false when the job was
// dropped.
type Dispatcher interface {
	Enqueue(job ConfirmationJob) (JobID, bool)
}

// Sender performs the actual delivery of a rendered email.
type Sender interface {
	Send(to, subject, body string) error
}

// LogSender writes the email to the log instead of delivering it.
// Stands in for a real SMTP backend in development and tests.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (s *LogSender) Send(to, subject, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info(body)
	return nil
}

func renderConfirmation(job ConfirmationJob) (subject, body string) {
	subject = fmt.Sprintf("Booking Confirmation - %s", job.BookingReference)
	body = fmt.Sprintf(
		"Dear customer,\n\n"+
			"Your booking has been confirmed.\n\n"+
			"Booking reference: %s\n"+
			"Property: %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Total price: %.2f\n\n"+
			"Thank you for booking with us.",
		job.BookingReference,
		job.PropertyName,
		job.CheckInDate,
		job.CheckOutDate,
		job.TotalPrice,
	)
	return subject, body
}
