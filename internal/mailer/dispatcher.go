package mailer

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type queuedJob struct {
	id  JobID
	job ConfirmationJob
}

// QueueDispatcher runs a fixed worker pool over a buffered channel.
// Delivery failures are logged and the job is dropped; retry policy is
// owned by whoever operates the mail backend, not by the request path.
type QueueDispatcher struct {
	sender Sender
	jobs   chan queuedJob

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewQueueDispatcher(sender Sender, workers, queueSize int) *QueueDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}

	d := &QueueDispatcher{
		sender: sender,
		jobs:   make(chan queuedJob, queueSize),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	return d
}

func (d *QueueDispatcher) Enqueue(job ConfirmationJob) (JobID, bool) {
	q := queuedJob{id: JobID(uuid.NewString()), job: job}
	select {
	case d.jobs <- q:
		return q.id, true
	default:
		logrus.WithFields(logrus.Fields{
			"job_id":            q.id,
			"booking_reference": job.BookingReference,
		}).Warn("mail queue full, confirmation email dropped")
		return "", false
	}
}

// Close stops accepting jobs and waits for queued ones to drain.
func (d *QueueDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}

func (d *QueueDispatcher) worker(id int) {
	defer d.wg.Done()
	for q := range d.jobs {
		subject, body := renderConfirmation(q.job)
		if err := d.sender.Send(q.job.Email, subject, body); err != nil {
			logrus.WithFields(logrus.Fields{
				"worker":            id,
				"job_id":            q.id,
				"booking_reference": q.job.BookingReference,
			}).WithError(err).Error("failed to send confirmation email")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"worker":            id,
			"job_id":            q.id,
			"booking_reference": q.job.BookingReference,
			"to":                q.job.Email,
		}).Info("confirmation email sent")
	}
}
