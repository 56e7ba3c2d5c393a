package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sankaL/loku-caters-sub000/internal/mailer"
)

const (
	EventsExchange  = "loku.events"
	EmailJobsQueue  = "loku.email-jobs"
	EmailJobsDLQ    = "loku.email-jobs.dlq"
	EmailJobsRK     = "email"
	EmailJobsDeadRK = "dead"

	EmailKindConfirmation = "confirmation"
	EmailKindReminder     = "reminder"
)

type EmailJob struct {
	Kind      string `json:"kind"`
	OrderID   string `json:"orderId"`
	CreatedAt string `json:"createdAt"`
}

func EnsureEmailTopology(ctx context.Context, qc *Client) error {
	if qc == nil {
		return nil
	}

	if err := qc.EnsureExchange(EventsExchange, "direct"); err != nil {
		return err
	}

	if _, err := qc.EnsureQueue(EmailJobsDLQ); err != nil {
		return err
	}
	if err := qc.BindQueue(EmailJobsDLQ, EventsExchange, EmailJobsDeadRK); err != nil {
		return err
	}

	_, err := qc.EnsureQueueWithArgs(EmailJobsQueue, amqp.Table{
		"x-dead-letter-exchange":    EventsExchange,
		"x-dead-letter-routing-key": EmailJobsDeadRK,
	})
	if err != nil {
		return err
	}
	return qc.BindQueue(EmailJobsQueue, EventsExchange, EmailJobsRK)
}

func EnqueueEmail(ctx context.Context, qc *Client, kind, orderID string) error {
	if qc == nil {
		return nil
	}
	job := EmailJob{
		Kind:      kind,
		OrderID:   orderID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return qc.PublishJSON(ctx, EventsExchange, EmailJobsRK, job)
}

// ProcessEmailJob handles one message from the email jobs queue: load the
// order with its event and pickup location, render the template for the job
// kind, and hand the message to the mail sender. Orders deleted between
// enqueue and delivery are dropped without error.
func ProcessEmailJob(ctx context.Context, db *pgxpool.Pool, mc *mailer.Client, body []byte) error {
	if db == nil || mc == nil {
		return nil
	}

	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return err
	}
	if job.OrderID == "" {
		return nil
	}

	data, ok, err := loadEmailData(ctx, db, job.OrderID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	data.Currency = mc.Currency
	data.EtransferEmail = mc.EtransferEmail

	var subject, html string
	switch job.Kind {
	case EmailKindConfirmation:
		subject, html = mailer.ConfirmationEmail(data)
	case EmailKindReminder:
		subject, html = mailer.ReminderEmail(data)
	default:
		return fmt.Errorf("unknown email job kind %q", job.Kind)
	}

	return mc.Send(ctx, data.CustomerEmail, subject, html)
}

func loadEmailData(ctx context.Context, db *pgxpool.Pool, orderID string) (mailer.EmailData, bool, error) {
	var data mailer.EmailData
	var address *string
	var eventDate time.Time

	query := `
		select o.name, o.email, o.item_name, o.quantity, o.total_price,
		       o.pickup_location, o.pickup_time_slot,
		       e.event_date, l.address
		from orders o
		join events e on e.id = o.event_id
		left join locations l on l.name = o.pickup_location
		where o.id = $1
	`
	err := db.QueryRow(ctx, query, orderID).Scan(
		&data.CustomerName, &data.CustomerEmail, &data.ItemName, &data.Quantity,
		&data.TotalPrice, &data.PickupLocation, &data.PickupTimeSlot,
		&eventDate, &address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return data, false, nil
		}
		return data, false, err
	}

	data.OrderID = orderID
	data.EventDate = eventDate.Format("Monday, January 2, 2006")
	if data.Quantity > 0 {
		data.PricePerItem = data.TotalPrice / float64(data.Quantity)
	}
	if address != nil {
		data.PickupAddress = *address
	}
	return data, true, nil
}
