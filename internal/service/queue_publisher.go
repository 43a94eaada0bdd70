// Package service holds adapters between the registration core and outside
// systems.  The queue publisher announces submitted registrations on
// RabbitMQ.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/event-registration/internal/model"
	q "github.com/iliyamo/event-registration/internal/queue"
)

// QueuePublisher publishes RegistrationSubmittedEvent messages.  It dials
// per message; registrations are rare enough that a pooled connection
// would only add reconnect handling.
type QueuePublisher struct {
	URL         string
	DialTimeout time.Duration // upper bound on connecting; the ctx deadline wins when sooner
	now         func() time.Time
}

// DefaultDialTimeout bounds connecting to the broker.
const DefaultDialTimeout = 5 * time.Second

// NewQueuePublisher returns a publisher for the broker at url.
func NewQueuePublisher(url string) *QueuePublisher {
	return &QueuePublisher{URL: url, DialTimeout: DefaultDialTimeout, now: time.Now}
}

// dialTimeout returns the connect bound for ctx.
func (p *QueuePublisher) dialTimeout(ctx context.Context) time.Duration {
	d := p.DialTimeout
	if d <= 0 {
		d = DefaultDialTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < d {
			d = left
		}
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}

// NewSubmittedEvent builds the queue payload for a registration.
func NewSubmittedEvent(sessionID string, r model.Registration, at time.Time) q.RegistrationSubmittedEvent {
	return q.RegistrationSubmittedEvent{
		SessionID:     sessionID,
		FullName:      r.FullName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		RollNumber:    r.RollNumber,
		Department:    r.Department,
		EventName:     r.EventName,
		SubmittedAt:   at.UTC().Format(time.RFC3339),
	}
}

// RegistrationSubmitted publishes one persistent message to the
// registration.submitted queue.  Errors are logged and returned; the
// submitter ignores them so a broker outage never fails a registration.
func (p *QueuePublisher) RegistrationSubmitted(ctx context.Context, sessionID string, r model.Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	conn, err := amqp.DialConfig(p.URL, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout(ctx)),
	})
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		q.RegistrationQueueName, // name
		true,                    // durable
		false,                   // autoDelete
		false,                   // exclusive
		false,                   // noWait
		nil,                     // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(NewSubmittedEvent(sessionID, r, p.now()))
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    p.now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                      // default exchange
		q.RegistrationQueueName, // routing key = queue name
		false,                   // mandatory
		false,                   // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
