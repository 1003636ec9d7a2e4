package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const BookingConfirmedQueue = "booking.confirmed"

var ErrPublisherClosed = errors.New("events: publisher closed")

type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type amqpConnection interface {
	Channel() (amqpChannel, error)
	IsClosed() bool
	Close() error
}

type dialFunc func(url string) (amqpConnection, error)

type connection struct {
	*amqp.Connection
}

func (c connection) Channel() (amqpChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func dialAMQP(url string) (amqpConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	return connection{conn}, nil
}

// AMQPPublisher publishes booking events to a durable RabbitMQ queue. A channel
// or connection closed by the broker is reopened on the next publish.
type AMQPPublisher struct {
	mu     sync.Mutex
	url    string
	dial   dialFunc
	conn   amqpConnection
	ch     amqpChannel
	queue  string
	closed bool
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	return newAMQPPublisher(url, dialAMQP)
}

func newAMQPPublisher(url string, dial dialFunc) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		url:   url,
		dial:  dial,
		queue: BookingConfirmedQueue,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

// connect reopens whatever the broker has closed. Callers hold p.mu.
func (p *AMQPPublisher) connect() error {
	if p.conn == nil || p.conn.IsClosed() {
		p.ch = nil

		conn, err := p.dial(p.url)
		if err != nil {
			return fmt.Errorf("rabbitmq dial: %w", err)
		}
		p.conn = conn
	}

	if p.ch == nil || p.ch.IsClosed() {
		ch, err := p.conn.Channel()
		if err != nil {
			return fmt.Errorf("rabbitmq channel: %w", err)
		}

		_, err = ch.QueueDeclare(p.queue, true, false, false, false, nil)
		if err != nil {
			ch.Close()
			return fmt.Errorf("rabbitmq queue declare: %w", err)
		}
		p.ch = ch
	}

	return nil
}

func (p *AMQPPublisher) PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmed) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if err := p.connect(); err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	if !errors.Is(err, amqp.ErrClosed) {
		return err
	}

	// closed since the last publish, retry once on a fresh channel
	p.ch = nil
	if err := p.connect(); err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true

	var errs []error
	if p.ch != nil && !p.ch.IsClosed() {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}
	p.ch, p.conn = nil, nil

	return errors.Join(errs...)
}

func newPublishing(event domain.BookingConfirmed) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.BookedAt,
		Type:         BookingConfirmedQueue,
		Body:         body,
	}, nil
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingConfirmed(context.Context, domain.BookingConfirmed) error {
	return nil
}
