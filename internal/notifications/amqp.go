package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subtrack/internal/config"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// channel is the part of *amqp091.Channel the publisher uses
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes reminder events to a durable topic exchange
type AMQPPublisher struct {
	conn       *amqp091.Connection
	channel    channel
	exchange   string
	queue      string
	routingKey string
	logger     *slog.Logger
	now        func() time.Time
}

// DialAMQPPublisher connects to the broker and declares the exchange and
// reminder queue.
func DialAMQPPublisher(cfg config.AMQPConfig, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	publisher, err := newAMQPPublisher(ch, cfg, logger)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	publisher.conn = conn

	return publisher, nil
}

func newAMQPPublisher(ch channel, cfg config.AMQPConfig, logger *slog.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		channel:    ch,
		exchange:   cfg.Exchange,
		queue:      cfg.Queue,
		routingKey: cfg.RoutingKey,
		logger:     logger,
		now:        time.Now,
	}

	if err := p.setup(); err != nil {
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return p, nil
}

func (p *AMQPPublisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if p.queue == "" {
		return nil
	}

	_, err = p.channel.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := p.channel.QueueBind(p.queue, p.routingKey, p.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) NotifyRenewal(ctx context.Context, reminder RenewalReminder) error {
	publishedAt := p.now()
	body, err := NewRenewalReminderEvent(reminder, publishedAt).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    publishedAt,
			Type:         RenewalReminderEventType,
			MessageId:    reminder.SubscriptionID.String() + ":" + reminder.NextBillingDate.Format("2006-01-02"),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish reminder event: %w", err)
	}

	p.logger.DebugContext(ctx, "published renewal reminder event",
		"subscription_id", reminder.SubscriptionID,
		"exchange", p.exchange,
		"routing_key", p.routingKey)

	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
