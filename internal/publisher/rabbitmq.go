package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"service_alerts/internal/broadcast"
	"service_alerts/internal/domain"
)

// FeedMessageType is the AMQP type of feed snapshot messages.
const FeedMessageType = "feed"

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declare(ch *amqp.Channel, cfg Config) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// AlertMessage is the body of one published enriched alert.
type AlertMessage struct {
	Dataset   string       `json:"dataset"`
	Alert     domain.Alert `json:"alert"`
	Timestamp time.Time    `json:"timestamp"`
}

// Publish sends every alert as its own persistent message, stopping at the first failure.
// It returns the number of messages accepted by the broker.
func (r *RabbitMQ) Publish(ctx context.Context, dataset string, alerts []domain.Alert) (int, error) {
	for i := range alerts {
		if err := r.publishOne(ctx, dataset, &alerts[i]); err != nil {
			return i, err
		}
	}
	r.logger.Debug("published alerts", "dataset", dataset, "count", len(alerts))
	return len(alerts), nil
}

func (r *RabbitMQ) publishOne(ctx context.Context, dataset string, alert *domain.Alert) error {
	msg := AlertMessage{
		Dataset:   dataset,
		Alert:     *alert,
		Timestamp: time.Now().UTC(),
	}
	msg.Alert.InputChecksum = ""

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	if err := r.publish(ctx, dataset, body, nil); err != nil {
		return fmt.Errorf("publish alert %s: %w", alert.ID, err)
	}
	return nil
}

// FeedMessage is the body of one published feed snapshot.
type FeedMessage struct {
	Feed      string             `json:"feed"`
	Window    broadcast.Window   `json:"window"`
	Planned   bool               `json:"planned"`
	Alerts    []broadcast.Record `json:"alerts"`
	Timestamp time.Time          `json:"timestamp"`
}

// PublishFeed sends the whole feed as one persistent message. The feed name is carried
// in the "feed" header so consumers can replace their copy of that feed.
func (r *RabbitMQ) PublishFeed(ctx context.Context, feed broadcast.Feed) error {
	msg := FeedMessage{
		Feed:      feed.Name(),
		Window:    feed.Window,
		Planned:   feed.Planned,
		Alerts:    feed.Records,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}

	if err := r.publish(ctx, FeedMessageType, body, amqp.Table{"feed": msg.Feed}); err != nil {
		return fmt.Errorf("publish feed %s: %w", msg.Feed, err)
	}

	r.logger.Debug("published feed", "feed", msg.Feed, "alerts", len(msg.Alerts))
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, msgType string, body []byte, headers amqp.Table) error {
	return r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			Headers:      headers,
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Type:         msgType,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
