package queue

import (
	"fmt"

	"stayhub-notifications/pkg/config"
	"stayhub-notifications/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// EventsExchange carries domain events published by the booking services.
	EventsExchange = "booking-events"

	// queuePrefix namespaces this service's queues on the shared broker.
	queuePrefix = "notifications."
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		EventsExchange, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Consume binds a durable queue to the given event topic and processes
// deliveries on a dedicated goroutine. The handler owns all processing
// failures: a returned error drops the message without requeue, so one bad
// event can never stall the consumer loop or trigger a redelivery storm.
func (c *Client) Consume(topic string, handler func(body []byte) error) error {
	queueName := queuePrefix + topic

	if _, err := c.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	if err := c.channel.QueueBind(
		queueName,      // queue name
		topic,          // routing key
		EventsExchange, // exchange
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", queueName, err)
	}

	msgs, err := c.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack (we'll manually ack after processing)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer for %s: %w", queueName, err)
	}

	c.logger.Info("[RABBITMQ] Started consuming topic %s (queue %s)", topic, queueName)

	go func() {
		for msg := range msgs {
			if err := handler(msg.Body); err != nil {
				c.logger.Error("[RABBITMQ] Dropping message on topic %s: %v", topic, err)
				msg.Nack(false, false)
				continue
			}
			msg.Ack(false)
		}
	}()

	return nil
}

// Publish sends a JSON payload to the events exchange under the given routing
// key.
func (c *Client) Publish(topic string, body []byte) error {
	err := c.channel.Publish(
		EventsExchange, // exchange
		topic,          // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}
	return nil
}
