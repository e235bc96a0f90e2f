package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"bakra-mandi/pkg/config"
	"bakra-mandi/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	FarmAlertQueueName = "farm_alert_queue"
	FarmAlertExchange  = "farm-alerts"
	FarmAlertKey       = "farm_event"
)

// Client publishes farm alerts (new contact messages, reel likes) so the
// seller's notification tooling can pick them up out of band.
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
		FarmAlertExchange, // name
		"direct",          // type
		true,              // durable
		false,             // auto-deleted
		false,             // internal
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		FarmAlertQueueName, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		amqp.Table{
			"x-max-priority": 10, // contact messages outrank like events
		},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		FarmAlertQueueName,
		FarmAlertKey,
		FarmAlertExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
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

// PublishAlert publishes a farm alert task to the queue with priority
func (c *Client) PublishAlert(task map[string]interface{}) error {
	priority := 1 // Default priority
	if p, ok := task["priority"].(int); ok {
		priority = p
		// Clamp priority to 0-10 range
		if priority < 0 {
			priority = 0
		}
		if priority > 10 {
			priority = 10
		}
	}

	taskJSON, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	err = c.channel.Publish(
		FarmAlertExchange, // exchange
		FarmAlertKey,      // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         taskJSON,
			Priority:     uint8(priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)

	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish alert to exchange=%s, routing_key=%s: %v", FarmAlertExchange, FarmAlertKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published farm alert to exchange=%s, routing_key=%s: %s", FarmAlertExchange, FarmAlertKey, string(taskJSON))
	return nil
}

// ConsumeAlerts consumes farm alert tasks from the queue
func (c *Client) ConsumeAlerts(handler func(task map[string]interface{}) error) error {
	msgs, err := c.channel.Consume(
		FarmAlertQueueName, // queue
		"",                 // consumer
		false,              // auto-ack (we'll manually ack after processing)
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from farm alert queue: %s", FarmAlertQueueName)

	go func() {
		for msg := range msgs {
			var task map[string]interface{}
			if err := json.Unmarshal(msg.Body, &task); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal alert task: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false) // Reject and don't requeue
				continue
			}

			if err := handler(task); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed to process alert task: %v, task=%+v", err, task)
				msg.Nack(false, true) // Reject and requeue
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}
