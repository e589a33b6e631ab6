package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// Queue names. checkout_intents carries "intent created" events consumed by
// the fulfiller; order_events carries settlement notifications for any
// downstream consumer (email, analytics).
const (
	IntentQueue = "checkout_intents"
	OrderQueue  = "order_events"
)

// IntentCreatedEvent is the message published when a checkout intent
// document is created. At-least-once delivery: the fulfiller must tolerate
// seeing the same intent id more than once.
type IntentCreatedEvent struct {
	IntentID string `json:"intent_id"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient creates a new RabbitMQ client. It connects to RabbitMQ, sets up
// a channel and declares the queues upfront.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range []string{IntentQueue, OrderQueue} {
		_, err = ch.QueueDeclare(
			queue, // name
			true,  // durable (persists messages across broker restarts)
			false, // delete when unused
			false, // exclusive (only one connection can use it)
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
		}
	}

	log.Println("RabbitMQ client connected and queues declared.")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

func (c *Client) publish(queue string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	err := c.channel.Publish(
		"",    // exchange: default exchange
		queue, // routing key: the queue name
		false, // mandatory: if true, returns message if it cannot be routed
		false, // immediate: if true, returns message if it cannot be delivered to any consumer
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Make message persistent
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishIntentCreated announces that a checkout intent document was
// created. The fulfiller consumes these to mint the Stripe session.
func (c *Client) PublishIntentCreated(intentID string) error {
	body, err := json.Marshal(IntentCreatedEvent{IntentID: intentID})
	if err != nil {
		return fmt.Errorf("failed to marshal intent event to JSON: %w", err)
	}
	if err := c.publish(IntentQueue, body); err != nil {
		return err
	}
	log.Printf(" [x] Sent intent created event for %s", intentID)
	return nil
}

// PublishOrderSettled publishes a settlement notification for an order.
func (c *Client) PublishOrderSettled(orderData map[string]interface{}) error {
	body, err := json.Marshal(orderData)
	if err != nil {
		return fmt.Errorf("failed to marshal order data to JSON: %w", err)
	}
	if err := c.publish(OrderQueue, body); err != nil {
		return err
	}
	log.Printf(" [x] Sent order settled event: %s", body)
	return nil
}

// ConsumeIntentEvents starts a goroutine that feeds checkout_intents
// messages to the handler. Messages are acked on success and nacked with
// requeue on failure, so delivery is at-least-once.
func (c *Client) ConsumeIntentEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		IntentQueue, // queue
		"",          // consumer tag: unique identifier for the consumer
		false,       // auto-ack: set to false to manually acknowledge messages
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for checkout intent events.")

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				// Requeue so the intent gets another fulfillment attempt.
				// The idempotency key on the Stripe call keeps this safe.
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
