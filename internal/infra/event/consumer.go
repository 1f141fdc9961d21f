package event

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gocabs/rideflow/pkg/logger"
	carrier "github.com/gocabs/rideflow/pkg/otel"
)

// Consumer pulls messages off a queue and feeds them to a handler. Trace
// context is restored from the AMQP headers so worker spans join the request
// trace that produced the event.
type Consumer struct {
	Conn   *amqp.Connection
	Logger logger.Logger
}

func NewConsumer(conn *amqp.Connection, l logger.Logger) *Consumer {
	return &Consumer{Conn: conn, Logger: l}
}

func (c *Consumer) Start(ctx context.Context, queueName, routingKey string, handler MessageHandler) error {
	ch, err := c.Conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := c.setupTopology(ch, queueName, routingKey); err != nil {
		return fmt.Errorf("error when configuring topology: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	c.Logger.Info(ctx, "Waiting for messages",
		logger.String("queue", queueName),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %s", queueName)
			}
			c.handleDelivery(queueName, d, handler)
		}
	}
}

func (c *Consumer) handleDelivery(queueName string, d amqp.Delivery, handler MessageHandler) {
	msgCtx := otel.GetTextMapPropagator().Extract(context.Background(), carrier.AMQPHeadersCarrier(d.Headers))

	tracer := otel.GetTracerProvider().Tracer("worker-tracer")
	msgCtx, span := tracer.Start(msgCtx, "ProcessMessage", trace.WithAttributes(
		attribute.String("queue.name", queueName),
		attribute.String("messaging.message_id", d.MessageId),
	))
	defer span.End()

	c.Logger.Debug(msgCtx, "Received message from queue",
		logger.String("queue", queueName),
	)

	if err := handler(msgCtx, d.Body, d.Headers); err != nil {
		span.RecordError(err)
		c.Logger.Warn(msgCtx, "Handler failed, requeueing message",
			logger.String("queue", queueName),
			logger.WithError(err),
		)
		d.Nack(false, true)
		return
	}
	d.Ack(false)
}

func (c *Consumer) setupTopology(ch *amqp.Channel, queueName, routingKey string) error {
	if _, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	return ch.QueueBind(queueName, routingKey, exchange, false, nil)
}
