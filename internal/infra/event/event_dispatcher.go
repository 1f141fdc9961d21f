package event

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"

	"github.com/gocabs/rideflow/pkg/events"
	carrier "github.com/gocabs/rideflow/pkg/otel"
)

const exchange = "amq.direct"

// Dispatcher publishes events to RabbitMQ. The event name doubles as the
// routing key. Trace context travels in the AMQP headers.
type Dispatcher struct {
	RabbitMQChannel *amqp.Channel
}

func NewDispatcher(ch *amqp.Channel) *Dispatcher {
	return &Dispatcher{RabbitMQChannel: ch}
}

func (ed *Dispatcher) Dispatch(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return err
	}
	return ed.publish(ctx, event.GetName(), payload, nil)
}

func (ed *Dispatcher) DispatchRaw(ctx context.Context, topic string, payload []byte, headers map[string]string) error {
	return ed.publish(ctx, topic, payload, headers)
}

func (ed *Dispatcher) publish(ctx context.Context, routingKey string, payload []byte, extra map[string]string) error {
	headers := make(amqp.Table)
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(headers))
	for k, v := range extra {
		headers[k] = v
	}

	return ed.RabbitMQChannel.PublishWithContext(
		ctx,
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			Headers:     headers,
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		})
}
