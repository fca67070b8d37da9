// Package queue wires the call-dispatch topology: a direct exchange, a durable
// main queue the dialer workers consume, a TTL delay queue that dead-letters
// back to the main queue (used for reminders whose call window has not opened
// yet), and a DLQ for jobs that exhaust their retries.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/config"
)

const (
	RoutingKey      = "call"
	DelayRoutingKey = "call.delay"
)

// CallJob asks a dialer worker to attempt one reminder's call.
type CallJob struct {
	ReminderID    uuid.UUID `json:"reminder_id"`
	AppointmentAt time.Time `json:"appointment_at"`
}

// CallQueue owns the publisher and consumer for call jobs.
type CallQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewCallQueue declares the exchange, queues and bindings.
func NewCallQueue(ch *rabbitmq.Channel, cfg *config.Config) (*CallQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.RabbitMQ.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.RabbitMQ.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	// Messages parked here come back to the main queue when the TTL fires.
	delayArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.Queue,
		"x-message-ttl":             int32(cfg.RabbitMQ.DelayTTL / time.Millisecond),
	}

	delayQ, err := qm.DeclareQueue(cfg.RabbitMQ.DelayQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    delayArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare delay queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.RabbitMQ.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	if err := ch.QueueBind(delayQ.Name, DelayRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the delay queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &CallQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues a call job for immediate evaluation.
func (q *CallQueue) Publish(job CallJob, strategy retry.Strategy) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// PublishDelayed parks a call job in the delay queue. It returns to the main
// queue after the queue TTL, so a not-yet-due reminder is re-evaluated on a
// coarse cadence until its call window opens.
func (q *CallQueue) PublishDelayed(job CallJob, strategy retry.Strategy) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, DelayRoutingKey, "application/json", strategy)
}

// Consume decodes call jobs from the main queue into out until the consumer
// stops.
func (q *CallQueue) Consume(ctx context.Context, out chan<- CallJob, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				var job CallJob
				if err := json.Unmarshal(m, &job); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal call job")
					continue
				}

				out <- job
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
