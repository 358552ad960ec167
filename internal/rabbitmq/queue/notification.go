package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/config"
	"github.com/gamenightlabs/notifier/internal/model"
)

// NotificationEvent is the envelope produced from a claimed schedule and
// carried over the bus. ParticipantID is nil for game-wide kinds and set
// for per-participant kinds; Deadline is the point past which the event
// should be dropped rather than delivered.
type NotificationEvent struct {
	Kind          model.Kind `json:"kind"`
	ScheduleID    uuid.UUID  `json:"schedule_id"`
	GameID        uuid.UUID  `json:"game_id"`
	ParticipantID *uuid.UUID `json:"participant_id,omitempty"`
	Deadline      time.Time  `json:"deadline"`
}

type NotificationQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer

	routingKey string
}

// NewNotificationQueue declares the exchange and queue topology for
// notification events: a durable main queue dead-lettering into the DLQ,
// and a retry queue that TTLs messages back onto the main queue.
func NewNotificationQueue(ch *rabbitmq.Channel, cfg *config.Config) (*NotificationQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.RabbitMQ.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.RabbitMQ.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.Queue,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(cfg.RabbitMQ.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
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

	if err := ch.QueueBind(mainQ.Name, cfg.RabbitMQ.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &NotificationQueue{Publisher: pub, Consumer: cons, routingKey: cfg.RabbitMQ.RoutingKey}, nil
}

func (q *NotificationQueue) Publish(evt NotificationEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

func (q *NotificationQueue) Consume(out chan<- NotificationEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var evt NotificationEvent
			if err := json.Unmarshal(m, &evt); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal event")
				continue
			}

			out <- evt
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
