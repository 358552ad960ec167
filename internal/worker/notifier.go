package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/notifier_mock.go -package=mocks

type eventConsumer interface {
	Consume(out chan<- queue.NotificationEvent, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, evt queue.NotificationEvent)
}

// Notifier runs the consumer side of the bus: a pool of workers that pull
// notification events off the queue and feed them to the router. Handlers
// are idempotent, so processing events concurrently and redelivering under
// at-least-once semantics are both safe.
type Notifier struct {
	queue   eventConsumer
	handler messageHandler
}

func NewNotifier(q eventConsumer, h messageHandler) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
	}
}

func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	evtChan := make(chan queue.NotificationEvent, workerCount*10)

	go func() {
		if err := n.queue.Consume(evtChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume events")
		}
	}()

	for i := 0; i < workerCount; i++ {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case evt := <-evtChan:
					n.handler.HandleMessage(ctx, evt)
				}
			}
		}(i)
	}

	wg.Wait()
	zlog.Logger.Print("notifier stopped")
}
