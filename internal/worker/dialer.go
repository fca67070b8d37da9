package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/model"
	"github.com/mahbubulalom/voice-reminder/internal/rabbitmq/queue"
)

type callQueue interface {
	Consume(ctx context.Context, out chan<- queue.CallJob, strategy retry.Strategy) error
}

type jobHandler interface {
	HandleJob(ctx context.Context, job queue.CallJob, strategy retry.Strategy)
}

type reminderService interface {
	GetReminderStatusByID(context.Context, retry.Strategy, uuid.UUID) (model.Status, error)
}

// Dialer pulls call jobs off the queue and fans them out to a pool of
// workers.
type Dialer struct {
	queue   callQueue
	handler jobHandler
	service reminderService
}

func NewDialer(q callQueue, h jobHandler, s reminderService) *Dialer {
	return &Dialer{
		queue:   q,
		handler: h,
		service: s,
	}
}

func (d *Dialer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	jobChan := make(chan queue.CallJob, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, jobChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume call jobs")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("dialer-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("dialer-%d shutting down", id)
					return
				case job, ok := <-jobChan:
					if !ok {
						zlog.Logger.Printf("dialer-%d channel closed, shutting down", id)
						return
					}

					zlog.Logger.Print("Getting reminder status...")
					status, err := d.service.GetReminderStatusByID(ctx, strategy, job.ReminderID)
					if err != nil {
						zlog.Logger.Printf("failed to get status for %s: %v", job.ReminderID, err)
						continue
					}

					zlog.Logger.Printf("Got reminder status: %s", status)

					// A reminder that already moved past scheduled has been
					// dialed or settled; re-delivered jobs for it are dropped.
					if status != model.StatusScheduled {
						zlog.Logger.Printf("reminder %s is %s, skipping", job.ReminderID, status)
						continue
					}

					d.handler.HandleJob(ctx, job, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dialer stopped")
}
