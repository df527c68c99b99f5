package notification

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	scheduleRepo "beautycrave/database/repository/schedule"
	"beautycrave/services/tasks"
)

// Watcher subscribes to the schedule document feed and enqueues a
// confirmation task for every newly booked slot. It is the in-process
// equivalent of a document-update trigger: the booking transaction only has
// to write a self-consistent document, the diff does the rest.
type Watcher struct {
	Repo   scheduleRepo.ScheduleRepository
	Queue  *asynq.Client
	Logger *zap.Logger
}

// Run consumes the change feed until ctx is cancelled, reopening the stream
// with a short backoff when it drops.
func (w *Watcher) Run(ctx context.Context) {
	for {
		changes, err := w.Repo.Watch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.Logger.Error("notification watcher: failed to open change feed", zap.Error(err))
			select {
			case <-time.After(5 * time.Second):
				continue
			case <-ctx.Done():
				return
			}
		}

		for change := range changes {
			for _, payload := range DiffNewBookings(change.Before, change.After) {
				task, err := tasks.NewConfirmationTask(payload)
				if err != nil {
					w.Logger.Error("notification watcher: bad payload", zap.Error(err))
					continue
				}
				// TaskID pins de-duplication to the slot: replayed change
				// events enqueue the same confirmation only once.
				if _, err := w.Queue.EnqueueContext(ctx, task,
					asynq.TaskID("confirmation-"+payload.SlotID),
					asynq.Retention(24*time.Hour),
				); err != nil && err != asynq.ErrTaskIDConflict {
					w.Logger.Error("notification watcher: enqueue failed",
						zap.String("slotId", payload.SlotID),
						zap.Error(err))
				}
			}
		}

		if ctx.Err() != nil {
			return
		}
		w.Logger.Warn("notification watcher: change feed closed, reopening")
	}
}
