package worker

import (
	"context"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Job func(ctx context.Context) error

type Lock interface {
	Release(ctx context.Context)
}

// Locker serializes access to the banking API across processes. Acquire
// blocks until the lock is held.
type Locker interface {
	Acquire(ctx context.Context) (Lock, error)
}

// Queue runs jobs one at a time: the pool has a single worker and every
// job additionally holds the shared banking lock while it runs. The
// banking session is not built for concurrent use, so this is load
// bearing, not an optimization.
type Queue struct {
	pool    *workerpool.WorkerPool
	locker  Locker
	baseCtx context.Context
}

func NewQueue(
	baseCtx context.Context,
	locker Locker,
) *Queue {
	return &Queue{
		pool:    workerpool.New(1),
		locker:  locker,
		baseCtx: baseCtx,
	}
}

// Enqueue submits a job and returns its id without waiting for it.
func (q *Queue) Enqueue(name string, job Job) string {
	id := uuid.NewString()

	q.pool.Submit(func() {
		log := zerolog.Ctx(q.baseCtx).With().
			Str("job", name).
			Str("jobId", id).
			Logger()
		ctx := log.WithContext(q.baseCtx)

		lock, err := q.locker.Acquire(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to acquire banking lock")
			return
		}
		defer lock.Release(ctx)

		if err = job(ctx); err != nil {
			log.Error().Err(err).Msg("job failed")
			return
		}

		log.Info().Msg("job finished")
	})

	return id
}

// StopWait drains the queue, blocking until every submitted job ran.
func (q *Queue) StopWait() {
	q.pool.StopWait()
}
