package worker_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/worker"
)

type fakeLock struct {
	released *int
	mu       *sync.Mutex
}

func (l fakeLock) Release(_ context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.released++
}

type fakeLocker struct {
	mu       sync.Mutex
	acquired int
	released int
}

func (l *fakeLocker) Acquire(_ context.Context) (worker.Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acquired++

	return fakeLock{released: &l.released, mu: &l.mu}, nil
}

func TestQueueRunsJobsSerially(t *testing.T) {
	locker := &fakeLocker{}
	queue := worker.NewQueue(context.Background(), locker)

	var mu sync.Mutex
	running := 0
	maxRunning := 0
	var order []string

	job := func(name string) worker.Job {
		return func(ctx context.Context) error {
			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			order = append(order, name)
			mu.Unlock()

			mu.Lock()
			running--
			mu.Unlock()
			return nil
		}
	}

	id1 := queue.Enqueue("transaction", job("first"))
	id2 := queue.Enqueue("postbox", job("second"))
	queue.Enqueue("keepalive", job("third"))

	queue.StopWait()

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 1, maxRunning)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, 3, locker.acquired)
	assert.Equal(t, 3, locker.released)
}

func TestQueueReleasesLockOnFailure(t *testing.T) {
	locker := &fakeLocker{}
	queue := worker.NewQueue(context.Background(), locker)

	queue.Enqueue("transaction", func(ctx context.Context) error {
		return assert.AnError
	})
	queue.StopWait()

	assert.Equal(t, 1, locker.acquired)
	assert.Equal(t, 1, locker.released)
}
