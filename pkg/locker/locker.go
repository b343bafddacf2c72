package locker

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Every operation that touches the banking API shares this one lock
// name, so at most one login/refresh/retrieval sequence is in flight.
const defaultLockName = "comdirect_lock"

const (
	defaultTTL   = 30 * time.Second
	acquireRetry = 500 * time.Millisecond
	renewDivisor = 3
)

var renewScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0`)

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// Redlock is a single-instance redis lock with a short expiry and
// background renewal, so a crashed holder frees the lock on its own.
type Redlock struct {
	client *redis.Client
	name   string
	ttl    time.Duration
}

func NewRedlock(
	client *redis.Client,
) *Redlock {
	return &Redlock{
		client: client,
		name:   defaultLockName,
		ttl:    defaultTTL,
	}
}

type Lock struct {
	parent *Redlock
	value  string
	stop   chan struct{}
	done   chan struct{}
}

// Acquire blocks until the lock is held or the context is cancelled.
func (r *Redlock) Acquire(ctx context.Context) (*Lock, error) {
	value := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, r.name, value, r.ttl).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to acquire lock")
		}

		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(acquireRetry):
		}
	}

	lock := &Lock{
		parent: r,
		value:  value,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go lock.renew(ctx)

	return lock, nil
}

func (l *Lock) renew(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.parent.ttl / renewDivisor)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := renewScript.Run(ctx, l.parent.client,
				[]string{l.parent.name}, l.value, l.parent.ttl.Milliseconds()).Err()
			if err != nil && !errors.Is(err, redis.Nil) {
				zerolog.Ctx(ctx).Error().Err(err).Msg("failed to renew banking lock")
			}
		}
	}
}

// Release stops the renewal and deletes the lock if it is still ours.
func (l *Lock) Release(ctx context.Context) {
	close(l.stop)
	<-l.done

	err := releaseScript.Run(ctx, l.parent.client,
		[]string{l.parent.name}, l.value).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to release banking lock")
	}
}
