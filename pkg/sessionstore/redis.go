package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/comdirect"
)

const defaultKey = "comdirect_cache"

// The session has to be re-established after 20 minutes anyway, so the
// cache entry may just as well expire then.
const cacheTTL = 20 * time.Minute

type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(
	client *redis.Client,
) *Redis {
	return &Redis{
		client: client,
		key:    defaultKey,
	}
}

func (s *Redis) Load(ctx context.Context) (*comdirect.State, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	var state comdirect.State
	if err = json.Unmarshal([]byte(value), &state); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached session state")
	}

	return &state, nil
}

func (s *Redis) Save(ctx context.Context, state comdirect.State) error {
	value, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.key, value, cacheTTL).Err()
}
