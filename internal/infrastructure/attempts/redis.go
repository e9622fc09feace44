package attempts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"saukstas/internal/domain/model"
	"saukstas/pkg/logger"
)

const maxUpdateRetries = 10

var ErrContended = errors.New("login attempts key kept changing during update")

// RedisStore shares counters between instances.
type RedisStore struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func NewRedisStore(cfg Config) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	s := &RedisStore{
		client:  redis.NewClient(opts),
		prefix:  cfg.Prefix,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
	if s.prefix == "" {
		s.prefix = "saukstas:login:"
	}
	if s.timeout <= 0 {
		s.timeout = 2 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("connected to redis", "addr", opts.Addr)

	return s, nil
}

func (s *RedisStore) Load(ctx context.Context, key string) (model.LoginAttempts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return decode(s.client.Get(ctx, s.prefix+key))
}

// Update runs fn inside a WATCH/MULTI transaction and retries when another
// instance wrote the key in between.
func (s *RedisStore) Update(ctx context.Context, key string, ttl time.Duration,
	fn func(model.LoginAttempts) model.LoginAttempts,
) (model.LoginAttempts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key = s.prefix + key

	var result model.LoginAttempts
	txf := func(tx *redis.Tx) error {
		current, err := decode(tx.Get(ctx, key))
		if err != nil {
			return err
		}

		result = fn(current)
		raw, err := json.Marshal(result)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, ttl)

			return nil
		})

		return err
	}

	for range maxUpdateRetries {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return model.LoginAttempts{}, err
		}

		return result, nil
	}

	return model.LoginAttempts{}, ErrContended
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func decode(cmd *redis.StringCmd) (model.LoginAttempts, error) {
	raw, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return model.LoginAttempts{}, nil
	}
	if err != nil {
		return model.LoginAttempts{}, err
	}

	var attempts model.LoginAttempts
	if err := json.Unmarshal(raw, &attempts); err != nil {
		return model.LoginAttempts{}, err
	}

	return attempts, nil
}
