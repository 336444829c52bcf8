// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package events

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-yieldsplit/pkg/lifecycle"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

var (
	_ splitter.EventSink     = (*RedisSink)(nil)
	_ lifecycle.StartStopper = (*RedisSink)(nil)
)

type (
	// RedisConfig is the config of the redis stream sink
	RedisConfig struct {
		Addr          string        `yaml:"addr"`
		Password      string        `yaml:"password"`
		DB            int           `yaml:"db"`
		Stream        string        `yaml:"stream"`
		MaxLen        int64         `yaml:"maxLen"`
		Retries       uint64        `yaml:"retries"`
		RetryInterval time.Duration `yaml:"retryInterval"`
	}

	streamClient interface {
		Ping(ctx context.Context) *redis.StatusCmd
		XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
		Close() error
	}

	// RedisSink appends records to a redis stream, for indexers to consume
	RedisSink struct {
		client streamClient
		cfg    RedisConfig
	}
)

// DefaultRedisConfig is the default config of the redis stream sink
var DefaultRedisConfig = RedisConfig{
	Addr:          "127.0.0.1:6379",
	Stream:        "yieldsplit",
	MaxLen:        100000,
	Retries:       3,
	RetryInterval: 200 * time.Millisecond,
}

// NewRedisSink creates a sink on a new redis client
func NewRedisSink(cfg RedisConfig) *RedisSink {
	return newRedisSink(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), cfg)
}

func newRedisSink(client streamClient, cfg RedisConfig) *RedisSink {
	return &RedisSink{client: client, cfg: cfg}
}

// Start checks the connection
func (s *RedisSink) Start(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrapf(err, "failed to connect to redis at %s", s.cfg.Addr)
	}
	return nil
}

// Stop closes the client
func (s *RedisSink) Stop(_ context.Context) error {
	return s.client.Close()
}

// Emit appends the record to the stream, retrying transient failures
func (s *RedisSink) Emit(ctx context.Context, r splitter.Record) error {
	fields, err := Fields(r)
	if err != nil {
		return err
	}
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	args := &redis.XAddArgs{
		Stream: s.cfg.Stream,
		MaxLen: s.cfg.MaxLen,
		Approx: true,
		Values: values,
	}
	return backoff.Retry(func() error {
		if err := s.client.XAdd(ctx, args).Err(); err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}, backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.RetryInterval), s.cfg.Retries))
}
