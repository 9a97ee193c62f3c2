package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Option configures the connection pool.
type Option func(*options)

type options struct {
	maxConns      int32
	minConns      int32
	retryAttempts int
	retryInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		maxConns:      10,
		minConns:      2,
		retryAttempts: 3,
		retryInterval: 2 * time.Second,
	}
}

// WithMaxConns sets the maximum pool size.
// Default: 10.
func WithMaxConns(n int32) Option {
	return func(o *options) {
		o.maxConns = n
	}
}

// WithMinConns sets the number of connections kept open.
// Default: 2.
func WithMinConns(n int32) Option {
	return func(o *options) {
		o.minConns = n
	}
}

// WithRetry configures connection retry behavior: attempts and the base
// interval, which grows linearly per attempt.
// Default: 3 attempts, 2 second base interval.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// Connect opens a pgx pool from a postgres:// URL, verifying connectivity
// with a ping before returning. Transient startup failures are retried with
// a linearly growing backoff. The caller owns the pool and closes it on
// shutdown.
func Connect(ctx context.Context, url string, opts ...Option) (*pgxpool.Pool, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnectionURL, err)
	}
	cfg.MaxConns = o.maxConns
	cfg.MinConns = o.minConns

	attempts := max(o.retryAttempts, 1)
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * o.retryInterval):
		}
	}

	return nil, ErrConnectionFailed
}

// Healthcheck returns a probe validating pool connectivity, in the
// func(context.Context) error shape health endpoints expect.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if pool == nil {
			return ErrHealthcheckFailed
		}
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
