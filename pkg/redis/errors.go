package redis

import "errors"

// Sentinel errors for opening the shared translation-cache connection.
var (
	// ErrEmptyConnectionURL marks a blank connection URL setting.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")

	// ErrFailedToParseURL marks a URL that is not a valid redis:// or
	// rediss:// address.
	ErrFailedToParseURL = errors.New("redis: failed to parse connection URL")

	// ErrConnectionFailed marks exhausted connection retries.
	ErrConnectionFailed = errors.New("redis: failed to establish connection")

	// ErrHealthcheckFailed marks a failed liveness ping.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
