package db

import "errors"

var (
	ErrInvalidConnectionURL = errors.New("db: invalid connection URL")
	ErrConnectionFailed     = errors.New("db: failed to open connection")
	ErrHealthcheckFailed    = errors.New("db: healthcheck failed")
)
