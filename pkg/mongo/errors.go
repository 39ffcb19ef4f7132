package mongo

import "errors"

var (
	ErrEmptyConnectionURL   = errors.New("mongo: connection URL is empty")
	ErrFailedToCreateClient = errors.New("mongo: failed to create client")
	ErrHealthcheckFailed    = errors.New("mongo: ping failed")
)
