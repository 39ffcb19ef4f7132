package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: connection URL is empty")
	ErrFailedToParseRedisConnString = errors.New("redis: invalid connection URL")
	ErrHealthcheckFailed            = errors.New("redis: ping failed")
)
