package pg

import "errors"

var (
	ErrFailedToParseDBConfig = errors.New("pg: invalid connection string")
	ErrFailedToCreatePool    = errors.New("pg: failed to create connection pool")
	ErrHealthcheckFailed     = errors.New("pg: ping failed")
)
