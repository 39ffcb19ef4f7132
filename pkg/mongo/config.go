package mongo

import "time"

type Config struct {
	ConnectionURL     string        `env:"MONGODB_URL"`                                       // ConnectionURL is the URL of the database. Empty disables mongo.
	ConnectTimeout    time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`          // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize       uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`            // MaxPoolSize is the maximum number of connections in the connection pool.
	MinPoolSize       uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"0"`              // MinPoolSize is the minimum number of connections in the connection pool.
	MaxConnIdleTime   time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`      // MaxConnIdleTime is the maximum time that a connection can remain idle in the connection pool.
	MaxDocumentLength uint          `env:"MONGODB_LOG_MAX_DOCUMENT_LENGTH" envDefault:"1000"` // MaxDocumentLength truncates commands in log records.
}
