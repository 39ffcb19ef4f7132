package redis

import "time"

type Config struct {
	ConnectionURL        string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database. It should be in the format "redis://:password@localhost:6379/0"
	DialTimeout          time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`              // DialTimeout bounds establishing a new connection.
	SlowCommandThreshold time.Duration `env:"REDIS_SLOW_COMMAND_THRESHOLD" envDefault:"50ms"`  // SlowCommandThreshold marks commands reported under the warn category.
}
