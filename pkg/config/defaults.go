package config

import "time"

const (
	DefaultMongoConnTimeout = 10 * time.Second

	// AllOrigins is the CORS default when CORS_ORIGINS is unset.
	AllOrigins = "*"

	DefaultPort = "8080"

	DefaultLogLevel = "info"

	DefaultMaxListResults = 1000

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaTopic = "booking-events"
)
