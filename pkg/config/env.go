package config

const (
	EnvMongoURL         = "MONGO_URL"
	EnvDatabaseName     = "DB_NAME"
	EnvMongoConnTimeout = "MONGO_CONN_TIMEOUT"

	EnvCORSOrigins = "CORS_ORIGINS"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvMaxListResults = "MAX_LIST_RESULTS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"
)
