package config

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv        = "ELDERCARE_APP_ENV"
	EnvAppPort       = "ELDERCARE_APP_PORT"
	EnvDBDriver      = "ELDERCARE_DB_DRIVER"
	EnvDBDSN         = "ELDERCARE_DB_DSN"
	EnvSessionSecret = "ELDERCARE_SESSION_SECRET"
	EnvRedisURL      = "ELDERCARE_REDIS_URL"
)
