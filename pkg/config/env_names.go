package config

const EnvPrefix = "ste"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Canonical env var names, shared with tests and deployment manifests.
const (
	EnvAppEnv   = "STE_APP_ENV"
	EnvAppPort  = "STE_APP_PORT"
	EnvSMTPHost = "STE_SMTP_HOST"
	EnvSMTPFrom = "STE_SMTP_FROM"
	EnvRedisURL = "STE_REDIS_URL"
)
