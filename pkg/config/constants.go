package config

// EnvPrefix namespaces every environment variable this service reads.
const EnvPrefix = "AEROLINE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and ops tooling.
const (
	EnvAppEnv     = "AEROLINE_APP_ENV"
	EnvPort       = "AEROLINE_APP_PORT"
	EnvDBDSN      = "AEROLINE_DB_DSN"
	EnvDBHost     = "AEROLINE_DB_HOST"
	EnvDBUser     = "AEROLINE_DB_USER"
	EnvDBName     = "AEROLINE_DB_NAME"
	EnvRedisURL   = "AEROLINE_REDIS_URL"
	EnvJWTSecret  = "AEROLINE_JWT_SECRET"
	EnvJWTIssuer  = "AEROLINE_JWT_ISSUER"
	EnvJWTExpMins = "AEROLINE_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
