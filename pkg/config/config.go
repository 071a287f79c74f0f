package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Service    ServiceConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Password   PasswordConfig
	OfferStore OfferStoreConfig
	Shopping   ShoppingConfig
	Identity   IdentityConfig
	RateLimit  RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AEROLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"AEROLINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AEROLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AEROLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"AEROLINE_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"AEROLINE_DB_DSN"`
	Driver string `envconfig:"AEROLINE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AEROLINE_DB_HOST"`
	LegacyPort     int    `envconfig:"AEROLINE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AEROLINE_DB_USER"`
	LegacyPassword string `envconfig:"AEROLINE_DB_PASSWORD"`
	LegacyName     string `envconfig:"AEROLINE_DB_NAME"`
	LegacySSLMode  string `envconfig:"AEROLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AEROLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AEROLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AEROLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AEROLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	UseSQLite bool `envconfig:"AEROLINE_DB_USE_SQLITE" default:"false"`

	AutoMigrate bool `envconfig:"AEROLINE_DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AEROLINE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AEROLINE_REDIS_ADDR"`
	Password     string        `envconfig:"AEROLINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"AEROLINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AEROLINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AEROLINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AEROLINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AEROLINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AEROLINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AEROLINE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AEROLINE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"AEROLINE_JWT_EXPIRATION_MINUTES" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"AEROLINE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"AEROLINE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"AEROLINE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"AEROLINE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"AEROLINE_ARGON_KEY_LEN" default:"32"`
}

// OfferStoreConfig controls offer persistence and lifecycle.
type OfferStoreConfig struct {
	OfferTTL       time.Duration `envconfig:"AEROLINE_OFFER_TTL" default:"30m"`
	LookupTimeout  time.Duration `envconfig:"AEROLINE_OFFER_LOOKUP_TIMEOUT" default:"3s"`
	PurgeRetention time.Duration `envconfig:"AEROLINE_OFFER_PURGE_RETENTION" default:"720h"`
	PurgeInterval  time.Duration `envconfig:"AEROLINE_OFFER_PURGE_INTERVAL" default:"1h"`
	PurgeBatchSize int           `envconfig:"AEROLINE_OFFER_PURGE_BATCH_SIZE" default:"500"`
}

// ShoppingConfig controls the AirShopping response cache.
type ShoppingConfig struct {
	CacheTTL        time.Duration `envconfig:"AEROLINE_SHOPPING_CACHE_TTL" default:"5m"`
	OffersPerLeg    int           `envconfig:"AEROLINE_SHOPPING_OFFERS_PER_LEG" default:"3"`
	DefaultCurrency string        `envconfig:"AEROLINE_SHOPPING_CURRENCY" default:"USD"`
}

// IdentityConfig controls the sign-in / MFA flow.
type IdentityConfig struct {
	ChallengeTTL     time.Duration `envconfig:"AEROLINE_IDENTITY_CHALLENGE_TTL" default:"10m"`
	OTPLength        int           `envconfig:"AEROLINE_IDENTITY_OTP_LENGTH" default:"6"`
	DirectoryBaseURL string        `envconfig:"AEROLINE_IDENTITY_DIRECTORY_URL"`
	DirectoryAPIKey  string        `envconfig:"AEROLINE_IDENTITY_DIRECTORY_API_KEY"`
	DirectoryTimeout time.Duration `envconfig:"AEROLINE_IDENTITY_DIRECTORY_TIMEOUT" default:"5s"`
}

// RateLimitConfig throttles the sign-in surface. A zero limit or window
// disables the middleware.
type RateLimitConfig struct {
	SignInWindow time.Duration `envconfig:"AEROLINE_RATE_LIMIT_SIGNIN_WINDOW" default:"1m"`
	SignInLimit  int64         `envconfig:"AEROLINE_RATE_LIMIT_SIGNIN_LIMIT" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.UseSQLite {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
