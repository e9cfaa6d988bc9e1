package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cache        CacheConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"OBMOTORS_APP_ENV" required:"true"`
	Port         string `envconfig:"OBMOTORS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"OBMOTORS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OBMOTORS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"OBMOTORS_DB_DSN"`
	Driver string `envconfig:"OBMOTORS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"OBMOTORS_DB_HOST"`
	LegacyPort     int    `envconfig:"OBMOTORS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"OBMOTORS_DB_USER"`
	LegacyPassword string `envconfig:"OBMOTORS_DB_PASSWORD"`
	LegacyName     string `envconfig:"OBMOTORS_DB_NAME"`
	LegacySSLMode  string `envconfig:"OBMOTORS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"OBMOTORS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"OBMOTORS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"OBMOTORS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"OBMOTORS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"OBMOTORS_REDIS_URL"`
	Address      string        `envconfig:"OBMOTORS_REDIS_ADDR"`
	Password     string        `envconfig:"OBMOTORS_REDIS_PASSWORD"`
	DB           int           `envconfig:"OBMOTORS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"OBMOTORS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OBMOTORS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OBMOTORS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OBMOTORS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OBMOTORS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. The cache
// is optional; without it reads go straight to the database.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CacheConfig struct {
	ListTTL   time.Duration `envconfig:"OBMOTORS_CACHE_LIST_TTL" default:"30s"`
	DetailTTL time.Duration `envconfig:"OBMOTORS_CACHE_DETAIL_TTL" default:"5m"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"OBMOTORS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"OBMOTORS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"OBMOTORS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"OBMOTORS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"OBMOTORS_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"OBMOTORS_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"OBMOTORS_CORS_ALLOWED_ORIGINS"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Driver == DriverSQLite {
		// sqlite keeps working without a DSN for throwaway local runs
		db.DSN = "file:obmotors.db?cache=shared"
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
