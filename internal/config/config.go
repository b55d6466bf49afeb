package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Matching MatchingConfig `mapstructure:"matching"`
}

type AppConfig struct {
	AppName     string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"env" validate:"required"`
	HTTPPort    string `mapstructure:"http_port" validate:"required"`
	ClientURL   string `mapstructure:"client_url"`
}

type DatabaseConfig struct {
	DBHost     string `mapstructure:"host" validate:"required"`
	DBPort     string `mapstructure:"port" validate:"required"`
	DBName     string `mapstructure:"name" validate:"required"`
	DBUser     string `mapstructure:"user" validate:"required"`
	DBPassword string `mapstructure:"password"`
	DBSSLMode  string `mapstructure:"ssl_mode"`

	ConnectTimeout        time.Duration `mapstructure:"connect_timeout"`
	PoolMaxConns          int32         `mapstructure:"pool_max_conns"`
	PoolMinConns          int32         `mapstructure:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `mapstructure:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `mapstructure:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `mapstructure:"pool_health_check_period"`
}

type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a redis host is configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Host) != ""
}

func (r RedisConfig) Addr() string {
	port := strings.TrimSpace(r.Port)
	if port == "" {
		port = "6379"
	}
	return strings.TrimSpace(r.Host) + ":" + port
}

type JWTConfig struct {
	AccessSecret  string        `mapstructure:"access_secret" validate:"required"`
	RefreshSecret string        `mapstructure:"refresh_secret" validate:"required"`
	AccessTTL     time.Duration `mapstructure:"access_ttl" validate:"gt=0"`
	RefreshTTL    time.Duration `mapstructure:"refresh_ttl" validate:"gt=0"`
	Issuer        string        `mapstructure:"issuer"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

type MatchingConfig struct {
	PoolLimit          int `mapstructure:"pool_limit" validate:"gt=0"`
	CategoryPoolLimit  int `mapstructure:"category_pool_limit" validate:"gt=0"`
	RecommendedLimit   int `mapstructure:"recommended_limit" validate:"gt=0"`
	TopApplicantSkills int `mapstructure:"top_applicant_skills" validate:"gt=0"`
	PopularSkills      int `mapstructure:"popular_skills" validate:"gt=0"`
	PopularLocations   int `mapstructure:"popular_locations" validate:"gt=0"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidConfig      = errors.New("invalid configuration")
)

// envBindings keeps the variable names used by deployments.
var envBindings = map[string]string{
	"app.name":       "APP_NAME",
	"app.env":        "APP_ENV",
	"app.http_port":  "HTTP_PORT",
	"app.client_url": "CLIENT_URL",

	"database.host":                     "DB_HOST",
	"database.port":                     "DB_PORT",
	"database.name":                     "DB_NAME",
	"database.user":                     "DB_USER",
	"database.password":                 "DB_PASSWORD",
	"database.ssl_mode":                 "DB_SSL_MODE",
	"database.connect_timeout":          "DB_CONNECT_TIMEOUT",
	"database.pool_max_conns":           "DB_POOL_MAX_CONNS",
	"database.pool_min_conns":           "DB_POOL_MIN_CONNS",
	"database.pool_max_conn_lifetime":   "DB_POOL_MAX_CONN_LIFETIME",
	"database.pool_max_conn_idle_time":  "DB_POOL_MAX_CONN_IDLE_TIME",
	"database.pool_health_check_period": "DB_POOL_HEALTH_CHECK_PERIOD",

	"jwt.access_secret":  "JWT_SECRET",
	"jwt.refresh_secret": "JWT_REFRESH_SECRET",
	"jwt.access_ttl":     "JWT_EXPIRES_IN",
	"jwt.refresh_ttl":    "JWT_REFRESH_EXPIRES_IN",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "skill-matcher")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "5000")
	v.SetDefault("app.client_url", "http://localhost:3000")

	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.pool_max_conns", 10)
	v.SetDefault("database.pool_min_conns", 0)
	v.SetDefault("database.pool_max_conn_lifetime", time.Hour)
	v.SetDefault("database.pool_max_conn_idle_time", 30*time.Minute)
	v.SetDefault("database.pool_health_check_period", time.Minute)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("jwt.access_secret", "")
	v.SetDefault("jwt.refresh_secret", "")
	v.SetDefault("jwt.access_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("jwt.issuer", "skill-matcher")

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)

	v.SetDefault("matching.pool_limit", 100)
	v.SetDefault("matching.category_pool_limit", 200)
	v.SetDefault("matching.recommended_limit", 10)
	v.SetDefault("matching.top_applicant_skills", 10)
	v.SetDefault("matching.popular_skills", 20)
	v.SetDefault("matching.popular_locations", 20)
}

// Load reads configuration from defaults, an optional file at path, a .env
// file in the working directory and the environment, in increasing priority.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	trimStrings(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func trimStrings(cfg *Config) {
	cfg.App.AppName = strings.TrimSpace(cfg.App.AppName)
	cfg.App.Environment = strings.TrimSpace(cfg.App.Environment)
	cfg.App.HTTPPort = strings.TrimSpace(cfg.App.HTTPPort)
	cfg.App.ClientURL = strings.TrimSpace(cfg.App.ClientURL)
	cfg.Database.DBHost = strings.TrimSpace(cfg.Database.DBHost)
	cfg.Database.DBPort = strings.TrimSpace(cfg.Database.DBPort)
	cfg.Database.DBName = strings.TrimSpace(cfg.Database.DBName)
	cfg.Database.DBUser = strings.TrimSpace(cfg.Database.DBUser)
	cfg.Database.DBSSLMode = strings.TrimSpace(cfg.Database.DBSSLMode)
	cfg.JWT.AccessSecret = strings.TrimSpace(cfg.JWT.AccessSecret)
	cfg.JWT.RefreshSecret = strings.TrimSpace(cfg.JWT.RefreshSecret)
}

func validate(cfg Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Namespace())
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(invalid, ", "))
}
