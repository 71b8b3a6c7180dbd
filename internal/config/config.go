package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	FrontendURL string `yaml:"frontend_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
	Issuer        string `yaml:"issuer"`
	AccessTTL     string `yaml:"access_ttl"`
	RefreshTTL    string `yaml:"refresh_ttl"`
}

type AuthConfig struct {
	RequireEmailVerification bool   `yaml:"require_email_verification"`
	ResetTokenTTL            string `yaml:"reset_token_ttl"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

type RateLimitConfig struct {
	Window      string `yaml:"window"`
	MaxRequests int    `yaml:"max_requests"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Auth      AuthConfig      `yaml:"auth"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Casbin    CasbinConfig    `yaml:"casbin"`
}

type Config struct {
	Port        string
	GinMode     string
	FrontendURL string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTIssuer        string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration

	RequireEmailVerification bool
	ResetTokenTTL            time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	RateLimitWindow time.Duration
	RateLimitMax    int

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// secrets and deploy-specific values.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(withDefault(env("JWT_EXPIRES_IN", file.JWT.AccessTTL), "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(withDefault(env("JWT_REFRESH_EXPIRES_IN", file.JWT.RefreshTTL), "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(withDefault(file.Auth.ResetTokenTTL, "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	rlWindow, err := time.ParseDuration(withDefault(file.RateLimit.Window, "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}

	requireVerification := file.Auth.RequireEmailVerification
	if v := os.Getenv("REQUIRE_EMAIL_VERIFICATION"); v != "" {
		requireVerification = v == "true"
	}

	return &Config{
		Port:        env("PORT", fmt.Sprintf("%d", file.App.Port)),
		GinMode:     withDefault(file.App.GinMode, "release"),
		FrontendURL: env("FRONTEND_URL", withDefault(file.App.FrontendURL, "http://localhost:3000")),

		DSN: env("DATABASE_URL", file.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       file.Redis.DB,

		JWTAccessSecret:  env("JWT_SECRET", file.JWT.AccessSecret),
		JWTRefreshSecret: env("JWT_REFRESH_SECRET", file.JWT.RefreshSecret),
		JWTIssuer:        withDefault(file.JWT.Issuer, "nexora"),
		AccessTTL:        accTTL,
		RefreshTTL:       refTTL,

		RequireEmailVerification: requireVerification,
		ResetTokenTTL:            resetTTL,

		SMTPHost: env("SMTP_HOST", file.SMTP.Host),
		SMTPPort: atoi(env("SMTP_PORT", fmt.Sprintf("%d", file.SMTP.Port))),
		SMTPUser: env("SMTP_USER", file.SMTP.User),
		SMTPPass: env("SMTP_PASS", file.SMTP.Pass),
		SMTPFrom: env("SMTP_FROM", withDefault(file.SMTP.From, "NEXORA <noreply@nexora.com>")),

		RateLimitWindow: rlWindow,
		RateLimitMax:    maxRequests(file.RateLimit.MaxRequests),

		CasbinModelPath: withDefault(file.Casbin.ModelPath, "config/rbac_model.conf"),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &file, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func maxRequests(n int) int {
	if n <= 0 {
		return 100
	}
	return n
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
