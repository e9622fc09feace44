package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"saukstas/internal/infrastructure/attempts"
	"saukstas/internal/infrastructure/database"
	"saukstas/internal/infrastructure/mailer"
	"saukstas/internal/infrastructure/minio"
	"saukstas/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment   string               `yaml:"environment"`
	HTTP          HTTPConfig           `yaml:"http"`
	Auth          AuthConfig           `yaml:"auth"`
	Newsletter    NewsletterConfig     `yaml:"newsletter"`
	MinIOClient   minio.ClientConfig   `yaml:"minio_client"`
	MinIOUploader minio.UploaderConfig `yaml:"minio_uploader"`
	MinIORemover  minio.RemoverConfig  `yaml:"minio_remover"`
	DBConfig      database.Config      `yaml:"db_config"`
	Attempts      attempts.Config      `yaml:"redis"`
	Mailer        mailer.Config        `yaml:"mailer"`
	Logger        logger.Config        `yaml:"logger"`
}

type HTTPConfig struct {
	Address            string   `yaml:"address"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	BodyLimit          string   `yaml:"body_limit"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`
}

type AuthConfig struct {
	JWTSecret        string
	SetupKey         string
	TokenTTLInHours  int `yaml:"token_ttl_in_hours"`
	MaxAttempts      int `yaml:"max_attempts"`
	LockoutInMinutes int `yaml:"lockout_in_minutes"`
}

type NewsletterConfig struct {
	SiteURL       string `yaml:"site_url"`
	SendDelayInMS int    `yaml:"send_delay_in_ms"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.Attempts.URI = os.Getenv("REDIS_URI")
	config.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	config.Auth.SetupKey = os.Getenv("ADMIN_SETUP_KEY")
	config.Mailer.Username = os.Getenv("MAIL_USER")
	config.Mailer.Password = os.Getenv("MAIL_PASSWORD")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.HTTP.AllowedOrigins = splitList(origins)
	}

	if port := os.Getenv("PORT"); port != "" {
		config.HTTP.Address = ":" + port
	}

	config.setDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":3001"
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = "12M"
	}
	if c.HTTP.RateLimitPerMinute == 0 {
		c.HTTP.RateLimitPerMinute = 100
	}
	if c.Auth.TokenTTLInHours == 0 {
		c.Auth.TokenTTLInHours = 24
	}
	if c.Auth.MaxAttempts == 0 {
		c.Auth.MaxAttempts = 5
	}
	if c.Auth.LockoutInMinutes == 0 {
		c.Auth.LockoutInMinutes = 15
	}
	if c.Newsletter.SendDelayInMS == 0 {
		c.Newsletter.SendDelayInMS = 100
	}
	if c.Newsletter.SiteURL == "" {
		c.Newsletter.SiteURL = "http://localhost:3000"
	}
	if c.MinIOUploader.Bucket == "" {
		c.MinIOUploader.Bucket = "saukstas"
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.DBConfig.DBName == "" {
		return errors.New("db_config.db_name must be set")
	}
	if c.Auth.MaxAttempts < 1 || c.Auth.LockoutInMinutes < 1 {
		return errors.New("auth.max_attempts and auth.lockout_in_minutes must be positive")
	}

	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
