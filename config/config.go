package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"storefront/internal/application/usecase"
	"storefront/internal/bot/session"
	"storefront/internal/bot/telegram"
	"storefront/internal/domain/model"
	"storefront/internal/infrastructure/apiclient"
	"storefront/internal/infrastructure/blobstore"
	"storefront/internal/infrastructure/blobstore/minio"
	"storefront/internal/infrastructure/broker"
	"storefront/internal/infrastructure/database"
	"storefront/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	DBConfig        database.Config        `yaml:"db_config"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOBucket     minio.BucketConfig     `yaml:"minio_bucket"`
	Media           blobstore.Config       `yaml:"media"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Auth            usecase.AuthConfig     `yaml:"auth"`
	APIClient       apiclient.Config       `yaml:"api_client"`
	Bot             telegram.Config        `yaml:"bot"`
	Sessions        session.Config         `yaml:"sessions"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPServerConfig struct {
	Address         string  `yaml:"address"`
	BodyLimit       string  `yaml:"body_limit"`
	RateLimit       float64 `yaml:"rate_limit"`
	ShutdownTimeout int64   `yaml:"shutdown_timeout_in_ms"`
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
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Auth.Secret = os.Getenv("JWT_SECRET")
	config.Bot.Token = os.Getenv("BOT_TOKEN")
	config.APIClient.BaseURL = os.Getenv("API_BASE_URL")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch model.StorageKind(c.Media.Storage) {
	case model.StorageInline, model.StorageFilesystem, model.StorageMinIO:
	default:
		return errors.New("media.storage must be one of inline, filesystem, minio")
	}

	if c.Media.Storage == string(model.StorageFilesystem) && c.Media.FilesystemDir == "" {
		return errors.New("media.filesystem_dir is required for filesystem storage")
	}

	return nil
}

// CheckAPI validates what the run command needs.
func (c *Config) CheckAPI() error {
	if c.DBConfig.URI == "" {
		return Error{reason: "DATABASE_URI is required"}
	}

	if c.Auth.Secret == "" {
		return Error{reason: "JWT_SECRET is required"}
	}

	return nil
}

// CheckBot validates what the bot command needs.
func (c *Config) CheckBot() error {
	if c.Bot.Token == "" {
		return Error{reason: "BOT_TOKEN is required"}
	}

	if c.APIClient.BaseURL == "" {
		return Error{reason: "API_BASE_URL is required"}
	}

	return nil
}
