package bootstrap

import (
	"time"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort    string        `envconfig:"HTTP_PORT" default:":8080"`
	JwtSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	LockTimeout time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"3s"`

	DbSettings database.PostgresSettings
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
