package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
)

type Config struct {
	DB *gorm.DB `ignored:"true"`

	ProdEnv bool `envconfig:"PROD_ENV"`

	Api struct {
		Addr    string `envconfig:"API_ADDR" default:":8080"`
		BaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
	}

	Postgres struct {
		Host     string `envconfig:"PG_HOST" default:"localhost"`
		User     string `envconfig:"PG_USER" default:"postgres"`
		Password string `envconfig:"PG_PASSWORD"`
		DbName   string `envconfig:"PG_DBNAME" default:"dashboard"`
		Port     uint16 `envconfig:"PG_PORT" default:"5432"`
		SslMode  string `envconfig:"PG_SSLMODE" default:"disable"`
	}

	Ansa struct {
		Host        string `envconfig:"ANSA_HOST" required:"true"`
		AdminApiKey string `envconfig:"ANSA_ADMIN_API_KEY"`
	}

	Session struct {
		SigningKey string        `envconfig:"SESSION_SIGNING_KEY" required:"true"`
		CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"dash_session"`
		Lifetime   time.Duration `envconfig:"SESSION_LIFETIME" default:"168h"`
	}
}

func ReadConfig() *Config {
	// ENVPATH is optional; prod deployments set real env vars instead
	if path := os.Getenv("ENVPATH"); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic("can't load env file: " + err.Error())
		}
	} else {
		_ = godotenv.Load()
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic("read config: " + err.Error())
	}

	return &config
}
