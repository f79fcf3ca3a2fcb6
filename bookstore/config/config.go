package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/service"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/cache"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/kafka"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/logger"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKSTORE_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKSTORE_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

// Admin is the account created on startup when it does not exist yet.
type Admin struct {
	Name     string `envconfig:"ADMIN_NAME" default:"Administrator"`
	Email    string `envconfig:"ADMIN_EMAIL"`
	Password string `envconfig:"ADMIN_PASSWORD" json:"-"`
}

type Config struct {
	Server   HTTPServer     `yaml:"server"`
	Database postgres.DB    `yaml:"db"`
	Log      logger.Log     `yaml:"log"`
	Kafka    kafka.Config   `yaml:"kafka"`
	Redis    cache.Config   `yaml:"redis"`
	Policy   service.Policy `yaml:"policy"`
	Admin    Admin          `yaml:"admin"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options are applied last.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.ReadTimeout = d
	}
}

func printConfig(cfg *Config) {
	safe := *cfg
	safe.Database.Password = "***"
	safe.Redis.Password = "***"
	jscfg, _ := json.MarshalIndent(safe, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
