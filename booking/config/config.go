package config

import (
	"log"
	"sync"
	"time"

	"github.com/campsite/booking-service/pkg/kafka"
	"github.com/campsite/booking-service/pkg/logger"
	"github.com/campsite/booking-service/pkg/postgres"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKING_HTTP_PORT" default:"8480"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

// Booking holds the reservation rules and the lock/retry knobs. By default
// creates retry twice and updates five times, backoff starts at 500ms and caps
// at 1s; the pessimistic range query waits longer than the plain one.
type Booking struct {
	MaxStayDays  int `envconfig:"BOOKING_MAX_STAY_DAYS" default:"3"`
	WindowMonths int `envconfig:"BOOKING_WINDOW_MONTHS" default:"1"`

	CreateRetryAttempts int           `envconfig:"BOOKING_CREATE_RETRY_ATTEMPTS" default:"2"`
	UpdateRetryAttempts int           `envconfig:"BOOKING_UPDATE_RETRY_ATTEMPTS" default:"5"`
	RetryInitialDelay   time.Duration `envconfig:"BOOKING_RETRY_INITIAL_DELAY" default:"500ms"`
	RetryMaxDelay       time.Duration `envconfig:"BOOKING_RETRY_MAX_DELAY" default:"1s"`

	SelectLockTimeout          time.Duration `envconfig:"BOOKING_SELECT_LOCK_TIMEOUT" default:"3s"`
	SelectForUpdateLockTimeout time.Duration `envconfig:"BOOKING_SELECT_FOR_UPDATE_LOCK_TIMEOUT" default:"6s"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Booking  Booking      `yaml:"booking"`
	Log      logger.Log   `yaml:"log"`
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

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
