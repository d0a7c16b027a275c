package internal

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type Config struct {
	Host       string `env:"HOST,default=localhost"`
	Port       int    `env:"PORT,default=8080"`
	HealthPort int    `env:"HEALTH_PORT,default=8081"`
	LogLevel   string `env:"LOG_LEVEL,default=INFO"`

	// JWTSecret may be empty: the server still starts and refuses every
	// connection as misconfigured.
	JWTSecret      string `env:"JWT_SECRET"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	SessionBudget        time.Duration `env:"SESSION_BUDGET,default=15m"`
	SessionTick          time.Duration `env:"SESSION_TICK,default=15s"`
	PingInterval         time.Duration `env:"PING_INTERVAL,default=30s"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	MembershipTimeout    time.Duration `env:"MEMBERSHIP_TIMEOUT,default=5s"`
	ParticipantLocale    string        `env:"PARTICIPANT_LOCALE,default=en"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=10s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=2s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Locale parses PARTICIPANT_LOCALE, used to sort participant names.
func (c Config) Locale() (language.Tag, error) {
	tag, err := language.Parse(c.ParticipantLocale)
	if err != nil {
		return language.Und, fmt.Errorf("PARTICIPANT_LOCALE %q: %w", c.ParticipantLocale, err)
	}
	return tag, nil
}

func (c Config) Validate() error {
	if c.SessionTick <= 0 || c.SessionBudget <= 0 {
		return fmt.Errorf("SESSION_BUDGET and SESSION_TICK must be positive")
	}
	if c.PingInterval <= 0 {
		return fmt.Errorf("PING_INTERVAL must be positive")
	}
	if c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("CONNECTION_BUFFER_SIZE must be positive, got %d", c.ConnectionBufferSize)
	}
	_, err := c.Locale()
	return err
}
