package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal(15*time.Minute, config.SessionBudget)
	req.Equal(15*time.Second, config.SessionTick)
	req.Equal(30*time.Second, config.PingInterval)
	req.Equal(8080, config.Port)
	req.Empty(config.JWTSecret)
	locale, err := config.Locale()
	req.NoError(err)
	req.Equal(language.English, locale)
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("SESSION_BUDGET", "10m")
	t.Setenv("PARTICIPANT_LOCALE", "fr-FR")
	t.Setenv("JWT_SECRET", "s3cret")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(10*time.Minute, config.SessionBudget)
	req.Equal("s3cret", config.JWTSecret)
	locale, err := config.Locale()
	req.NoError(err)
	base, _ := locale.Base()
	req.Equal("fr", base.String())
}

func TestConfig_Validate_Rejects_Bad_Values(t *testing.T) {
	req := require.New(t)

	config := Config{SessionBudget: time.Minute, SessionTick: time.Second, PingInterval: time.Second, ConnectionBufferSize: 8, ParticipantLocale: "en"}
	req.NoError(config.Validate())

	config.ConnectionBufferSize = 0
	req.Error(config.Validate())

	config.ConnectionBufferSize = 8
	config.ParticipantLocale = "not a locale!"
	req.Error(config.Validate())
}
