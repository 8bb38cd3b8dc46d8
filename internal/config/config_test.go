package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckMQTTTopic(t *testing.T) {

	assert := assert.New(t)

	topic, err := CheckMQTTTopic("HomeDash_1")
	assert.NoError(err)
	assert.Equal("homedash_1", topic)

	_, err = CheckMQTTTopic("home/dash")
	assert.Error(err)
	_, err = CheckMQTTTopic("")
	assert.Error(err)
}

func TestParseLogLevel(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(zap.WarnLevel, ParseLogLevel("warn"))
	assert.Equal(zap.DebugLevel, ParseLogLevel("trace"))
	assert.Equal(zap.InfoLevel, ParseLogLevel("nope"))
}

func validConfig() Config {
	return Config{
		HomeAssistant: HomeAssistantConfig{TimeoutMillis: 10000},
		Store:         StoreConfig{Path: "data/homedash.db", BusyTimeout: 5},
		Poller:        PollerConfig{IntervalMillis: 30000},
		MQTT:          MQTTConfig{BaseTopic: "HomeDash"},
	}
}

func TestValidate(t *testing.T) {

	require := require.New(t)

	cfg := validConfig()
	require.NoError(Validate(&cfg))
	require.Equal("homedash", cfg.MQTT.BaseTopic)

	cfg = validConfig()
	cfg.Poller.IntervalMillis = 500
	require.Error(Validate(&cfg))

	cfg = validConfig()
	cfg.HomeAssistant.TimeoutMillis = 10
	require.Error(Validate(&cfg))

	cfg = validConfig()
	cfg.HomeAssistant.URL = "http://ha"
	require.Error(Validate(&cfg))
}

func TestLoadFromFileAndEnv(t *testing.T) {

	require := require.New(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(path, []byte(`
log_level: debug
homeassistant:
  url: http://ha.local:8123
  token: abc
mqtt:
  enable: true
  base_topic: dash
`), 0600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9090")
	t.Setenv("HOMEDASH_POLLER_INTERVAL_MILLIS", "5000")

	cfg, err := Load()
	require.NoError(err)
	require.Equal(zap.DebugLevel, cfg.LogLevel)
	require.Equal(uint(9090), cfg.Port)
	require.Equal("http://ha.local:8123", cfg.HomeAssistant.URL)
	require.Equal(uint32(10000), cfg.HomeAssistant.TimeoutMillis)
	require.Equal(uint32(5000), cfg.Poller.IntervalMillis)
	require.Equal("data/homedash.db", cfg.Store.Path)
	require.True(cfg.MQTT.Enable)
	require.Equal("dash", cfg.MQTT.BaseTopic)
	require.Equal("*redacted*", cfg.Redacted().HomeAssistant.Token)
}
