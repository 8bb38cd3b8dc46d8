package config

import (
	"errors"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	LogLevel      zapcore.Level
	HomeAssistant HomeAssistantConfig `mapstructure:"homeassistant"`
	Store         StoreConfig         `mapstructure:"store"`
	Fixtures      FixturesConfig      `mapstructure:"fixtures"`
	Poller        PollerConfig        `mapstructure:"poller"`
	MQTT          MQTTConfig          `mapstructure:"mqtt"`
	Port          uint                `mapstructure:"port"`
	HttpLog       bool                `mapstructure:"http_log"`
}

// HomeAssistantConfig seeds the connection at start up. Credentials set at
// runtime live in the store.
type HomeAssistantConfig struct {
	URL           string `mapstructure:"url"`
	Token         string `mapstructure:"token"`
	TimeoutMillis uint32 `mapstructure:"timeout_millis"`
}

type StoreConfig struct {
	Path        string `mapstructure:"path"`
	BusyTimeout int    `mapstructure:"busy_timeout"`
}

type FixturesConfig struct {
	File string `mapstructure:"file"`
}

type PollerConfig struct {
	IntervalMillis uint32 `mapstructure:"interval_millis"`
}

type MQTTConfig struct {
	Enable    bool
	Host      string
	Port      int
	Username  string
	Password  string
	BaseTopic string `mapstructure:"base_topic"`
}

func CheckMQTTTopic(baseTopic string) (string, error) {
	// check and fix base topic
	lowerBaseTopic := strings.ToLower(baseTopic)
	baseTopicRegexp := regexp.MustCompile("^[a-z0-9_]+$")
	matches := baseTopicRegexp.FindAllStringSubmatch(lowerBaseTopic, 1)
	if len(matches) <= 0 {
		return "", errors.New("invalid topic. can only contain letters, numbers and underscores")
	}
	return lowerBaseTopic, nil
}

// Load reads the configuration from HOMEDASH_* env vars and the optional
// yaml file pointed by CONFIG_FILE.
func Load() (*Config, error) {

	// alias PORT => HOMEDASH_PORT
	if port := os.Getenv("PORT"); port != "" {
		os.Setenv("HOMEDASH_PORT", port)
	}

	setDefaults()

	viper.SetEnvPrefix("homedash")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// if defined, try to load config from yaml file
	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		if _, err := os.Stat(cfgFile); err == nil {
			slog.Info("Using config", "file", cfgFile)
			viper.SetConfigFile(cfgFile)

			err = viper.ReadInConfig()
			if err != nil {
				slog.Error("Error reading config file", "error", err)
			}
		}
	}

	var cfg Config

	err := viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = ParseLogLevel(viper.GetString("log_level"))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func ParseLogLevel(level string) zapcore.Level {
	switch level {
	case "trace":
		return zap.DebugLevel
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "error":
		return zap.ErrorLevel
	case "warn":
		return zap.WarnLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// Validate checks bounds and normalizes topics in place.
func Validate(cfg *Config) error {
	// check and fix base topic
	baseTopic, err := CheckMQTTTopic(cfg.MQTT.BaseTopic)
	if err != nil {
		return errors.New("invalid base topic. can only contain letters, numbers and underscores")
	}
	cfg.MQTT.BaseTopic = baseTopic

	// check bounds
	if cfg.HomeAssistant.TimeoutMillis < 1000 {
		return errors.New("config param homeassistant.timeout_millis should be >= 1000")
	}
	if cfg.Poller.IntervalMillis < 1000 {
		return errors.New("config param poller.interval_millis should be >= 1000")
	}
	if cfg.Store.Path == "" {
		return errors.New("config param store.path is required")
	}
	if (cfg.HomeAssistant.URL == "") != (cfg.HomeAssistant.Token == "") {
		return errors.New("config params homeassistant.url and homeassistant.token must be set together")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("port", 8080)
	viper.SetDefault("http_log", false)
	viper.SetDefault("homeassistant.url", "")
	viper.SetDefault("homeassistant.token", "")
	viper.SetDefault("homeassistant.timeout_millis", 10000)
	viper.SetDefault("store.path", "data/homedash.db")
	viper.SetDefault("store.busy_timeout", 5)
	viper.SetDefault("fixtures.file", "")
	viper.SetDefault("poller.interval_millis", 30000)
	viper.SetDefault("mqtt.enable", false)
	viper.SetDefault("mqtt.host", "localhost")
	viper.SetDefault("mqtt.port", 1883)
	viper.SetDefault("mqtt.username", "")
	viper.SetDefault("mqtt.password", "")
	viper.SetDefault("mqtt.base_topic", "homedash")
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	c.MQTT.Username = "*redacted*"
	c.MQTT.Password = "*redacted*"
	if c.HomeAssistant.Token != "" {
		c.HomeAssistant.Token = "*redacted*"
	}
	return c
}
