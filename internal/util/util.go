package util

import (
	"github.com/berfenger/homedash/internal/config"

	"go.uber.org/zap"
)

func LoadTestConfig() config.Config {
	return config.Config{
		LogLevel: zap.DebugLevel,
		HomeAssistant: config.HomeAssistantConfig{
			TimeoutMillis: 2000,
		},
		Store: config.StoreConfig{
			Path:        "data/homedash.db",
			BusyTimeout: 5,
		},
		Poller: config.PollerConfig{
			IntervalMillis: 1000,
		},
		MQTT: config.MQTTConfig{
			Enable:    true,
			Host:      "localhost",
			Port:      1883,
			BaseTopic: "homedash",
		},
		Port: 8080,
	}
}
