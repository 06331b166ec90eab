package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Pricing PricingConfig `yaml:"pricing"`
	Cache   CacheConfig   `yaml:"cache"`
}

type HTTPConfig struct {
	Address             string `yaml:"address"`
	ShutdownTimeoutSecs int    `yaml:"shutdown_timeout_seconds"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// RedisConfig is optional; an empty Addr disables the flight list cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig is optional; no brokers disables booking events.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type PricingConfig struct {
	BaseFare   int `yaml:"base_fare"`
	PerBooking int `yaml:"per_booking"`
}

type CacheConfig struct {
	FlightsTTLSeconds int `yaml:"flights_ttl_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.ShutdownTimeoutSecs == 0 {
		c.HTTP.ShutdownTimeoutSecs = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Pricing.BaseFare == 0 {
		c.Pricing.BaseFare = 3000
	}
	if c.Pricing.PerBooking == 0 {
		c.Pricing.PerBooking = 50
	}
	if c.Cache.FlightsTTLSeconds == 0 {
		c.Cache.FlightsTTLSeconds = 30
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "airport-booking-notifier"
	}
}
