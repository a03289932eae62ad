package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Schedule ScheduleConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// UpstreamConfig points at the bookings API that owns the data.
type UpstreamConfig struct {
	BaseURL    string
	APIKey     string
	ProviderID string
	Timeout    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type ScheduleConfig struct {
	OptimisticUpdates bool
	SlotHeight        int
	CacheTTL          time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	upstreamTimeout, err := time.ParseDuration(viper.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		upstreamTimeout = 20 * time.Second
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("SCHEDULE_CACHE_TTL"))
	if err != nil {
		cacheTTL = 15 * time.Minute
	}

	slotHeight := viper.GetInt("SCHEDULE_SLOT_HEIGHT")
	if slotHeight <= 0 {
		slotHeight = 60
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Upstream: UpstreamConfig{
			BaseURL:    viper.GetString("UPSTREAM_BASE_URL"),
			APIKey:     viper.GetString("UPSTREAM_API_KEY"),
			ProviderID: viper.GetString("UPSTREAM_PROVIDER_ID"),
			Timeout:    upstreamTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Schedule: ScheduleConfig{
			OptimisticUpdates: viper.GetBool("SCHEDULE_OPTIMISTIC_UPDATES"),
			SlotHeight:        slotHeight,
			CacheTTL:          cacheTTL,
		},
	}

	return config, nil
}
