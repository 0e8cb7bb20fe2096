package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type BookingConfig struct {
	FallbackTourName  string
	FallbackTourPrice float64
	RecentCount       int
	IDStart           int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "travel-booking")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("FALLBACK_TOUR_NAME", "Unknown Tour")
	viper.SetDefault("FALLBACK_TOUR_PRICE", 500.0)
	viper.SetDefault("RECENT_BOOKINGS", 3)
	viper.SetDefault("BOOKING_ID_START", 1000)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional, only a malformed file is fatal
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Booking: BookingConfig{
			FallbackTourName:  viper.GetString("FALLBACK_TOUR_NAME"),
			FallbackTourPrice: viper.GetFloat64("FALLBACK_TOUR_PRICE"),
			RecentCount:       viper.GetInt("RECENT_BOOKINGS"),
			IDStart:           viper.GetInt("BOOKING_ID_START"),
		},
	}

	return config, nil
}
