package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment        string // "development" or "production"
	HTTPAddr           string // listen address for the API
	DataPath           string // path to the local storage file
	ExpandHorizonWeeks int    // how far ahead weekly patterns are projected
	ExpandCron         string // cron schedule for background re-expansion
}

func Load() (*Config, error) {
	// A .env file is optional; plain environment variables work too.
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env file")
	}

	cfg := &Config{
		Environment: os.Getenv("ENV"),
		HTTPAddr:    os.Getenv("HTTP_ADDR"),
		DataPath:    os.Getenv("DATA_PATH"),
		ExpandCron:  os.Getenv("EXPAND_CRON"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = "localhost:8080"
	}
	if cfg.DataPath == "" {
		cfg.DataPath = "tutorbook.db"
	}
	if cfg.ExpandCron == "" {
		cfg.ExpandCron = "0 3 * * *"
	}

	cfg.ExpandHorizonWeeks = 12
	if v := os.Getenv("EXPAND_HORIZON_WEEKS"); v != "" {
		weeks, err := strconv.Atoi(v)
		if err != nil || weeks < 1 {
			return nil, fmt.Errorf("EXPAND_HORIZON_WEEKS must be a positive integer, got %q", v)
		}
		cfg.ExpandHorizonWeeks = weeks
	}

	return cfg, nil
}
