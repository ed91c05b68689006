package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"findarestaurant/internal/storage"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port        string
	DatasetPath string
	LookupsPath string
	Backend     string
	CORSOrigins []string
	WarmDataset bool

	// R2 is used only when R2.Bucket is set.
	R2 storage.Config
}

// UseR2 reports whether the dataset is read from object storage.
func (c *Config) UseR2() bool { return c.R2.Bucket != "" }

// LoadConfig reads the environment, loading .env first outside production.
func LoadConfig() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	warm, err := strconv.ParseBool(getEnv("WARM_DATASET", "true"))
	if err != nil {
		return nil, fmt.Errorf("WARM_DATASET: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		DatasetPath: getEnv("DATASET_PATH", "zomato.csv"),
		LookupsPath: os.Getenv("LOOKUPS_PATH"),
		Backend:     strings.ToLower(getEnv("REPOSITORY_BACKEND", BackendMemory)),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		WarmDataset: warm,
		R2: storage.Config{
			Bucket:    os.Getenv("DATASET_BUCKET"),
			Endpoint:  os.Getenv("R2_ENDPOINT"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("REPOSITORY_BACKEND must be %q or %q, got %q", BackendMemory, BackendSQLite, c.Backend)
	}

	if len(c.CORSOrigins) == 0 {
		return errors.New("CORS_ORIGINS lists no origin")
	}

	if c.DatasetPath == "" {
		return errors.New("DATASET_PATH is empty")
	}

	if c.UseR2() {
		required := []struct{ key, value string }{
			{"R2_ENDPOINT", c.R2.Endpoint},
			{"R2_ACCESS_KEY", c.R2.AccessKey},
			{"R2_SECRET_KEY", c.R2.SecretKey},
		}
		for _, r := range required {
			if r.value == "" {
				return fmt.Errorf("missing env var: %s", r.key)
			}
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
