package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Env            string        `yaml:"env"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	UserCollection string `yaml:"user_collection"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type NewsConfig struct {
	BaseURL  string        `yaml:"base_url"`
	APIKey   string        `yaml:"api_key"`
	PageSize int           `yaml:"page_size"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Mongo  MongoConfig  `yaml:"mongo"`
	Redis  RedisConfig  `yaml:"redis"`
	News   NewsConfig   `yaml:"news"`
}

// Load reads the optional YAML config file, then applies .env and
// environment-variable overrides on top of the defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	overrideFromEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Env:          "development",
			Port:         3001,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "newsdb",
			UserCollection: "users",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		News: NewsConfig{
			BaseURL:  "https://newsapi.org/v2/top-headlines",
			PageSize: 20,
			CacheTTL: 5 * time.Minute,
		},
	}
}

func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("NEWS_API_URL"); v != "" {
		cfg.News.BaseURL = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}
	if cfg.Mongo.Database == "" || cfg.Mongo.UserCollection == "" {
		return fmt.Errorf("mongo database and user collection are required")
	}
	if cfg.News.BaseURL == "" {
		return fmt.Errorf("news provider base URL is required")
	}
	return nil
}
