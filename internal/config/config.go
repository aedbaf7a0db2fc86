// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Paths
	DataDir   string `yaml:"data_dir" env:"JOBSCOUT_DATA_DIR"`
	ScrapeDir string `yaml:"scrape_dir" env:"JOBSCOUT_SCRAPE_DIR"`
	LogsDir   string `yaml:"logs_dir" env:"JOBSCOUT_LOGS_DIR"`
	//Scrape tuning
	MaxPosts           int `yaml:"max_posts"`
	TopSkills          int `yaml:"top_skills"`
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`
	//Telegram reporting (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if dir := os.Getenv("JOBSCOUT_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	if dir := os.Getenv("JOBSCOUT_SCRAPE_DIR"); dir != "" {
		cfg.ScrapeDir = dir
	}

	if dir := os.Getenv("JOBSCOUT_LOGS_DIR"); dir != "" {
		cfg.LogsDir = dir
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if cfg.ScrapeDir == "" {
		cfg.ScrapeDir = "Web-scraped"
	}

	if cfg.LogsDir == "" {
		cfg.LogsDir = "logs"
	}

	if cfg.MaxPosts <= 0 {
		cfg.MaxPosts = 5
	}

	if cfg.TopSkills <= 0 {
		cfg.TopSkills = 3
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		cfg.HTTPTimeoutSeconds = 10
	}

	return cfg
}

// TelegramEnabled reports whether run reporting is configured.
// A scrape run is still useful without anyone to notify, so a missing
// token only disables the reporter instead of failing startup.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
