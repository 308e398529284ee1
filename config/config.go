package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Reminder bot specifics
	Telegram TelegramConfig
	TickTick TickTickConfig
	Parser   ParserConfig
	Digest   DigestConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	// AuthorizedUserID is the single Telegram user the bot listens to,
	// kept as a string as it arrives from the environment.
	AuthorizedUserID string
}

type TickTickConfig struct {
	BaseURL     string
	ProjectID   string
	AccessToken string
}

type ParserConfig struct {
	Timezone string
}

type DigestConfig struct {
	Enabled bool
	// Cron is a 6-field quartz cron expression, e.g. "0 0 8 * * *".
	Cron       string
	RunOnStart bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.AuthorizedUserID = viper.GetString("telegram.authorized_user_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if userID := viper.GetString("telegram_user_id"); userID != "" {
		cfg.Telegram.AuthorizedUserID = userID
	}

	cfg.TickTick.BaseURL = viper.GetString("ticktick.base_url")
	cfg.TickTick.ProjectID = viper.GetString("ticktick.project_id")
	cfg.TickTick.AccessToken = viper.GetString("ticktick.access_token")
	if projectID := viper.GetString("ticktick_project_id"); projectID != "" {
		cfg.TickTick.ProjectID = projectID
	}
	if token := viper.GetString("ticktick_access_token"); token != "" {
		cfg.TickTick.AccessToken = token
	}

	cfg.Parser.Timezone = viper.GetString("parser.timezone")

	cfg.Digest.Enabled = viper.GetBool("digest.enabled")
	cfg.Digest.Cron = viper.GetString("digest.cron")
	cfg.Digest.RunOnStart = viper.GetBool("digest.run_on_start")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("ticktick.base_url", "https://api.ticktick.com")
	viper.SetDefault("parser.timezone", "Local")
	viper.SetDefault("digest.enabled", true)
	viper.SetDefault("digest.cron", "0 0 8 * * *")
	viper.SetDefault("digest.run_on_start", false)
}
