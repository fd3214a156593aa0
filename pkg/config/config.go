package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Models   ModelsConfig   `mapstructure:"models"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type PipelineConfig struct {
	MaxTextLength            int `mapstructure:"max_text_length"`
	CompletionTimeoutSeconds int `mapstructure:"completion_timeout_seconds"`
	ReviewThreshold          int `mapstructure:"review_threshold"`
}

func (p PipelineConfig) CompletionTimeout() time.Duration {
	return time.Duration(p.CompletionTimeoutSeconds) * time.Second
}

var globalConfig Config
var modelsConfig ModelsConfig

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}

	setDefaultValues()

	if err := loadConfigFile(configPath, "models", &modelsConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load models config file: %v", err)
	}

	// Credentials in models.yaml are usually ${VAR} references, never
	// literal secrets.
	for id, m := range modelsConfig.Models {
		m.ApiKey = os.ExpandEnv(m.ApiKey)
		m.BaseURL = os.ExpandEnv(m.BaseURL)
		modelsConfig.Models[id] = m
	}

	globalConfig.Models = modelsConfig

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Pipeline.MaxTextLength == 0 {
		globalConfig.Pipeline.MaxTextLength = 10000
	}
	if globalConfig.Pipeline.CompletionTimeoutSeconds == 0 {
		globalConfig.Pipeline.CompletionTimeoutSeconds = 60
	}
	if globalConfig.Pipeline.ReviewThreshold == 0 {
		globalConfig.Pipeline.ReviewThreshold = 50
	}
}

func GetConfig() *Config {
	return &globalConfig
}
