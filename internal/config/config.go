package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	RF         RFConfig
	Classifier ClassifierConfig
	AWS        AWSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// RFConfig holds the analysis constants shared by every request
type RFConfig struct {
	ReferenceImpedance float64
}

// ClassifierConfig says where the trained match-topology model is loaded from
type ClassifierConfig struct {
	ModelPath string
	S3Bucket  string
	S3Key     string
}

// AWSConfig holds AWS/S3 configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Endpoint      string
}

var keys = []string{
	"PORT",
	"ENVIRONMENT",
	"ALLOWED_ORIGINS",
	"REFERENCE_IMPEDANCE",
	"CLASSIFIER_MODEL_PATH",
	"CLASSIFIER_S3_BUCKET",
	"CLASSIFIER_S3_KEY",
	"AWS_REGION",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"S3_ENDPOINT",
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("REFERENCE_IMPEDANCE", 50.0)
	v.SetDefault("CLASSIFIER_MODEL_PATH", "models/match_model.json")
	v.SetDefault("CLASSIFIER_S3_BUCKET", "")
	v.SetDefault("CLASSIFIER_S3_KEY", "")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_ENDPOINT", "")

	// Environment variables override .env file values
	v.AutomaticEnv()
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	// Read from .env files based on environment
	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}
	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Missing file is fine, a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .env.%s: %w", env, err)
		}
	}

	var config Config
	config.Server.Port = v.GetString("PORT")
	config.Server.Env = env
	config.Server.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	config.RF.ReferenceImpedance = v.GetFloat64("REFERENCE_IMPEDANCE")
	config.Classifier.ModelPath = strings.TrimSpace(v.GetString("CLASSIFIER_MODEL_PATH"))
	config.Classifier.S3Bucket = v.GetString("CLASSIFIER_S3_BUCKET")
	config.Classifier.S3Key = v.GetString("CLASSIFIER_S3_KEY")
	config.AWS.Region = v.GetString("AWS_REGION")
	config.AWS.AccessKeyID = v.GetString("AWS_ACCESS_KEY_ID")
	config.AWS.SecretAccessKey = v.GetString("AWS_SECRET_ACCESS_KEY")
	config.AWS.S3Endpoint = v.GetString("S3_ENDPOINT")

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("env", config.Server.Env).
		Float64("z0", config.RF.ReferenceImpedance).
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Msg("Configuration loaded")

	return &config, nil
}

func (c *Config) validate() error {
	if !(c.RF.ReferenceImpedance > 0) {
		return fmt.Errorf("REFERENCE_IMPEDANCE must be positive, got %g", c.RF.ReferenceImpedance)
	}
	if c.Classifier.S3Key != "" && c.Classifier.S3Bucket == "" {
		return fmt.Errorf("CLASSIFIER_S3_KEY requires CLASSIFIER_S3_BUCKET")
	}
	if c.Classifier.S3Key == "" && c.Classifier.ModelPath == "" {
		return fmt.Errorf("either CLASSIFIER_MODEL_PATH or CLASSIFIER_S3_KEY must be set")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
