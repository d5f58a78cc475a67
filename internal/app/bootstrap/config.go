package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string
	AppName   string

	HTTPPort int
	GRPCPort int

	RedisURL     string
	KafkaBrokers []string

	KafkaTopicLeadEvents     string
	KafkaTopicPropertyEvents string
	KafkaTopicSessionEvents  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	JWTKeyID         string
	JWTPrivateKeyPEM string
	JWTPublicKeyPEM  string
	BcryptCost       int

	TokenTTL    time.Duration
	MockLatency time.Duration

	SeedDemoData bool
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		AppName  string `yaml:"app_name"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		RedisURL                 string   `yaml:"redis_url"`
		KafkaBrokers             []string `yaml:"kafka_brokers"`
		KafkaTopicLeadEvents     string   `yaml:"kafka_topic_lead_events"`
		KafkaTopicPropertyEvents string   `yaml:"kafka_topic_property_events"`
		KafkaTopicSessionEvents  string   `yaml:"kafka_topic_session_events"`
		OpenAIModel              string   `yaml:"openai_model"`
		OpenAIBaseURL            string   `yaml:"openai_base_url"`
	} `yaml:"dependencies"`
	Auth struct {
		TokenTTLMinutes    int    `yaml:"token_ttl_minutes"`
		MockLatencyMs      int    `yaml:"mock_latency_ms"`
		JWTKeyID           string `yaml:"jwt_key_id"`
		JWTPrivateKeyPath  string `yaml:"jwt_private_key_path"`
		JWTPublicKeyPath   string `yaml:"jwt_public_key_path"`
		BcryptCost         int    `yaml:"bcrypt_cost"`
	} `yaml:"auth"`
	Demo struct {
		SeedData *bool `yaml:"seed_data"`
	} `yaml:"demo"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:                "estateflow-backoffice",
		AppName:                  "estateflow_user",
		HTTPPort:                 8080,
		GRPCPort:                 9090,
		KafkaTopicLeadEvents:     "crm.lead_events",
		KafkaTopicPropertyEvents: "crm.property_events",
		KafkaTopicSessionEvents:  "crm.session_events",
		OpenAIModel:              "gpt-4o-mini",
		TokenTTL:                 12 * time.Hour,
		MockLatency:              800 * time.Millisecond,
		SeedDemoData:             true,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.AppName != "" {
			cfg.AppName = f.Service.AppName
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = trimNonEmpty(f.Dependencies.KafkaBrokers)
		}
		if f.Dependencies.KafkaTopicLeadEvents != "" {
			cfg.KafkaTopicLeadEvents = f.Dependencies.KafkaTopicLeadEvents
		}
		if f.Dependencies.KafkaTopicPropertyEvents != "" {
			cfg.KafkaTopicPropertyEvents = f.Dependencies.KafkaTopicPropertyEvents
		}
		if f.Dependencies.KafkaTopicSessionEvents != "" {
			cfg.KafkaTopicSessionEvents = f.Dependencies.KafkaTopicSessionEvents
		}
		if f.Dependencies.OpenAIModel != "" {
			cfg.OpenAIModel = f.Dependencies.OpenAIModel
		}
		if f.Dependencies.OpenAIBaseURL != "" {
			cfg.OpenAIBaseURL = f.Dependencies.OpenAIBaseURL
		}
		if f.Auth.TokenTTLMinutes > 0 {
			cfg.TokenTTL = time.Duration(f.Auth.TokenTTLMinutes) * time.Minute
		}
		if f.Auth.MockLatencyMs > 0 {
			cfg.MockLatency = time.Duration(f.Auth.MockLatencyMs) * time.Millisecond
		}
		if f.Auth.JWTKeyID != "" {
			cfg.JWTKeyID = f.Auth.JWTKeyID
		}
		if f.Auth.BcryptCost > 0 {
			cfg.BcryptCost = f.Auth.BcryptCost
		}
		if f.Auth.JWTPrivateKeyPath != "" {
			pem, readErr := os.ReadFile(f.Auth.JWTPrivateKeyPath)
			if readErr != nil {
				return Config{}, fmt.Errorf("read jwt private key: %w", readErr)
			}
			cfg.JWTPrivateKeyPEM = string(pem)
		}
		if f.Auth.JWTPublicKeyPath != "" {
			pem, readErr := os.ReadFile(f.Auth.JWTPublicKeyPath)
			if readErr != nil {
				return Config{}, fmt.Errorf("read jwt public key: %w", readErr)
			}
			cfg.JWTPublicKeyPEM = string(pem)
		}
		if f.Demo.SeedData != nil {
			cfg.SeedDemoData = *f.Demo.SeedData
		}
	}

	cfg.AppName = envOrDefault("APP_NAME", cfg.AppName)
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopicLeadEvents = envOrDefault("KAFKA_TOPIC_LEAD_EVENTS", cfg.KafkaTopicLeadEvents)
	cfg.KafkaTopicPropertyEvents = envOrDefault("KAFKA_TOPIC_PROPERTY_EVENTS", cfg.KafkaTopicPropertyEvents)
	cfg.KafkaTopicSessionEvents = envOrDefault("KAFKA_TOPIC_SESSION_EVENTS", cfg.KafkaTopicSessionEvents)
	cfg.OpenAIAPIKey = envOrDefault("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIModel = envOrDefault("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.OpenAIBaseURL = envOrDefault("OPENAI_BASE_URL", cfg.OpenAIBaseURL)
	cfg.JWTKeyID = envOrDefault("JWT_KEY_ID", cfg.JWTKeyID)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.BcryptCost = envInt("BCRYPT_COST", cfg.BcryptCost)
	cfg.TokenTTL = time.Duration(envInt("TOKEN_TTL_MINUTES", int(cfg.TokenTTL.Minutes()))) * time.Minute
	cfg.MockLatency = time.Duration(envInt("MOCK_LATENCY_MS", int(cfg.MockLatency.Milliseconds()))) * time.Millisecond
	cfg.SeedDemoData = envBool("SEED_DEMO_DATA", cfg.SeedDemoData)

	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return trimNonEmpty(strings.Split(raw, ","))
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
