package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	Cors struct {
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"cors"`

	Search struct {
		ApiKey   string `yaml:"apiKey"`
		EngineId string `yaml:"engineId"`
	} `yaml:"search"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"gemini"`

	ElevenLabs struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"elevenLabs"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Files struct {
		Topics    string `yaml:"topics"`
		Blueprint string `yaml:"blueprint"`
	} `yaml:"files"`
}

// Load reads the configuration file, then applies environment overrides and
// defaults. A missing file is not an error: every option can come from the
// environment, and the operations that need an absent key degrade per their
// own fallback policy.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	overrideString(&cfg.Search.ApiKey, "GOOGLE_API_KEY")
	overrideString(&cfg.Search.EngineId, "SEARCH_ENGINE_ID")
	overrideString(&cfg.Gemini.ApiKey, "GEMINI_API_KEY")
	overrideString(&cfg.ElevenLabs.ApiKey, "ELEVENLABS_API_KEY")
	overrideString(&cfg.Database.URI, "MONGODB_URI")

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		if port := os.Getenv("PORT"); port != "" {
			fmt.Sscanf(port, "%d", &cfg.Server.Port)
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if len(cfg.Cors.AllowOrigins) == 0 {
		cfg.Cors.AllowOrigins = []string{"*"}
	}
	if cfg.Files.Topics == "" {
		cfg.Files.Topics = "./topics.txt"
	}
	if cfg.Files.Blueprint == "" {
		cfg.Files.Blueprint = "./system_blueprint.json"
	}

	return &cfg, nil
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
