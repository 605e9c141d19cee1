package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file over Default, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return finish(cfg)
}

// LoadDefault is Load without a file.
func LoadDefault() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VERBA_SERVER_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("VERBA_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
	if v := os.Getenv("VERBA_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("VERBA_TRANSCRIBER_BACKEND"); v != "" {
		cfg.Transcriber.Backend = v
	}
	if v := os.Getenv("VERBA_WHISPER_MODEL"); v != "" {
		// A file-level model_path would otherwise pin the old model.
		cfg.Transcriber.Model = v
		cfg.Transcriber.ModelPath = ""
	}
	if v := os.Getenv("VERBA_WHISPER_MODEL_PATH"); v != "" {
		cfg.Transcriber.ModelPath = v
	}
	if v := os.Getenv("VERBA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := envBool("VERBA_AUDIO_PREPROCESSING"); ok {
		cfg.Audio.Preprocess = v
	}
	if v, ok := envBool("VERBA_ONLINE_FEATURES"); ok {
		cfg.Features.Online = v
	}
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	return strings.EqualFold(v, "true") || v == "1", true
}
