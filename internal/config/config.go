package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Audio       AudioConfig       `yaml:"audio"`
	Summary     SummaryConfig     `yaml:"summary"`
	Export      ExportConfig      `yaml:"export"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Features    FeaturesConfig    `yaml:"features"`
}

type ServerConfig struct {
	Address           string   `yaml:"address"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	AllowLocalNetwork bool     `yaml:"allow_local_network"`
	MaxUploadSize     string   `yaml:"max_upload_size"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" (pure Go) or "sqlite3" (cgo).
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type TranscriberConfig struct {
	// Backend is "whisper" or "mock".
	Backend    string `yaml:"backend"`
	BinaryPath string `yaml:"binary_path"`

	// ModelPath overrides the path derived from ModelDir and Model.
	ModelPath string `yaml:"model_path"`
	ModelDir  string `yaml:"model_dir"`
	Model     string `yaml:"model"`
	Language  string `yaml:"language"`
	Prompt    string `yaml:"prompt"`
	Threads   int    `yaml:"threads"`
}

type AudioConfig struct {
	Preprocess bool   `yaml:"preprocess"`
	FFmpegPath string `yaml:"ffmpeg_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type SummaryConfig struct {
	LeadSentences     int `yaml:"lead_sentences"`
	MaxKeyPoints      int `yaml:"max_key_points"`
	MaxDecisions      int `yaml:"max_decisions"`
	MaxActionItems    int `yaml:"max_action_items"`
	KeyPointWords     int `yaml:"key_point_words"`
	ItemWords         int `yaml:"item_words"`
	MinSentenceLength int `yaml:"min_sentence_length"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type FeaturesConfig struct {
	Online bool `yaml:"online"`
}

// ModelFile is the ggml model file whisper.cpp names after Model,
// e.g. models/ggml-base.en.bin for "base.en".
func (t TranscriberConfig) ModelFile() string {
	dir := t.ModelDir
	if dir == "" {
		dir = "models"
	}
	return filepath.Join(dir, "ggml-"+t.Model+".bin")
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8000",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost:3000",
				"http://127.0.0.1:5173",
			},
			AllowLocalNetwork: true,
			MaxUploadSize:     "50M",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "verba_sessions.db",
		},
		Transcriber: TranscriberConfig{
			Backend:    "mock",
			BinaryPath: "whisper-cli",
			ModelDir:   "models",
			Model:      "base",
			Language:   "en",
			Threads:    4,
		},
		Audio: AudioConfig{
			Preprocess: true,
			FFmpegPath: "ffmpeg",
			SampleRate: 16000,
		},
		Paths: PathsConfig{
			Output:   "data/output",
			Archived: "data/archived",
			Temp:     "data/temp",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Performance: PerformanceConfig{
			MaxConcurrent: 2,
		},
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "":
		c.Database.Driver = "sqlite"
	case "sqlite", "sqlite3":
	default:
		return fmt.Errorf("database.driver must be sqlite or sqlite3, got %q", c.Database.Driver)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	c.Transcriber.Backend = strings.ToLower(c.Transcriber.Backend)
	switch c.Transcriber.Backend {
	case "whisper":
		if c.Transcriber.ModelPath == "" {
			if c.Transcriber.Model == "" {
				return fmt.Errorf("transcriber.model or transcriber.model_path is required for the whisper backend")
			}
			c.Transcriber.ModelPath = c.Transcriber.ModelFile()
		}
		if c.Transcriber.BinaryPath == "" {
			return fmt.Errorf("transcriber.binary_path is required for the whisper backend")
		}
	case "mock":
	case "":
		return fmt.Errorf("transcriber.backend is required")
	default:
		return fmt.Errorf("transcriber.backend must be whisper or mock, got %q", c.Transcriber.Backend)
	}

	if c.Server.Address == "" {
		c.Server.Address = ":8000"
	}
	if c.Server.MaxUploadSize == "" {
		c.Server.MaxUploadSize = "50M"
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "en"
	}
	if c.Transcriber.Threads == 0 {
		c.Transcriber.Threads = 4
	}
	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Summary.LeadSentences < 0 || c.Summary.MaxKeyPoints < 0 || c.Summary.MaxDecisions < 0 ||
		c.Summary.MaxActionItems < 0 || c.Summary.KeyPointWords < 0 || c.Summary.ItemWords < 0 ||
		c.Summary.MinSentenceLength < 0 {
		return fmt.Errorf("summary settings must not be negative")
	}
	if c.Summary.LeadSentences == 0 {
		c.Summary.LeadSentences = 2
	}
	if c.Summary.MaxKeyPoints == 0 {
		c.Summary.MaxKeyPoints = 5
	}
	if c.Summary.MaxDecisions == 0 {
		c.Summary.MaxDecisions = 5
	}
	if c.Summary.MaxActionItems == 0 {
		c.Summary.MaxActionItems = 5
	}
	if c.Summary.KeyPointWords == 0 {
		c.Summary.KeyPointWords = 20
	}
	if c.Summary.ItemWords == 0 {
		c.Summary.ItemWords = 18
	}
	if c.Summary.MinSentenceLength == 0 {
		c.Summary.MinSentenceLength = 10
	}

	return nil
}
