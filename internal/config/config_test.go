package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid mock config",
			config: Config{
				Database:    DatabaseConfig{Path: "verba.db"},
				Transcriber: TranscriberConfig{Backend: "mock"},
			},
			wantErr: false,
		},
		{
			name: "valid whisper config",
			config: Config{
				Database: DatabaseConfig{Driver: "sqlite3", Path: "verba.db"},
				Transcriber: TranscriberConfig{
					Backend:    "Whisper",
					ModelPath:  "models/ggml-base.en.bin",
					BinaryPath: "./whisper-cli",
				},
			},
			wantErr: false,
		},
		{
			name: "whisper without model or model path",
			config: Config{
				Database:    DatabaseConfig{Path: "verba.db"},
				Transcriber: TranscriberConfig{Backend: "whisper", BinaryPath: "./whisper-cli"},
			},
			wantErr: true,
		},
		{
			name: "whisper with model name only",
			config: Config{
				Database:    DatabaseConfig{Path: "verba.db"},
				Transcriber: TranscriberConfig{Backend: "whisper", BinaryPath: "./whisper-cli", Model: "small"},
			},
			wantErr: false,
		},
		{
			name: "missing database path",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "mock"},
			},
			wantErr: true,
		},
		{
			name: "unknown driver",
			config: Config{
				Database:    DatabaseConfig{Driver: "postgres", Path: "verba.db"},
				Transcriber: TranscriberConfig{Backend: "mock"},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Database:    DatabaseConfig{Path: "verba.db"},
				Transcriber: TranscriberConfig{Backend: "cloud"},
			},
			wantErr: true,
		},
		{
			name: "negative summary setting",
			config: Config{
				Database:    DatabaseConfig{Path: "verba.db"},
				Transcriber: TranscriberConfig{Backend: "mock"},
				Summary:     SummaryConfig{MaxKeyPoints: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{
		Database:    DatabaseConfig{Path: "verba.db"},
		Transcriber: TranscriberConfig{Backend: "mock"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Summary.LeadSentences != 2 || cfg.Summary.KeyPointWords != 20 || cfg.Summary.ItemWords != 18 {
		t.Errorf("summary defaults not applied: %+v", cfg.Summary)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Paths.Temp != "data/temp" {
		t.Errorf("Temp = %q, want data/temp", cfg.Paths.Temp)
	}
}

func TestValidateModelPath(t *testing.T) {
	tests := []struct {
		name        string
		transcriber TranscriberConfig
		want        string
	}{
		{
			name:        "derived from model",
			transcriber: TranscriberConfig{Backend: "whisper", BinaryPath: "whisper-cli", Model: "base.en"},
			want:        filepath.Join("models", "ggml-base.en.bin"),
		},
		{
			name:        "derived from model and model dir",
			transcriber: TranscriberConfig{Backend: "whisper", BinaryPath: "whisper-cli", Model: "medium", ModelDir: "/opt/whisper"},
			want:        filepath.Join("/opt/whisper", "ggml-medium.bin"),
		},
		{
			name:        "explicit path wins",
			transcriber: TranscriberConfig{Backend: "whisper", BinaryPath: "whisper-cli", Model: "medium", ModelPath: "custom.bin"},
			want:        "custom.bin",
		},
		{
			name:        "mock leaves path empty",
			transcriber: TranscriberConfig{Backend: "mock", Model: "base"},
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Database:    DatabaseConfig{Path: "verba.db"},
				Transcriber: tt.transcriber,
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if cfg.Transcriber.ModelPath != tt.want {
				t.Errorf("ModelPath = %q, want %q", cfg.Transcriber.ModelPath, tt.want)
			}
		})
	}
}

func TestLoadWhisperModelEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
transcriber:
  backend: "whisper"
  binary_path: "./whisper-cli"
  model_path: "models/ggml-base.en.bin"
  model: "base.en"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VERBA_WHISPER_MODEL", "small")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Transcriber.Model != "small" {
		t.Errorf("Model = %q, want small", cfg.Transcriber.Model)
	}
	if want := filepath.Join("models", "ggml-small.bin"); cfg.Transcriber.ModelPath != want {
		t.Errorf("ModelPath = %q, want %q", cfg.Transcriber.ModelPath, want)
	}

	t.Setenv("VERBA_WHISPER_MODEL_PATH", "/srv/models/tuned.bin")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Transcriber.ModelPath != "/srv/models/tuned.bin" {
		t.Errorf("ModelPath = %q, want /srv/models/tuned.bin", cfg.Transcriber.ModelPath)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
server:
  address: ":9000"

database:
  path: "sessions.db"

transcriber:
  backend: "whisper"
  model_path: "models/test.bin"
  binary_path: "./whisper-cli"
  language: "en"

summary:
  lead_sentences: 3

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Transcriber.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Transcriber.ModelPath, "models/test.bin")
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Summary.LeadSentences != 3 {
		t.Errorf("LeadSentences = %d, want 3", cfg.Summary.LeadSentences)
	}
	if !cfg.Audio.Preprocess {
		t.Error("Preprocess default lost when the file omits the audio section")
	}
	if len(cfg.Server.AllowedOrigins) != 3 {
		t.Errorf("AllowedOrigins = %v, want defaults", cfg.Server.AllowedOrigins)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VERBA_DATABASE_PATH", "/tmp/other.db")
	t.Setenv("VERBA_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("VERBA_AUDIO_PREPROCESSING", "false")
	t.Setenv("VERBA_ONLINE_FEATURES", "TRUE")

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/other.db" {
		t.Errorf("Path = %q", cfg.Database.Path)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Audio.Preprocess {
		t.Error("Preprocess should be disabled by env")
	}
	if !cfg.Features.Online {
		t.Error("Online should be enabled by env")
	}
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.example.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Transcriber.Backend != "mock" {
		t.Errorf("Transcriber.Backend = %s, want mock", cfg.Transcriber.Backend)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Paths.Input = %s, want data/input", cfg.Paths.Input)
	}
	if !cfg.Export.Docx {
		t.Error("Export.Docx should be enabled")
	}
}
