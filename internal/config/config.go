package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Vision    VisionConfig
	Generator GeneratorConfig
	Extract   ExtractConfig
	Upload    UploadConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// VisionConfig holds Google Cloud Vision OCR settings.
type VisionConfig struct {
	// CredentialsEnvVar names the environment variable holding the
	// service account JSON used when ambient default credentials are
	// unavailable.
	CredentialsEnvVar string `mapstructure:"credentials_env_var"`
}

// GeneratorConfig holds Gemini language model settings.
type GeneratorConfig struct {
	APIKey        string `mapstructure:"api_key"`
	AnalysisModel string `mapstructure:"analysis_model"`
	ChatModel     string `mapstructure:"chat_model"`
	TimeoutSecs   int    `mapstructure:"timeout_secs"`
}

// ExtractConfig holds text extraction settings.
type ExtractConfig struct {
	// OCRConcurrency bounds the number of embedded PDF images OCR'd in
	// parallel within a single document.
	OCRConcurrency int `mapstructure:"ocr_concurrency"`
}

// UploadConfig holds upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SAHAYAI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SAHAYAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Vision defaults
	v.SetDefault("vision.credentials_env_var", "GOOGLE_APPLICATION_CREDENTIALS_JSON")

	// Generator defaults
	v.SetDefault("generator.api_key", "")
	v.SetDefault("generator.analysis_model", "gemini-1.5-flash")
	v.SetDefault("generator.chat_model", "gemini-2.5-flash-lite")
	v.SetDefault("generator.timeout_secs", 120)

	// Extraction defaults
	v.SetDefault("extract.ocr_concurrency", 4)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 20)

	// CORS defaults (all origins, matching the public demo deployment)
	v.SetDefault("cors.allowed_origins", "*")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			Environment:  v.GetString("server.environment"),
		},
		Vision: VisionConfig{
			CredentialsEnvVar: v.GetString("vision.credentials_env_var"),
		},
		Generator: GeneratorConfig{
			APIKey:        v.GetString("generator.api_key"),
			AnalysisModel: v.GetString("generator.analysis_model"),
			ChatModel:     v.GetString("generator.chat_model"),
			TimeoutSecs:   v.GetInt("generator.timeout_secs"),
		},
		Extract: ExtractConfig{
			OCRConcurrency: v.GetInt("extract.ocr_concurrency"),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(v.GetString("cors.allowed_origins")),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
