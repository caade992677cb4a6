package common

import (
	"os"
	"strconv"
	"time"
)

// Default filename templates. CLI flags and env vars override these.
const (
	DefaultPDFTemplate        = "{author_or_editor_last} {year} - {title}.pdf"
	DefaultScreenshotTemplate = "{datetime} {application} - {main_subject}.png"
)

// Config holds all application configuration
type Config struct {
	LLM      LLMConfig
	OCR      OCRConfig
	Renaming RenamingConfig
	Journal  JournalConfig
}

// LLMConfig holds Anthropic-related configuration
type LLMConfig struct {
	Model   string
	APIKey  string
	Timeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Method      string // "tesseract" | "claude"
	Tesseract   string
	Pdftotext   string
	TessdataDir string
	MaxPages    int
}

// RenamingConfig holds template configuration for the filename renderer
type RenamingConfig struct {
	PDFTemplate        string
	ScreenshotTemplate string
}

// JournalConfig holds the optional run-journal configuration
type JournalConfig struct {
	Path string // empty disables the journal
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:   getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
			APIKey:  getEnv("ANTHROPIC_API_KEY", ""),
			Timeout: getEnvAsDuration("ANTHROPIC_TIMEOUT", 60*time.Second),
		},
		OCR: OCRConfig{
			Method:      getEnv("OCR_METHOD", "tesseract"),
			Tesseract:   getEnv("TESSERACT", "tesseract"),
			Pdftotext:   getEnv("PDFTOTEXT", "pdftotext"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			MaxPages:    getEnvAsInt("MAX_PAGES_TO_EXTRACT", 10),
		},
		Renaming: RenamingConfig{
			PDFTemplate:        getEnv("PDF_FILENAME_TEMPLATE", DefaultPDFTemplate),
			ScreenshotTemplate: getEnv("SCREENSHOT_FILENAME_TEMPLATE", DefaultScreenshotTemplate),
		},
		Journal: JournalConfig{
			Path: getEnv("JOURNAL_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. Configuration errors are
// fatal and must be reported before any file is touched.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ConfigError("ANTHROPIC_API_KEY is required", ErrInvalidInput)
	}
	if c.OCR.Method != "tesseract" && c.OCR.Method != "claude" {
		return ConfigError("OCR_METHOD must be \"tesseract\" or \"claude\"", ErrInvalidInput)
	}
	if c.OCR.MaxPages <= 0 {
		return ConfigError("MAX_PAGES_TO_EXTRACT must be positive", ErrInvalidInput)
	}
	return nil
}
