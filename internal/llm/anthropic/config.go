package anthropic

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

const apiVersion = "2023-06-01"

// Config for the Anthropic client.
type Config struct {
	APIKey    string        // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL   string        // default https://api.anthropic.com
	Model     string        // e.g., "claude-3-5-sonnet-20241022"
	MaxTokens int           // completion cap, default 1024
	Timeout   time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-5-sonnet-20241022"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
