package nanobanana

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Gemini API base URL.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultTimeout bounds one generation call. Image generation is slow;
	// 4K renders on the pro model can take a couple of minutes.
	DefaultTimeout = 180 * time.Second

	// MaxReferenceImages is the most reference images one request may
	// carry.
	MaxReferenceImages = 14
)

// Client is the Gemini image generation API client.
type Client struct {
	config *clientConfig
	http   *httpClient
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// NewClient creates a new Gemini image generation client.
//
// The apiKey is required; resolve it with ResolveAPIKey when the caller may
// rely on the environment.
//
// Example:
//
//	client := nanobanana.NewClient("your-api-key")
//	client := nanobanana.NewClient("your-api-key", nanobanana.WithTimeout(60*time.Second))
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	return &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.config.apiKey
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}
