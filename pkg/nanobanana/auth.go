package nanobanana

import (
	"errors"
	"os"
)

// APIKeyEnv is the environment variable consulted when no explicit key is
// given.
const APIKeyEnv = "GEMINI_API_KEY"

// apiKeyPlaceholder is the unconfigured sentinel. A key equal to it counts
// as no key at all.
const apiKeyPlaceholder = "YOUR_GEMINI_API_KEY_HERE"

// defaultAPIKey can be baked into a binary at build time:
//
//	go build -ldflags "-X github.com/fancyboi999/nano-image-generate/pkg/nanobanana.defaultAPIKey=sk-..."
//
// It ships as the placeholder, which resolves as absent.
var defaultAPIKey = apiKeyPlaceholder

// ErrNoAPIKey is returned when no usable API key can be resolved.
var ErrNoAPIKey = errors.New("gemini API key not found; set the " + APIKeyEnv + " environment variable")

// ResolveAPIKey returns the API key to use: the explicit override when
// non-empty, then the GEMINI_API_KEY environment variable, then the baked-in
// default. The placeholder value resolves as absent at every step.
func ResolveAPIKey(override string) (string, error) {
	key := override
	if key == "" {
		key = os.Getenv(APIKeyEnv)
	}
	if key == "" {
		key = defaultAPIKey
	}
	if key == "" || key == apiKeyPlaceholder {
		return "", ErrNoAPIKey
	}
	return key, nil
}
