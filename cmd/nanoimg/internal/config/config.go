// Package config manages persisted generation defaults for the nanoimg CLI.
//
// Defaults are stored in a single YAML file under os.UserConfigDir():
//
//	~/Library/Application Support/nanoimg/config.yaml   (macOS)
//	~/.config/nanoimg/config.yaml                       (Linux)
//	%AppData%/nanoimg/config.yaml                       (Windows)
//
// The NANOIMG_CONFIG_DIR environment variable overrides the directory,
// which keeps tests hermetic.
//
// The API key is never stored here. It comes from the --api-key flag or
// the GEMINI_API_KEY environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/fancyboi999/nano-image-generate/pkg/nanobanana"
	"github.com/fancyboi999/nano-image-generate/pkg/outfile"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "nanoimg"

	// configFile is the defaults file name inside the config directory.
	configFile = "config.yaml"
)

// DirEnv overrides the config directory when set.
const DirEnv = "NANOIMG_CONFIG_DIR"

// DefaultModelAlias is the model alias used when nothing is configured.
const DefaultModelAlias = "pro"

// Defaults holds the persisted generation defaults. A zero field means
// "not configured" and falls back to the builtin default.
type Defaults struct {
	// Model is the default model alias (pro, flash).
	Model string `json:"model" yaml:"model,omitempty"`

	// Aspect is the default aspect ratio.
	Aspect string `json:"aspect" yaml:"aspect,omitempty"`

	// Size is the default image size (1K, 2K, 4K).
	Size string `json:"size" yaml:"size,omitempty"`

	// OutputDir is the directory for auto-named output files.
	OutputDir string `json:"output_dir" yaml:"output_dir,omitempty"`
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Path returns the defaults file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the stored defaults. A missing file is not an error and
// yields zero defaults.
func Load() (*Defaults, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &d, nil
}

// Save writes the defaults file, creating the directory if needed.
func (d *Defaults) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Merged returns a copy with unset fields filled from the builtin
// defaults.
func (d *Defaults) Merged() Defaults {
	out := *d
	if out.Model == "" {
		out.Model = DefaultModelAlias
	}
	if out.Aspect == "" {
		out.Aspect = nanobanana.AspectRatio1x1
	}
	if out.Size == "" {
		out.Size = nanobanana.Size2K
	}
	if out.OutputDir == "" {
		out.OutputDir = outfile.DefaultDir
	}
	return out
}
