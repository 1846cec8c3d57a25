package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestModels(t *testing.T) {
	setupTestEnv(t)

	stdout, _, code := runCmd(t, "models")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"gemini-3-pro-image-preview", "gemini-2.5-flash-image", "aspect_ratios", "16:9", "4K"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got: %s", want, stdout)
		}
	}
}

func TestModelsJSON(t *testing.T) {
	setupTestEnv(t)

	stdout, _, code := runCmd(t, "models", "--json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}

	var listing struct {
		Models []struct {
			Alias   string `json:"alias"`
			ModelID string `json:"model_id"`
		} `json:"models"`
		AspectRatios []string `json:"aspect_ratios"`
		Sizes        []string `json:"sizes"`
	}
	if err := json.Unmarshal([]byte(stdout), &listing); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(listing.Models) != 2 {
		t.Fatalf("got %d models, want 2", len(listing.Models))
	}
	if listing.Models[0].Alias != "pro" || listing.Models[0].ModelID != "gemini-3-pro-image-preview" {
		t.Errorf("first model = %+v", listing.Models[0])
	}
	if len(listing.AspectRatios) != 10 {
		t.Errorf("got %d aspect ratios, want 10", len(listing.AspectRatios))
	}
	if len(listing.Sizes) != 3 {
		t.Errorf("got %d sizes, want 3", len(listing.Sizes))
	}
}

func TestModelsToFile(t *testing.T) {
	setupTestEnv(t)

	path := filepath.Join(t.TempDir(), "models.yaml")
	stdout, _, code := runCmd(t, "models", "-o", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty when writing to a file, got %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "gemini-3-pro-image-preview") {
		t.Errorf("file content: %s", data)
	}
}
