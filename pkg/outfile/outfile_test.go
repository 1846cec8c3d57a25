package outfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fancyboi999/nano-image-generate/pkg/imagefmt"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"simple", "A cute robot!", "a-cute-robot"},
		{"plain", "robot", "robot"},
		{"symbols stripped", "hello, world?!", "hello-world"},
		{"underscores kept", "snake_case name", "snake_case-name"},
		{"hyphen runs collapse", "a -- b  -  c", "a-b-c"},
		{"whitespace trimmed", "   padded prompt   ", "padded-prompt"},
		{"symbols only", "!!! ??? ***", "untitled"},
		{"empty", "", "untitled"},
		{"unicode letters kept", "Café Münster", "café-münster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.prompt)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	got := Slugify(strings.Repeat("word ", 30))
	if len([]rune(got)) != 50 {
		t.Errorf("slug length = %d, want 50: %q", len([]rune(got)), got)
	}
}

func TestResolve_AutoName(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	path, changed := Resolve("", "A cute robot!", "", imagefmt.PNG, ts)
	want := filepath.Join("generated", "a-cute-robot-1700000000.png")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if !changed {
		t.Error("synthesized names must report changed = true")
	}
}

func TestResolve_AutoNameCustomDir(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	path, _ := Resolve("", "robot", "renders", imagefmt.WEBP, ts)
	want := filepath.Join("renders", "robot-1700000000.webp")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestResolve_ForcesExtension(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	path, changed := Resolve("out/image.png", "ignored", "", imagefmt.JPEG, ts)
	if path != "out/image.jpg" {
		t.Errorf("path = %q, want out/image.jpg", path)
	}
	if !changed {
		t.Error("extension rewrite must report changed = true")
	}
}

func TestResolve_KeepsMatchingExtension(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	path, changed := Resolve("out/image.png", "ignored", "", imagefmt.PNG, ts)
	if path != "out/image.png" {
		t.Errorf("path = %q, want out/image.png", path)
	}
	if changed {
		t.Error("matching extension must report changed = false")
	}
}

func TestResolve_AddsMissingExtension(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	path, changed := Resolve("out/image", "ignored", "", imagefmt.GIF, ts)
	if path != "out/image.gif" {
		t.Errorf("path = %q, want out/image.gif", path)
	}
	if !changed {
		t.Error("added extension must report changed = true")
	}
}

func TestWrite_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "image.png")
	payload := []byte("\x89PNG\r\n\x1a\nfake")

	if err := Write(path, payload); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("written bytes differ from payload")
	}
}

func TestWrite_BareFileName(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)

	if err := Write("image.png", []byte("data")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "image.png")); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
}
