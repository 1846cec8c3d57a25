package nanobanana

import (
	"fmt"
	"os"

	"github.com/fancyboi999/nano-image-generate/pkg/imagefmt"
)

// LoadReference reads a reference image from disk and sniffs its MIME type
// from the bytes. The file's extension is ignored.
func LoadReference(path string) (Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Reference{}, fmt.Errorf("reference image not found: %s", path)
		}
		return Reference{}, fmt.Errorf("read reference image %s: %w", path, err)
	}
	return Reference{MIME: imagefmt.Detect(data).MIME, Data: data}, nil
}
