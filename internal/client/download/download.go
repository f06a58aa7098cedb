// Package download writes generated files to disk the way a browser save would.
package download

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atinyakov/fakeforge/internal/generator"
)

var unsafeChars = strings.NewReplacer("/", "_", "\\", "_")

// Save writes f into dir under its suggested name and returns the path.
// No extension is added and an existing file is overwritten.
func Save(dir string, f *generator.File) (string, error) {
	name := unsafeChars.Replace(f.Name)
	if name == "" || name == "." || name == ".." {
		name = "download"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
