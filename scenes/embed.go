// Package scenes embeds the bundled scene descriptions. A file of the
// same name under scenes/ on disk overrides the embedded copy, which is
// what the -watch dev mode relies on.
package scenes

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var FS embed.FS

// Load returns the named scene file, preferring disk over the embed.
// The .yaml extension is optional. The returned path is the disk file
// the data came from, or empty for an embedded scene.
func Load(name string) ([]byte, string, error) {
	clean := cleanPath(name)
	if filepath.Ext(clean) == "" {
		clean += ".yaml"
	}
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, diskPath(clean), nil
	}
	data, err := FS.ReadFile(clean)
	return data, "", err
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "scenes/"); ok {
		return after
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("scenes", filepath.FromSlash(clean))
}
