package scene

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scenes/*.yaml
var ScenesFS embed.FS

// Load reads a scene file, preferring an on-disk copy under scenes/ so
// edits take effect without rebuilding, falling back to the embedded
// defaults.
func Load(name string) ([]byte, error) {
	clean := cleanScenePath(name)
	if data, err := os.ReadFile(diskScenePath(clean)); err == nil {
		return data, nil
	}
	return ScenesFS.ReadFile(clean)
}

func cleanScenePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if !strings.HasPrefix(s, "scenes/") {
		s = "scenes/" + s
	}
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func diskScenePath(clean string) string {
	return filepath.FromSlash(clean)
}
