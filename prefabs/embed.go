package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var prefabsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a prefab by name. A copy on disk under prefabs/ wins over the
// embedded one so tuning can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript reads a bark script, with the same disk-over-embed override.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = "scripts/" + clean
	}
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
