package tuning

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var SpecsFS embed.FS

// Load returns the contents of a spec file, preferring a copy on disk under
// tuning/ over the embedded one so specs can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskSpecPath(clean)); err == nil {
		return data, nil
	}
	return SpecsFS.ReadFile(clean)
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "tuning/") {
		return strings.TrimPrefix(s, "tuning/")
	}
	return s
}

func diskSpecPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}
