package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed assets
var embedded embed.FS

// Embedded returns the catalog bundled into the binary.
func Embedded() (fs.FS, error) {
	return fs.Sub(embedded, "assets")
}

// Manifest describes a catalog directory.
type Manifest struct {
	Name          string `yaml:"name"`
	Size          int    `yaml:"size"`
	ImageExt      string `yaml:"image_ext"`
	ImagesDir     string `yaml:"images_dir"`
	StringsDir    string `yaml:"strings_dir"`
	DefaultLocale string `yaml:"default_locale"`
}

func readManifest(root fs.FS, name string) (Manifest, error) {
	m := Manifest{
		ImageExt:      "svg",
		ImagesDir:     "images",
		StringsDir:    "strings",
		DefaultLocale: "en",
	}

	data, err := fs.ReadFile(root, name)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest %s: %w", name, err)
	}
	if m.Size < 1 {
		return m, fmt.Errorf("manifest %s: size must be at least 1, got %d", name, m.Size)
	}
	switch imageFormat(m.ImageExt) {
	case "svg", "png", "jpeg":
	default:
		return m, fmt.Errorf("manifest %s: unsupported image_ext %q", name, m.ImageExt)
	}
	return m, nil
}
