package brand

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is written next to the assets when requested.
const ManifestFile = "manifest.yaml"

type manifestEntry struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Bytes  int64  `yaml:"bytes"`
	SHA256 string `yaml:"sha256"`
}

type manifest struct {
	Assets []manifestEntry `yaml:"assets"`
}

// WriteManifest records the results in dir/manifest.yaml.
func WriteManifest(dir string, results []Result) (string, error) {
	var m manifest
	for _, r := range results {
		m.Assets = append(m.Assets, manifestEntry{
			Name:   r.Asset.Name,
			File:   r.Asset.File,
			Width:  r.Asset.Size,
			Height: r.Asset.Size,
			Bytes:  r.Bytes,
			SHA256: r.SHA256,
		})
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
