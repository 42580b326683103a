// Package templates builds starter template assets for every location
// profile: a signage document and a slide deck that the renderers accept.
package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"autosigns/pkg/ooxml"
	"autosigns/pkg/profile"
)

// Asset is one starter file.
type Asset struct {
	Name    string
	Package *ooxml.Package
}

// For returns the starter assets of one profile.
func For(p *profile.LocationProfile) []Asset {
	return []Asset{
		{Name: p.Signage.Template, Package: Signage(p)},
		{Name: p.Slides.Template, Package: Slides(p)},
	}
}

// WriteAll writes the starter assets of every profile into dir. Existing
// files are left alone unless overwrite is set. It returns the paths written.
func WriteAll(set *profile.Set, dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create template directory: %w", err)
	}

	var written []string
	for i := range set.Profiles {
		for _, asset := range For(&set.Profiles[i]) {
			path := profile.Asset(dir, asset.Name)
			if !overwrite {
				if _, err := os.Stat(path); err == nil {
					continue
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return written, err
			}
			if err := asset.Package.Save(path); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
