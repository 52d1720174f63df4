package build

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DiscoverUnits lists the document units in dir: every top-level .tex
// file whose content declares a document class is a unit, named by its
// base name. Included fragments (\input targets without a preamble)
// are not units. Names sort lexically so discovery order is stable
// across filesystems.
func DiscoverUnits(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("discovering units in %s: %w", dir, err)
	}
	var units []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".tex" {
			continue
		}
		content, err := afero.ReadFile(fs, filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if !strings.Contains(string(content), `\documentclass`) {
			continue
		}
		units = append(units, strings.TrimSuffix(name, ".tex"))
	}
	sort.Strings(units)
	return units, nil
}
