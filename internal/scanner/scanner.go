package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/botkeeper/botkeeper/internal/model"
)

// Marker subdirectories whose presence classifies a directory as a managed
// instance under the strict rule.
var markerDirs = []string{"logs", "plugins"}

// Scan lists the immediate children of root and classifies each as a managed
// instance. The heuristic runs in two passes over the whole root:
//
//  1. strict: keep child directories containing a logs or plugins
//     subdirectory (either marker is sufficient);
//  2. fallback: only when the strict pass matched nothing, keep every child
//     directory, treating the root as a flat collection of instances whose
//     folder skeleton has not been created yet.
//
// The result is sorted case-insensitively by name. Scan never recurses past
// one level and never mutates the filesystem.
func Scan(root string) ([]model.Instance, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []model.Instance
	var marked []model.Instance

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		inst := model.Instance{
			Path: filepath.Join(root, entry.Name()),
			Name: entry.Name(),
		}
		dirs = append(dirs, inst)
		if hasMarker(inst.Path) {
			marked = append(marked, inst)
		}
	}

	instances := marked
	if len(marked) == 0 {
		instances = dirs
	}

	sort.Slice(instances, func(i, j int) bool {
		return strings.ToLower(instances[i].Name) < strings.ToLower(instances[j].Name)
	})

	return instances, nil
}

func hasMarker(dir string) bool {
	for _, marker := range markerDirs {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
