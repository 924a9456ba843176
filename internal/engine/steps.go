package engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/botkeeper/botkeeper/internal/config"
	"github.com/botkeeper/botkeeper/internal/model"
)

const (
	logsDir    = "logs"
	pluginsDir = "plugins"
	oldDir     = "old"
	updatesDir = "updates"
)

// deleteLogs removes files with the configured log extension directly inside
// the instance's logs directory. A missing directory means zero deletions.
func (e *Engine) deleteLogs(inst model.Instance, cfg *config.Config) (int, string, error) {
	dir := filepath.Join(inst.Path, logsDir)
	removed, err := removeMatching(dir, cfg.LogExtension)
	if err != nil {
		return removed, "", err
	}
	return removed, fmt.Sprintf("removed %d log files", removed), nil
}

// purgeOldPlugins removes archive files directly inside plugins/old.
func (e *Engine) purgeOldPlugins(inst model.Instance, cfg *config.Config) (int, string, error) {
	dir := filepath.Join(inst.Path, pluginsDir, oldDir)
	removed, err := removeMatching(dir, cfg.ArchiveExtension)
	if err != nil {
		return removed, "", err
	}
	return removed, fmt.Sprintf("removed %d stale archives", removed), nil
}

// clearUpdates empties plugins/updates recursively, keeping the directory
// itself. A missing directory is created so the distribution step has a
// destination.
func (e *Engine) clearUpdates(inst model.Instance, _ *config.Config) (int, string, error) {
	dir := filepath.Join(inst.Path, pluginsDir, updatesDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return 0, "", mkErr
			}
			return 0, "created empty updates directory", nil
		}
		return 0, "", err
	}

	removed := 0
	var firstErr error
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		removed++
	}
	if firstErr != nil {
		return removed, "", firstErr
	}
	return removed, fmt.Sprintf("cleared %d staged entries", removed), nil
}

// distributeCore copies the configured core file into the instance root,
// overwriting any existing file of the same name.
func (e *Engine) distributeCore(inst model.Instance, cfg *config.Config) (int, string, error) {
	dest := filepath.Join(inst.Path, filepath.Base(cfg.CoreFile))
	if err := copyFile(cfg.CoreFile, dest); err != nil {
		return 0, "", err
	}
	return 1, fmt.Sprintf("copied core file to %s", dest), nil
}

// distributePlugins copies archive files from the plugin source into
// plugins/updates. A file sharing the core file's name is never treated as a
// plugin; the comparison is against the full base name, case-insensitively.
func (e *Engine) distributePlugins(inst model.Instance, cfg *config.Config) (int, string, error) {
	dest := filepath.Join(inst.Path, pluginsDir, updatesDir)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, "", err
	}

	entries, err := os.ReadDir(cfg.PluginSource)
	if err != nil {
		return 0, "", err
	}

	coreName := filepath.Base(cfg.CoreFile)
	copied := 0
	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), cfg.ArchiveExtension) {
			continue
		}
		if strings.EqualFold(entry.Name(), coreName) {
			continue
		}
		src := filepath.Join(cfg.PluginSource, entry.Name())
		if err := copyFile(src, filepath.Join(dest, entry.Name())); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		copied++
	}
	if firstErr != nil {
		return copied, "", firstErr
	}
	return copied, fmt.Sprintf("copied %d plugins", copied), nil
}

// removeMatching deletes regular files with the given extension directly
// inside dir. A missing directory counts as zero files to delete. Deletion
// keeps going past individual failures and reports the first one.
func removeMatching(dir, ext string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), ext) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		removed++
	}
	return removed, firstErr
}

func hasExtension(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
