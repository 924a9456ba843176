package pathcheck

import (
	"errors"
	"io/fs"
	"os"

	"github.com/botkeeper/botkeeper/internal/config"
	botkeepererrors "github.com/botkeeper/botkeeper/pkg/errors"
)

// Path roles, one per configured location.
const (
	RoleInstancesRoot = "instances_root"
	RoleCoreFile      = "core_file"
	RolePluginSource  = "plugin_source"
)

// Check is the result of validating one configured path.
type Check struct {
	Role  string
	Path  string
	Valid bool
	Err   error
}

// Report aggregates the checks for all configured paths. It always contains
// one entry per role, in a fixed order, so a failing path never hides the
// state of the others.
type Report struct {
	Checks []Check
}

// Valid reports whether every check passed.
func (r Report) Valid() bool {
	for _, c := range r.Checks {
		if !c.Valid {
			return false
		}
	}
	return true
}

// Failed returns the subset of checks that did not pass.
func (r Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Valid {
			failed = append(failed, c)
		}
	}
	return failed
}

// Validate checks existence and kind of the three configured paths. It is
// read-only and never stops at the first failure. Writability and disk space
// are not checked here; those failures surface later as step errors.
func Validate(cfg *config.Config) Report {
	return Report{Checks: []Check{
		checkPath(RoleInstancesRoot, cfg.InstancesRoot, true),
		checkPath(RoleCoreFile, cfg.CoreFile, false),
		checkPath(RolePluginSource, cfg.PluginSource, true),
	}}
}

func checkPath(role, path string, wantDir bool) Check {
	check := Check{Role: role, Path: path}

	if path == "" {
		check.Err = botkeepererrors.NewPathNotFoundError(role, "(not configured)")
		return check
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			check.Err = botkeepererrors.NewPathNotFoundError(role, path)
		} else {
			check.Err = err
		}
		return check
	}

	if info.IsDir() != wantDir {
		check.Err = botkeepererrors.NewWrongPathKindError(role, path, wantDir)
		return check
	}
	if !wantDir && !info.Mode().IsRegular() {
		check.Err = botkeepererrors.NewWrongPathKindError(role, path, wantDir)
		return check
	}

	check.Valid = true
	return check
}
