package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/botkeeper/botkeeper/internal/config"
	"github.com/botkeeper/botkeeper/internal/engine"
	"github.com/botkeeper/botkeeper/internal/model"
)

func batchFixture(t *testing.T, count int) (*config.Config, []model.Instance) {
	t.Helper()

	base := t.TempDir()
	srcDir := filepath.Join(base, "sources")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "DarkBot.jar"), []byte("core"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "nav.jar"), []byte("plugin"), 0o644))

	instances := make([]model.Instance, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("bot%02d", i+1)
		path := filepath.Join(base, name)
		require.NoError(t, os.MkdirAll(filepath.Join(path, "logs"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(path, "logs", "run.log"), []byte("old"), 0o644))
		instances = append(instances, model.Instance{Path: path, Name: name})
	}

	cfg := config.Default()
	cfg.InstancesRoot = base
	cfg.CoreFile = filepath.Join(srcDir, "DarkBot.jar")
	cfg.PluginSource = srcDir

	return cfg, instances
}

func collect(events <-chan Event) []Event {
	var all []Event
	for ev := range events {
		all = append(all, ev)
	}
	return all
}

func TestRunEmitsOrderedEventStream(t *testing.T) {
	t.Parallel()

	cfg, instances := batchFixture(t, 2)
	r := New(engine.New(nil), nil)

	events := collect(r.Run(context.Background(), instances, model.ModeCleanAndUpdate, cfg))
	require.Len(t, events, 5)

	started1, ok := events[0].(InstanceStarted)
	require.True(t, ok)
	require.Equal(t, 1, started1.Index)
	require.Equal(t, 2, started1.Total)
	require.Equal(t, instances[0].Path, started1.Path)

	finished1, ok := events[1].(InstanceFinished)
	require.True(t, ok)
	require.Equal(t, instances[0].Path, finished1.Outcome.InstancePath)
	require.True(t, finished1.Outcome.Succeeded())

	started2, ok := events[2].(InstanceStarted)
	require.True(t, ok)
	require.Equal(t, 2, started2.Index)

	_, ok = events[3].(InstanceFinished)
	require.True(t, ok)

	complete, ok := events[4].(BatchComplete)
	require.True(t, ok)
	require.Equal(t, 2, complete.Summary.Processed)
	require.Equal(t, 2, complete.Summary.Succeeded)
	require.Equal(t, 0, complete.Summary.Remaining)
}

func TestRunCancellationBetweenInstances(t *testing.T) {
	t.Parallel()

	cfg, instances := batchFixture(t, 5)
	r := New(engine.New(nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := 0
	finished := 0
	var complete *BatchComplete
	for ev := range r.Run(ctx, instances, model.ModeCleanOnly, cfg) {
		switch ev := ev.(type) {
		case InstanceStarted:
			started++
		case InstanceFinished:
			finished++
			if finished == 2 {
				cancel()
			}
		case BatchComplete:
			complete = &ev
		}
	}

	require.Equal(t, 2, finished)
	// A start event for the third instance may already be in flight when the
	// cancel lands; it must never be followed by a finish.
	require.LessOrEqual(t, started, 3)
	require.NotNil(t, complete)
	require.Equal(t, 5, complete.Summary.Total)
	require.Equal(t, 2, complete.Summary.Processed)
	require.Equal(t, 3, complete.Summary.Remaining)
}

func TestRunCancellationNeverProcessesExtraInstance(t *testing.T) {
	t.Parallel()

	cfg, instances := batchFixture(t, 5)
	r := New(engine.New(nil), nil)

	// The cancel below races the runner's between-instances check, so run
	// the scenario repeatedly to shake out an unsynchronized observation.
	for i := 0; i < 100; i++ {
		ctx, cancel := context.WithCancel(context.Background())

		finished := 0
		var complete *BatchComplete
		for ev := range r.Run(ctx, instances, model.ModeCleanOnly, cfg) {
			switch ev := ev.(type) {
			case InstanceFinished:
				finished++
				if finished == 2 {
					cancel()
				}
			case BatchComplete:
				complete = &ev
			}
		}
		cancel()

		require.Equal(t, 2, finished, "iteration %d", i)
		require.NotNil(t, complete)
		require.Equal(t, 2, complete.Summary.Processed, "iteration %d", i)
		require.Equal(t, 3, complete.Summary.Remaining, "iteration %d", i)
	}
}

func TestRunBadInstanceDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	cfg, instances := batchFixture(t, 3)
	instances[1].Path = filepath.Join(cfg.InstancesRoot, "vanished")

	r := New(engine.New(nil), nil)
	events := collect(r.Run(context.Background(), instances, model.ModeCleanAndUpdate, cfg))

	complete, ok := events[len(events)-1].(BatchComplete)
	require.True(t, ok)
	require.Equal(t, 3, complete.Summary.Processed)
	require.Equal(t, 2, complete.Summary.Succeeded)
	require.Equal(t, 1, complete.Summary.Failures)
}

func TestRunUsesConfigSnapshot(t *testing.T) {
	t.Parallel()

	cfg, instances := batchFixture(t, 2)
	r := New(engine.New(nil), nil)

	events := r.Run(context.Background(), instances, model.ModeCleanOnly, cfg)

	// Mutating the caller's config mid-run must not affect this run.
	cfg.LogExtension = ".nope"

	collect(events)

	for _, inst := range instances {
		require.NoFileExists(t, filepath.Join(inst.Path, "logs", "run.log"))
	}
}

func TestRunEmptyBatch(t *testing.T) {
	t.Parallel()

	cfg, _ := batchFixture(t, 0)
	r := New(engine.New(nil), nil)

	events := collect(r.Run(context.Background(), nil, model.ModeCleanOnly, cfg))
	require.Len(t, events, 1)

	complete, ok := events[0].(BatchComplete)
	require.True(t, ok)
	require.Zero(t, complete.Summary.Total)
	require.Zero(t, complete.Summary.Processed)
}
