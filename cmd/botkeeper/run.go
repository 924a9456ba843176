package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/botkeeper/botkeeper/internal/engine"
	"github.com/botkeeper/botkeeper/internal/model"
	"github.com/botkeeper/botkeeper/internal/pathcheck"
	"github.com/botkeeper/botkeeper/internal/runner"
	"github.com/botkeeper/botkeeper/internal/scanner"
	"github.com/botkeeper/botkeeper/internal/tui"
)

type batchFlags struct {
	instances []string
}

func newRunCmd(root *rootFlags) *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Clean every selected instance and distribute the core file and plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, root, flags, model.ModeCleanAndUpdate, "clean and update")
		},
	}

	cmd.Flags().StringArrayVarP(&flags.instances, "instance", "i", nil, "Instance name to process (repeatable; default: all)")

	return cmd
}

func newCleanCmd(root *rootFlags) *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Run only the deletion and clearing steps on the selected instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, root, flags, model.ModeCleanOnly, "clean only")
		},
	}

	cmd.Flags().StringArrayVarP(&flags.instances, "instance", "i", nil, "Instance name to process (repeatable; default: all)")

	return cmd
}

func runBatch(cmd *cobra.Command, root *rootFlags, flags *batchFlags, mode model.Mode, title string) error {
	app, err := newAppContext(root)
	if err != nil {
		return err
	}

	if err := checkPaths(app, mode); err != nil {
		return err
	}

	instances, err := scanner.Scan(app.cfg.InstancesRoot)
	if err != nil {
		return err
	}
	instances, err = selectInstances(instances, flags.instances)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app.log.Info(app.tr.T("run_start", len(instances)))

	r := runner.New(engine.New(app.log), app.log)
	events := r.Run(ctx, instances, mode, app.cfg)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	var summary model.RunSummary
	if interactive {
		summary, err = consumeInteractive(events, title, len(instances), cancel)
	} else {
		summary, err = consumePlain(cmd, app, events)
	}
	if err != nil {
		return err
	}

	if summary.PartialFailures > 0 || summary.Failures > 0 {
		return fmt.Errorf("%s", app.tr.T("run_summary",
			summary.Processed, summary.Total, summary.Succeeded, summary.PartialFailures, summary.Failures))
	}
	return nil
}

// checkPaths gates the batch on the validation report. Clean-only runs need
// just the instances root; distribution additionally needs the core file and
// plugin source.
func checkPaths(app *appContext, mode model.Mode) error {
	report := pathcheck.Validate(app.cfg)
	for _, check := range report.Checks {
		if check.Valid {
			continue
		}
		if mode == model.ModeCleanOnly && check.Role != pathcheck.RoleInstancesRoot {
			continue
		}
		return check.Err
	}
	return nil
}

func selectInstances(all []model.Instance, names []string) ([]model.Instance, error) {
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]model.Instance, len(all))
	for _, inst := range all {
		byName[inst.Name] = inst
	}

	selected := make([]model.Instance, 0, len(names))
	var missing []string
	for _, name := range names {
		inst, ok := byName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		selected = append(selected, inst)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("unknown instances: %s", strings.Join(missing, ", "))
	}
	return selected, nil
}

func consumeInteractive(events <-chan runner.Event, title string, total int, cancel context.CancelFunc) (model.RunSummary, error) {
	program := tea.NewProgram(tui.NewModel(title, total, cancel))

	done := make(chan model.RunSummary, 1)
	go func() {
		for ev := range events {
			switch ev := ev.(type) {
			case runner.InstanceStarted:
				program.Send(tui.InstanceStartMsg{Event: ev})
			case runner.InstanceFinished:
				program.Send(tui.InstanceDoneMsg{Event: ev})
			case runner.BatchComplete:
				done <- ev.Summary
				program.Send(tui.BatchDoneMsg{Event: ev})
			}
		}
	}()

	if _, err := program.Run(); err != nil {
		return model.RunSummary{}, err
	}
	return <-done, nil
}

func consumePlain(cmd *cobra.Command, app *appContext, events <-chan runner.Event) (model.RunSummary, error) {
	out := cmd.OutOrStdout()

	var summary model.RunSummary
	index, total := 0, 0
	for ev := range events {
		switch ev := ev.(type) {
		case runner.InstanceStarted:
			index, total = ev.Index, ev.Total
			fmt.Fprintln(out, app.tr.T("run_instance_start", ev.Index, ev.Total, ev.Path))
		case runner.InstanceFinished:
			key := "run_instance_done"
			if !ev.Outcome.Succeeded() {
				key = "run_instance_failed"
			}
			fmt.Fprintln(out, app.tr.T(key, index, total, ev.Outcome.InstancePath))
		case runner.BatchComplete:
			summary = ev.Summary
			if summary.Remaining > 0 {
				fmt.Fprintln(out, app.tr.T("run_cancelled", summary.Remaining))
			}
			fmt.Fprintln(out, app.tr.T("run_summary",
				summary.Processed, summary.Total, summary.Succeeded, summary.PartialFailures, summary.Failures))
		}
	}
	return summary, nil
}
