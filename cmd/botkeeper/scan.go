package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botkeeper/botkeeper/internal/pathcheck"
	"github.com/botkeeper/botkeeper/internal/scanner"
)

func newScanCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List managed instances detected under the configured root",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root)
			if err != nil {
				return err
			}

			report := pathcheck.Validate(app.cfg)
			for _, check := range report.Checks {
				if check.Role == pathcheck.RoleInstancesRoot && !check.Valid {
					return check.Err
				}
			}

			instances, err := scanner.Scan(app.cfg.InstancesRoot)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, inst := range instances {
				fmt.Fprintln(out, inst.Path)
			}
			if len(instances) == 0 {
				fmt.Fprintln(out, app.tr.T("scan_none", app.cfg.InstancesRoot))
				return nil
			}
			fmt.Fprintln(out, app.tr.T("scan_loaded", len(instances), app.cfg.InstancesRoot))
			return nil
		},
	}
}
