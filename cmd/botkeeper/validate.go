package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/botkeeper/botkeeper/internal/pathcheck"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that all configured paths exist and are of the expected kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root)
			if err != nil {
				return err
			}

			report := pathcheck.Validate(app.cfg)
			out := cmd.OutOrStdout()
			for _, check := range report.Checks {
				if check.Valid {
					fmt.Fprintf(out, "ok   %s\n", app.tr.T("validate_path_ok", check.Role, check.Path))
				} else {
					fmt.Fprintf(out, "FAIL %s\n", check.Err.Error())
				}
			}

			langs := strings.Join(app.tr.Languages(), ", ")
			fmt.Fprintf(out, "ok   %s\n", app.tr.T("validate_language", app.tr.Lang(), langs))

			if !report.Valid() {
				return fmt.Errorf("%s", app.tr.T("validate_failed"))
			}
			fmt.Fprintln(out, app.tr.T("validate_ok"))
			return nil
		},
	}
}
