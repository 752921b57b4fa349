package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <student-number>",
		Short: "Look up a persisted registration record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Record

			if err := client.Get(fmt.Sprintf("/api/v1/records/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProgramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List available programs and year levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Programs

			if err := client.Get("/api/v1/programs", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
