package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Registration form commands",
	}

	cmd.AddCommand(newFormNewCmd())
	cmd.AddCommand(newFormShowCmd())
	cmd.AddCommand(newFormSetCmd())
	cmd.AddCommand(newFormSubmitCmd())
	cmd.AddCommand(newFormEncodeCmd())
	cmd.AddCommand(newFormResetCmd())
	cmd.AddCommand(newFormDeleteCmd())

	return cmd
}

func newFormNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new registration form session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Form

			if err := client.Post("/api/v1/forms", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveFormID(result.ID); err != nil {
				return fmt.Errorf("failed to save form session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFormShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current form state",
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			var result Form

			if err := client.Get(fmt.Sprintf("/api/v1/forms/%s", formID), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFormSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a form field",
		Long: `Set a form field and re-validate it.

Fields: student_number, last_name, first_name, program, year_level.
Changing the program clears any selected year level.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			value := ""
			if len(args) == 2 {
				value = args[1]
			}

			req := map[string]string{"field": args[0], "value": value}
			var result Form

			if err := client.Patch(fmt.Sprintf("/api/v1/forms/%s/fields", formID), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFormSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit the form and register the student",
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			var result Form

			if err := client.Post(fmt.Sprintf("/api/v1/forms/%s/submit", formID), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFormEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Retry QR encoding for a submitted form",
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			var result Form

			if err := client.Post(fmt.Sprintf("/api/v1/forms/%s/encode", formID), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFormDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the current form session",
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/forms/%s", formID)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted form %s", formID))
			return nil
		},
	}
}

func newFormResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the form to an empty state",
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			var result Form

			if err := client.Post(fmt.Sprintf("/api/v1/forms/%s/reset", formID), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
