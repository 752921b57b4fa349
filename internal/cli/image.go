package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "QR image commands",
	}

	cmd.AddCommand(newImageShowCmd())
	cmd.AddCommand(newImageSaveCmd())

	return cmd
}

func newImageShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the encoded QR image as a data URI",
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			var result Image

			if err := client.Get(fmt.Sprintf("/api/v1/forms/%s/image", formID), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newImageSaveCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Download the QR image as a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := requireFormID()
			if err != nil {
				return err
			}

			// Fetch metadata first for the server-chosen file name
			var meta Image
			if err := client.Get(fmt.Sprintf("/api/v1/forms/%s/image", formID), &meta); err != nil {
				return err
			}

			png, err := client.GetRaw(fmt.Sprintf("/api/v1/forms/%s/image/download", formID))
			if err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = meta.FileName
			}

			if err := os.WriteFile(path, png, 0644); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Saved QR image to %s", path))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file path (default: server-chosen name)")

	return cmd
}
