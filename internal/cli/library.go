package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resumeview/internal/ui/textutil"
)

func importCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <file>",
		Short: "Validate a résumé file and store it under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}

			s, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(s)

			if err := s.Put(cmd.Context(), name, raw); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", name)
			return nil
		},
	}
}

func listCmd(app *App) *cobra.Command {
	var jsonOutput, quiet bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored résumés",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(s)

			entries, err := s.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case quiet:
				for _, e := range entries {
					fmt.Fprintln(out, e.Name)
				}
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "no résumés stored; add one with: resumeview import <name> <file>")
				return nil
			}
			width := 0
			for _, e := range entries {
				width = max(width, textutil.VisualWidth(e.Name))
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s\n", textutil.PadRightVisual(e.Name, width), e.UpdatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (names only)")
	return cmd
}

func deleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored résumé",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(s)

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
