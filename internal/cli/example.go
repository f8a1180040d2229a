package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumeview/internal/sample"
)

func exampleCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "example [name]",
		Short: "Print a built-in example résumé",
		Long: `Print one of the built-in example résumés, or write it to a file.

Examples:
  resumeview example > resume.yaml
  resumeview example minimal -o resume.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := sample.Default
			if len(args) == 1 {
				name = args[0]
			}
			data, err := sample.Get(name)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write example: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
