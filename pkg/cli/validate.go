package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/shapemock/pkg/cli/internal/output"
	"github.com/getmockd/shapemock/pkg/config"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check schema documents without generating anything",
		Long: `Validate schema documents.

This command checks:
  - YAML/JSON syntax
  - The document structure (field types, required parts of arrays and objects)
  - References between schemas (unknown names and cycles)

Examples:
  shapemock validate -f schemas.yaml
  shapemock validate -f 'schemas/**/*.yaml'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(file)
			if err != nil {
				var vr *config.ValidationResult
				if errors.As(err, &vr) {
					w := cmd.ErrOrStderr()
					fmt.Fprintf(w, "%s: %d validation error(s)\n", file, len(vr.Errors))
					for _, e := range vr.Errors {
						fmt.Fprintf(w, "  - %s\n", e.Error())
					}
					return errors.New("validation failed")
				}
				return err
			}

			tw := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "SCHEMA\tFIELDS")
			for _, name := range set.Names() {
				s, _ := set.Get(name)
				fmt.Fprintf(tw, "%s\t%d\n", name, s.Len())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			g.logger.Info("document is valid", "file", file, "schemas", set.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema document path or glob pattern")
	return cmd
}
