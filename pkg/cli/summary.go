package cli

import (
	"github.com/spf13/cobra"

	"github.com/getmockd/shapemock/internal/ordered"
	"github.com/getmockd/shapemock/pkg/cli/internal/output"
)

func newSummaryCmd(g *globalOptions) *cobra.Command {
	var (
		file   string
		name   string
		asYAML bool
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the shape of one or every schema",
		Long: `Print a schema summary: each field mapped to its type name, array
fields to a one-element list of their item type, object fields to a
one-entry map from key type to value type, and nested fields to the
summary of the nested schema.

Examples:
  shapemock summary -f schemas.yaml
  shapemock summary -f schemas.yaml -s user --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(file)
			if err != nil {
				return err
			}
			if name != "" {
				s, err := lookupSchema(set, name)
				if err != nil {
					return err
				}
				return output.Encode(cmd.OutOrStdout(), s.Summary(), asYAML)
			}

			all := ordered.New(set.Len())
			for _, n := range set.Names() {
				s, _ := set.Get(n)
				all.Set(n, s.Summary())
			}
			g.logger.Debug("summarised schemas", "count", set.Len())
			return output.Encode(cmd.OutOrStdout(), all, asYAML)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "Schema document path or glob pattern")
	f.StringVarP(&name, "schema", "s", "", "Only summarise this schema")
	f.BoolVar(&asYAML, "yaml", false, "Print YAML instead of JSON")
	return cmd
}
