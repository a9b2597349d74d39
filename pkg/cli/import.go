package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/shapemock/pkg/config"
	"github.com/getmockd/shapemock/pkg/portability"
)

func newImportCmd(g *globalOptions) *cobra.Command {
	var (
		format  string
		outFile string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Convert other formats into a schema document",
		Long: `Convert a file into a schema document.

Formats:
  openapi    OpenAPI 3.x; object schemas under components.schemas become
             schemas, inline objects are named "<parent>.<property>" and
             components that are not objects are skipped with a warning
  shapemock  A native document; validated and re-encoded

The format is detected from the content unless --format is given.

Examples:
  shapemock import petstore.yaml
  shapemock import petstore.yaml -o schemas.yaml
  shapemock import schemas.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := portability.FormatUnknown
			if format != "" {
				if in = portability.ParseFormat(format); in == portability.FormatUnknown {
					return fmt.Errorf("unsupported import format %q", format)
				}
			}
			result, err := portability.ImportFile(args[0], in)
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				g.logger.Warn("import warning", "input", args[0], "warning", w)
			}

			if outFile != "" {
				if err := config.SaveToFile(outFile, result.Document); err != nil {
					return err
				}
				g.logger.Info("imported schemas", "input", args[0], "output", outFile, "schemas", len(result.Document.Schemas))
				return nil
			}

			enc := config.FormatYAML
			if asJSON {
				enc = config.FormatJSON
			}
			data, err := config.Marshal(result.Document, enc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&format, "format", "", "Input format: openapi or shapemock (default: detect)")
	f.StringVarP(&outFile, "output", "o", "", "Write the document to this file (format from extension)")
	f.BoolVar(&asJSON, "json", false, "Print JSON instead of YAML when writing to stdout")
	return cmd
}
