package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"

	"github.com/getmockd/shapemock/internal/ordered"
	"github.com/getmockd/shapemock/pkg/cli/internal/output"
	"github.com/getmockd/shapemock/pkg/generator"
	"github.com/getmockd/shapemock/pkg/mocker"
	"github.com/getmockd/shapemock/pkg/server"
)

type generateOptions struct {
	file            string
	schema          string
	excludeOptional bool
	delay           string
	count           int
	selectPath      string
	yaml            bool
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random values for a schema",
		Long: `Generate one or more random values for a named schema.

With --count greater than one the values are generated concurrently and
printed as an array. --delay holds each response back like a slow API.

Examples:
  # One user
  shapemock generate -f schemas.yaml -s user

  # Five users, required fields only, as YAML
  shapemock generate -f schemas.yaml -s user -n 5 --exclude-optional --yaml

  # Only the names of the generated users
  shapemock generate -f 'schemas/**/*.yaml' -s user -n 3 --select '$[*].name'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "f", "", "Schema document path or glob pattern")
	f.StringVarP(&o.schema, "schema", "s", "", "Name of the schema to generate")
	f.BoolVar(&o.excludeOptional, "exclude-optional", false, "Leave out fields that are not required")
	f.StringVar(&o.delay, "delay", "0", "Delay before each value is returned (milliseconds or Go duration)")
	f.IntVarP(&o.count, "count", "n", 1, "Number of values to generate")
	f.StringVar(&o.selectPath, "select", "", "JSONPath expression applied to the output")
	f.BoolVar(&o.yaml, "yaml", false, "Print YAML instead of JSON")
	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalOptions, o *generateOptions) error {
	if o.count < 1 {
		return fmt.Errorf("--count must be at least 1 (got %d)", o.count)
	}
	delay, err := server.ParseDelay(o.delay)
	if err != nil {
		return err
	}
	var expr jp.Expr
	if o.selectPath != "" {
		if expr, err = jp.ParseString(o.selectPath); err != nil {
			return fmt.Errorf("invalid --select expression: %w", err)
		}
	}

	set, err := loadSet(o.file)
	if err != nil {
		return err
	}
	s, err := lookupSchema(set, o.schema)
	if err != nil {
		return err
	}

	m := mocker.New(s, generator.WithLogger(g.logger))
	opts := generator.Options{ExcludeOptional: o.excludeOptional, Delay: delay}

	start := time.Now()
	var out any
	if o.count == 1 {
		v, err := m.Response(cmd.Context(), opts)
		if err != nil {
			return err
		}
		out = v
	} else {
		values, err := collect(m, opts, o.count)
		if err != nil {
			return err
		}
		out = values
	}
	g.logger.Debug("generated", "schema", o.schema, "count", o.count, "duration", time.Since(start))

	if expr != nil {
		out = selectValues(expr, out)
	}
	return output.Encode(cmd.OutOrStdout(), out, o.yaml)
}

// collect starts n responses at once so their delays overlap, then gathers
// them in order.
func collect(m *mocker.Mocker, opts generator.Options, n int) ([]any, error) {
	pending := make([]<-chan mocker.Result, n)
	for i := range pending {
		pending[i] = m.ResponseAsync(opts)
	}

	values := make([]any, n)
	var errs []error
	for i, ch := range pending {
		res := <-ch
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("value %d: %w", i, res.Err))
			continue
		}
		values[i] = res.Value
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

// selectValues evaluates expr against the plain form of v. A single match
// is returned bare; zero or several matches come back as a list.
func selectValues(expr jp.Expr, v any) any {
	matches := expr.Get(ordered.Plain(v))
	if len(matches) == 1 {
		return matches[0]
	}
	if matches == nil {
		return []any{}
	}
	return matches
}
