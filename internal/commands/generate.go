package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sharkfolio/sharkgen/internal/config"
	"github.com/sharkfolio/sharkgen/internal/model"
	"github.com/sharkfolio/sharkgen/internal/roster"
	"github.com/sharkfolio/sharkgen/internal/source"
	"github.com/sharkfolio/sharkgen/internal/transform"
	"github.com/sharkfolio/sharkgen/internal/tsgen"
)

var extraFields = []string{
	"Industry/Sector",
	"Season Number",
	"Deal Valuation",
	"Yearly Revenue",
	"Company Founded Year",
	"Location",
	"Original Ask Amount",
	"Debt Component",
}

func newGenerateCommand(verbose *bool) *cobra.Command {
	var cf configFlags
	var input, inputFormat, sheet, output, exportName string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the investor data module from a pitch table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.load(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Input.Path = input
			}
			if flags.Changed("format") {
				cfg.Input.Format = inputFormat
			}
			if flags.Changed("sheet") {
				cfg.Input.Sheet = sheet
			}
			if flags.Changed("output") {
				cfg.Output.Path = output
			}
			if flags.Changed("export") {
				cfg.Output.ExportName = exportName
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			return runGenerate(cmd.OutOrStdout(), cfg, logger)
		},
	}

	cf.bind(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "pitch table (.csv or .xlsx)")
	cmd.Flags().StringVar(&inputFormat, "format", "", "input format: csv or xlsx (default: from extension)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from an xlsx input (default: first)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "generated TypeScript module")
	cmd.Flags().StringVar(&exportName, "export", "", "name of the exported constant")

	return cmd
}

func runGenerate(out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	rs, err := roster.NewService(cfg.ResolveRoster())
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}

	tbl, err := source.DefaultRegistry(cfg.Input.Sheet).Load(cfg.Input.Path, cfg.Input.Format)
	if err != nil {
		return fmt.Errorf("loading pitch table: %w", err)
	}
	logger.Debug("loaded pitch table",
		slog.String("path", cfg.Input.Path),
		slog.Int("columns", len(tbl.Header)),
		slog.Int("rows", len(tbl.Rows)))

	res := transform.New(rs, logger).Run(tbl)

	opts := tsgen.Options{ExportName: cfg.Output.ExportName, Variant: cfg.Variant}
	if err := tsgen.WriteFile(cfg.Output.Path, res.Profiles, opts); err != nil {
		return fmt.Errorf("writing module: %w", err)
	}

	printSummary(out, cfg, res)
	return nil
}

func printSummary(out io.Writer, cfg *config.Config, res *transform.Result) {
	fmt.Fprintf(out, "Generated %s (%s variant): %d investments from %d accepted deals in %d rows\n",
		cfg.Output.Path, cfg.Variant, res.Stats.Entries, res.Stats.Accepted, res.Stats.Rows)

	fmt.Fprintln(out, "\nInvestment counts:")
	for _, p := range res.Profiles {
		fmt.Fprintf(out, "  %s: %d investments\n", p.Name, len(p.Investments))
	}

	if len(res.Stats.Skipped) > 0 {
		skipped := res.Stats.SkippedBySlug()
		fmt.Fprintf(out, "\nSkipped %d unparseable investment amounts:\n", len(res.Stats.Skipped))
		for _, p := range res.Profiles {
			if n := skipped[p.Slug]; n > 0 {
				fmt.Fprintf(out, "  %s: %d\n", p.Name, n)
			}
		}
	}

	if cfg.Variant == model.VariantEnhanced {
		fmt.Fprintln(out, "\nAdditional data included:")
		for _, f := range extraFields {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
}
