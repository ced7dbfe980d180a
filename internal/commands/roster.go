package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sharkfolio/sharkgen/internal/model"
	"github.com/sharkfolio/sharkgen/internal/roster"
)

func newRosterCommand() *cobra.Command {
	var cf configFlags

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List the investors profiles are generated for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			svc, err := roster.NewService(cfg.ResolveRoster())
			if err != nil {
				return fmt.Errorf("loading roster: %w", err)
			}
			return printRoster(cmd.OutOrStdout(), svc.All())
		},
	}

	cf.bind(cmd)
	return cmd
}

func printRoster(out io.Writer, investors []model.Investor) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAME\tSOURCE")
	for _, inv := range investors {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", inv.Slug, inv.Name, describeSource(inv))
	}
	return tw.Flush()
}

func describeSource(inv model.Investor) string {
	switch {
	case inv.IsPanel():
		return fmt.Sprintf("column %q", inv.Column)
	case inv.IsGuest():
		return fmt.Sprintf("guest %q", inv.GuestKey)
	default:
		return "-"
	}
}
