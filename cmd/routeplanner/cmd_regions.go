package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRegionsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions, hubs, congestion ranges and nodes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, flags)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "REGION\tHUB\tRANGE\tHEAVY\tNODES")
			for _, r := range a.graph.Regions() {
				fmt.Fprintf(tw, "%s\t%s\t[%d,%d]\t%t\t%d\n", r.Name, r.Hub, r.MinRate, r.MaxRate, r.Heavy, len(r.Nodes))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			for _, r := range a.graph.Regions() {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", r.Name)
				for _, id := range r.Nodes {
					n, err := a.graph.Node(id)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %-22s %s\n", n.ID, n.Label)
				}
			}
			return nil
		},
	}
}
