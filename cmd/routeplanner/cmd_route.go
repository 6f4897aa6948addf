package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neha3-ai/final-ip-project/congestion"
	"github.com/Neha3-ai/final-ip-project/planner"
)

func newRouteCmd(flags *rootFlags) *cobra.Command {
	var (
		from, to string
		seed     int64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan the cheapest route under a freshly sampled congestion snapshot",
		Example: `  routeplanner route --from hyd_dilsukhnagar --to hyd_lbnagar
  routeplanner route --from che_marina --to del_dwarka --seed 7 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var extra []congestion.Option
			if cmd.Flags().Changed("seed") {
				extra = append(extra, congestion.WithSeed(seed))
			}
			a, err := buildApp(cmd, flags, extra...)
			if err != nil {
				return err
			}

			out, err := a.planner.Route(cmd.Context(), planner.Query{Source: from, Destination: to})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			printOutcome(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source node ID")
	cmd.Flags().StringVar(&to, "to", "", "destination node ID")
	cmd.Flags().Int64Var(&seed, "seed", 0, "pin the congestion sampler")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// printOutcome renders the route as a short report.
func printOutcome(w io.Writer, out planner.Outcome) {
	fmt.Fprintf(w, "Route: %s\n", strings.Join(out.Labels, " → "))
	fmt.Fprintf(w, "Stops: %d • %s\n", len(out.Path), strings.Join(out.Path, " ➜ "))
	fmt.Fprintf(w, "Total Cost: %.2f (distance×traffic)\n", out.TotalCost)
	fmt.Fprintf(w, "Estimated Time: %d min • Distance: %g km\n", out.EstimatedTimeMin, out.TotalDistanceKm)
	fmt.Fprintf(w, "Avg Traffic (path): %g/10\n", out.AverageCongestion)
	for _, l := range out.Legs {
		fmt.Fprintf(w, "  %s → %s  %g km  rate %d  %.0f km/h  %.1f min\n",
			l.From, l.To, l.DistanceKm, l.Rate, l.SpeedKmh, l.Minutes)
	}
}
