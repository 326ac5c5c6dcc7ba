// Package recommend implements a one-shot recommendation command, useful
// for smoke testing the pipeline without the HTTP server.
package recommend

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/voyago/voyago/internal/ai"
	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/pipeline"
)

// Command returns the recommend subcommand.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		tripType    string
		budget      float64
		destination string
		duration    int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate and enrich recommendations once, printing JSON to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.Build(settings)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			if destination != "" {
				acts := p.Generator.ActivityRecommendations(ctx, destination, tripType, duration)
				acts = p.Enricher.EnrichActivities(ctx, acts, settings.Imagery.ImagesPerActivity)
				return enc.Encode(acts)
			}

			recs := p.Generator.DestinationRecommendations(ctx, &ai.Profile{
				TripType: tripType,
				Budget:   budget,
			})
			recs = p.Enricher.EnrichDestinations(ctx, recs, settings.Imagery.ImagesPerDestination)
			return enc.Encode(recs)
		},
	}

	cmd.Flags().StringVar(&tripType, "trip-type", "leisure", "Trip type to generate for")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Daily budget in USD (0 for unknown)")
	cmd.Flags().StringVar(&destination, "destination", "", "Generate activities for this destination instead of destinations")
	cmd.Flags().IntVar(&duration, "duration", 3, "Trip duration in days for activity generation")

	return cmd
}
