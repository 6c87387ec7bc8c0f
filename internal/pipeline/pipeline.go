// Package pipeline runs the normalizer and both document builders over a
// set of chart entries.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ademuri/chart-tools/internal/analysis"
	"github.com/ademuri/chart-tools/internal/chart"
	"github.com/ademuri/chart-tools/internal/network"
)

// Documents are the two artifacts built from one set of entries.
type Documents struct {
	Network  *network.Network
	Profiles *analysis.Profiles

	// Tracks and Skipped describe the normalized input.
	Tracks  int
	Skipped int
}

// Build filters entries to countries, normalizes them once and builds the
// collaboration network and the artist profiles concurrently. Both
// builders only read the shared catalog.
func Build(ctx context.Context, entries []chart.Entry, countries []string) (*Documents, error) {
	catalog := chart.Normalize(chart.FilterCountries(entries, countries))
	docs := &Documents{
		Tracks:  len(catalog.Tracks),
		Skipped: catalog.Skipped,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		docs.Network = network.Build(catalog.Tracks, countries)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		docs.Profiles = analysis.BuildProfiles(catalog.Appearances)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
