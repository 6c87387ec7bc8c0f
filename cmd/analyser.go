/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/chart-tools/internal/network"
)

type Analysis struct {
	results [][]string
	summary string
}

type AnalyserConfig struct {
	// Number of results to return, default is all results.
	NumToReturn int

	// Only return results with a count above this. Default is all results.
	FilterThreshold int
}

// Analyser summarizes a collaboration network as a table.
type Analyser interface {
	GetResults(n *network.Network) (Analysis, error)

	GetName() string
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

// include reports whether the i-th result (0-based) with the given count
// passes the config's limit and threshold.
func (c AnalyserConfig) include(i int, count int) bool {
	return (c.NumToReturn == 0 || i < c.NumToReturn) && (c.FilterThreshold == 0 || count > c.FilterThreshold)
}

type NetworkStatsAnalyzer struct{}

func (NetworkStatsAnalyzer) GetName() string {
	return "Network statistics"
}

func (NetworkStatsAnalyzer) GetResults(n *network.Network) (analysis Analysis, err error) {
	stats := n.Stats()
	analysis.results = [][]string{
		{"Statistic", "Value"},
		{"Artists", fmt.Sprint(n.Metadata.TotalArtists)},
		{"Collaborations", fmt.Sprint(n.Metadata.TotalCollaborations)},
		{"Tracks", fmt.Sprint(n.Metadata.TotalTracks)},
		{"Average collaborations per pair", fmt.Sprintf("%.2f", stats.AvgWeight)},
		{"Max collaborations (single pair)", fmt.Sprint(stats.MaxWeight)},
		{"Min collaborations (single pair)", fmt.Sprint(stats.MinWeight)},
		{"Average collaborators per artist", fmt.Sprintf("%.2f", stats.AvgCollaborators)},
		{"Most connected artist", fmt.Sprint(stats.MaxCollaborators)},
		{"Artists with no collaborations", fmt.Sprint(stats.IsolatedArtistCount)},
	}
	analysis.summary = fmt.Sprintf("Countries: %s\n", n.Metadata.Countries)
	return
}
