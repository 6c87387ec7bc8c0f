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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/chart-tools/internal/network"
)

var topArtistsNumber int
var topArtistsThreshold int
var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Prints the most prolific charting artists",
	Long:  `Ranks artists by the number of distinct charting tracks they are credited on.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := AnalyserConfig{NumToReturn: topArtistsNumber, FilterThreshold: topArtistsThreshold}
		err := printAnalysis(cmd.Context(), os.Stdout, sourceFromFlags(), TopArtistsAnalyzer{}.SetConfig(config))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().IntVarP(&topArtistsNumber, "number", "n", 10, "number of results to return")
	topArtistsCmd.Flags().IntVar(&topArtistsThreshold, "min-tracks", 0, "only show artists with more tracks than this")
}

// printAnalysis builds the collaboration network for source and prints
// the analyser's table.
func printAnalysis(ctx context.Context, out io.Writer, source SourceConfig, analyser Analyser) error {
	n, err := buildNetwork(ctx, source)
	if err != nil {
		return err
	}

	analysis, err := analyser.GetResults(n)
	if err != nil {
		return fmt.Errorf("%s: %w", analyser.GetName(), err)
	}
	fmt.Fprintf(out, "%s\n", analyser.GetName())
	fmt.Fprintln(out, analysis)
	return nil
}

type TopArtistsAnalyzer struct {
	Config AnalyserConfig
}

func (t TopArtistsAnalyzer) SetConfig(config AnalyserConfig) TopArtistsAnalyzer {
	t.Config = config
	return t
}

func (t TopArtistsAnalyzer) GetName() string {
	return "Top artists"
}

func (t TopArtistsAnalyzer) GetResults(n *network.Network) (analysis Analysis, err error) {
	analysis.results = [][]string{{"Artist", "Tracks", "Collaborators", "Avg popularity"}}
	shown := 0
	for _, node := range n.TopArtists(0) {
		if !t.Config.include(shown, node.TrackCount) {
			continue
		}
		shown++
		analysis.results = append(analysis.results, []string{
			node.ID,
			fmt.Sprint(node.TrackCount),
			fmt.Sprint(node.CollaboratorCount),
			fmt.Sprintf("%.1f", node.AvgPopularity),
		})
	}

	analysis.summary = fmt.Sprintf("Found %d artists on %d tracks (%s)\n",
		n.Metadata.TotalArtists, n.Metadata.TotalTracks, n.Metadata.Countries)
	return
}
