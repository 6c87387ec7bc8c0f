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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/chart-tools/internal/network"
)

var topCollabsNumber int
var topCollabsThreshold int
var topCollabsCmd = &cobra.Command{
	Use:   "top-collabs",
	Short: "Prints the most frequent artist collaborations",
	Long:  `Ranks artist pairs by the number of distinct charting tracks they share.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := AnalyserConfig{NumToReturn: topCollabsNumber, FilterThreshold: topCollabsThreshold}
		err := printAnalysis(cmd.Context(), os.Stdout, sourceFromFlags(), TopCollabsAnalyzer{}.SetConfig(config))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topCollabsCmd)

	topCollabsCmd.Flags().IntVarP(&topCollabsNumber, "number", "n", 10, "number of results to return")
	topCollabsCmd.Flags().IntVar(&topCollabsThreshold, "min-tracks", 0, "only show pairs sharing more tracks than this")
}

type TopCollabsAnalyzer struct {
	Config AnalyserConfig
}

func (t TopCollabsAnalyzer) SetConfig(config AnalyserConfig) TopCollabsAnalyzer {
	t.Config = config
	return t
}

func (t TopCollabsAnalyzer) GetName() string {
	return "Top collaborations"
}

func (t TopCollabsAnalyzer) GetResults(n *network.Network) (analysis Analysis, err error) {
	analysis.results = [][]string{{"Artist", "Artist", "Tracks"}}
	shown := 0
	for _, link := range n.TopLinks(0) {
		if !t.Config.include(shown, link.Weight) {
			continue
		}
		shown++
		analysis.results = append(analysis.results, []string{
			link.Artist1,
			link.Artist2,
			fmt.Sprint(link.Weight),
		})
	}

	analysis.summary = fmt.Sprintf("Found %d collaborating pairs (%s)\n",
		n.Metadata.TotalCollaborations, n.Metadata.Countries)
	return
}
