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

type NetworkConfig struct {
	Source SourceConfig
	Output string
	Format string
}

var networkCmd = &cobra.Command{
	Use:   "network [output]",
	Short: "Builds the artist collaboration network",
	Long: `Builds a graph of artists linked by the charting tracks they share and
writes it as a node/link document (default collab_network.json). Pass "-"
to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := NetworkConfig{
			Source: sourceFromFlags(),
			Output: "collab_network.json",
			Format: formatFlag(cmd),
		}
		if len(args) > 0 {
			config.Output = args[0]
		}

		err := writeNetwork(cmd.Context(), os.Stdout, config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)
	addFormatFlag(networkCmd)
}

// addFormatFlag registers --format on a document-writing command. The
// flag is read per command with formatFlag since several commands share
// the name.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "Output format: json or yaml (default from the file extension)")
}

func formatFlag(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	return format
}

func buildNetwork(ctx context.Context, source SourceConfig) (*network.Network, error) {
	docs, err := loadDocuments(ctx, source)
	if err != nil {
		return nil, err
	}
	return docs.Network, nil
}

func writeNetwork(ctx context.Context, out io.Writer, config NetworkConfig) error {
	n, err := buildNetwork(ctx, config.Source)
	if err != nil {
		return err
	}

	if err := writeDocument(config.Output, config.Format, n); err != nil {
		return err
	}
	if config.Output == "-" {
		return nil
	}

	analysis, err := NetworkStatsAnalyzer{}.GetResults(n)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, analysis)
	fmt.Fprintf(out, "Wrote %s\n", config.Output)
	return nil
}
