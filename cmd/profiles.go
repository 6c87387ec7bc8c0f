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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/chart-tools/internal/analysis"
)

type ProfilesConfig struct {
	Source SourceConfig
	Output string
	Format string
}

var profilesCmd = &cobra.Command{
	Use:   "profiles [output]",
	Short: "Builds per-country artist profiles",
	Long: `Aggregates every chart appearance of each artist in each country into a
profile with audio features, monthly top 50 history and ranked tracks, and
writes them as a document keyed by "Artist (Country)" (default
artist_details.json). Pass "-" to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := ProfilesConfig{
			Source: sourceFromFlags(),
			Output: "artist_details.json",
			Format: formatFlag(cmd),
		}
		if len(args) > 0 {
			config.Output = args[0]
		}

		err := writeProfiles(cmd.Context(), os.Stdout, config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	addFormatFlag(profilesCmd)
}

func writeProfiles(ctx context.Context, out io.Writer, config ProfilesConfig) error {
	docs, err := loadDocuments(ctx, config.Source)
	if err != nil {
		return err
	}
	profiles := docs.Profiles

	if err := writeDocument(config.Output, config.Format, profiles); err != nil {
		return err
	}
	if config.Output != "-" {
		fmt.Fprintf(out, "Wrote %d artist profiles to %s (%s)\n", profiles.Len(), config.Output, profilesPerCountry(profiles))
	}
	return nil
}

// profilesPerCountry summarizes profile counts per country in document
// order, e.g. "CZ: 12, SK: 3".
func profilesPerCountry(profiles *analysis.Profiles) string {
	var countries []string
	counts := make(map[string]int)
	for _, key := range profiles.Keys() {
		if _, ok := counts[key.Country]; !ok {
			countries = append(countries, key.Country)
		}
		counts[key.Country]++
	}

	parts := make([]string, 0, len(countries))
	for _, country := range countries {
		parts = append(parts, fmt.Sprintf("%s: %d", country, counts[country]))
	}
	return strings.Join(parts, ", ")
}
