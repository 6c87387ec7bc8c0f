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
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/chart-tools/internal/store"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Lists the countries present in the database",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printCountries(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}

func printCountries(out io.Writer, dbPath string) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	counts, err := db.Countries()
	if err != nil {
		return fmt.Errorf("listing countries: %w", err)
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Country", "Rows", "Tracks", "First day", "Last day"})
	for _, c := range counts {
		err = table.Append([]string{
			c.Country,
			fmt.Sprint(c.Entries),
			fmt.Sprint(c.Tracks),
			c.First,
			c.Last,
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}
