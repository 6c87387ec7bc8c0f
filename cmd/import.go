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
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ademuri/chart-tools/internal/loader"
	"github.com/ademuri/chart-tools/internal/store"
)

type ImportConfig struct {
	DbPath    string
	Path      string
	BatchSize int
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Imports a chart export into the database",
	Long: `Reads a CSV or XLSX chart export and appends its rows to the local SQLite
database, in file order. Rows missing required fields are skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := ImportConfig{
			DbPath:    viper.GetString("database"),
			Path:      args[0],
			BatchSize: viper.GetInt("batch-size"),
		}

		err := importFile(os.Stdout, config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	var batchSize int
	importCmd.Flags().IntVar(&batchSize, "batch-size", 1000, "Number of rows written per transaction")
	viper.BindPFlag("batch-size", importCmd.Flags().Lookup("batch-size"))
}

func importFile(out io.Writer, config ImportConfig) error {
	if config.BatchSize <= 0 {
		return fmt.Errorf("--batch-size must be positive, got %d", config.BatchSize)
	}

	result, err := loader.New(slog.Default()).LoadFile(config.Path)
	if err != nil {
		return err
	}

	db, err := store.New(config.DbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	progress := rate.Sometimes{Interval: time.Second}
	for start := 0; start < len(result.Entries); start += config.BatchSize {
		end := min(start+config.BatchSize, len(result.Entries))
		if err := db.AddEntries(result.Entries[start:end]); err != nil {
			return fmt.Errorf("writing rows %d-%d: %w", start, end, err)
		}
		progress.Do(func() {
			slog.Info("importing", slog.Int("written", end), slog.Int("total", len(result.Entries)))
		})
	}

	fmt.Fprintf(out, "Imported %d rows from %s (%d skipped)\n", len(result.Entries), config.Path, result.Skipped)
	return nil
}
