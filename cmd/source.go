package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/chart-tools/internal/chart"
	"github.com/ademuri/chart-tools/internal/loader"
	"github.com/ademuri/chart-tools/internal/store"
)

// SourceConfig selects the chart entries a command works on.
type SourceConfig struct {
	DbPath    string
	Input     string
	Countries []string
	From      string
	To        string
}

func sourceFromFlags() SourceConfig {
	return SourceConfig{
		DbPath:    viper.GetString("database"),
		Input:     viper.GetString("input"),
		Countries: selectedCountries(),
		From:      viper.GetString("from"),
		To:        viper.GetString("to"),
	}
}

// loadEntries reads entries from the input file if one is given, and from
// the database otherwise. Dates are filtered here; countries are left to
// the pipeline so metadata can echo the filter.
func loadEntries(config SourceConfig) ([]chart.Entry, error) {
	start, end, err := parseDateBounds(config.From, config.To)
	if err != nil {
		return nil, err
	}

	if config.Input != "" {
		result, err := loader.New(slog.Default()).LoadFile(config.Input)
		if err != nil {
			return nil, err
		}
		var entries []chart.Entry
		for _, e := range result.Entries {
			if withinDates(e.SnapshotDate, start, end) {
				entries = append(entries, e)
			}
		}
		return entries, nil
	}

	db, err := store.Open(config.DbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	entries, err := db.Entries(store.Filter{Countries: config.Countries, Start: start, End: end})
	if err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	slog.Debug("read chart entries", slog.String("database", config.DbPath), slog.Int("entries", len(entries)))
	return entries, nil
}

// documentFormat picks the encoding for an output document. An explicit
// format wins; otherwise .yaml and .yml paths get YAML and everything else
// JSON.
func documentFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	case "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return "yaml", nil
		}
		return "json", nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func encodeDocument(out io.Writer, format string, doc interface{}) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(doc)
	}
}

// writeDocument writes doc to path, or to stdout when path is "-".
func writeDocument(path, format string, doc interface{}) error {
	format, err := documentFormat(path, format)
	if err != nil {
		return err
	}

	if path == "-" {
		return encodeDocument(os.Stdout, format, doc)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := encodeDocument(f, format, doc); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
