// Package loader reads chart exports into typed, validated chart entries.
package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ademuri/chart-tools/internal/chart"
)

var ErrUnsupportedFormat = errors.New("unsupported input format")

const dateFormat = "2006-01-02"

// Column names of the public Spotify charts dataset.
const (
	colTrackID          = "spotify_id"
	colTitle            = "name"
	colArtists          = "artists"
	colRank             = "daily_rank"
	colCountry          = "country"
	colSnapshotDate     = "snapshot_date"
	colPopularity       = "popularity"
	colDuration         = "duration_ms"
	colAlbumName        = "album_name"
	colAlbumReleaseDate = "album_release_date"
	colDanceability     = "danceability"
	colEnergy           = "energy"
	colValence          = "valence"
	colSpeechiness      = "speechiness"
	colAcousticness     = "acousticness"
	colInstrumentalness = "instrumentalness"
	colLiveness         = "liveness"
	colTempo            = "tempo"
)

var requiredColumns = []string{
	colTrackID, colTitle, colArtists, colRank, colCountry, colSnapshotDate,
	colPopularity, colDuration, colDanceability, colEnergy, colValence,
	colSpeechiness, colAcousticness, colInstrumentalness, colLiveness, colTempo,
}

// Result is the outcome of reading one export.
type Result struct {
	Entries []chart.Entry
	// Rows counts data rows read, including skipped ones.
	Rows int
	// Skipped counts rows that failed parsing or validation.
	Skipped int
}

type Loader struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func New(logger *slog.Logger) *Loader {
	return &Loader{
		logger:   logger.With(slog.String("component", "loader")),
		validate: validator.New(),
	}
}

// LoadFile reads a .csv or .xlsx export.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var result *Result
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		result, err = l.ReadCSV(f)
	case ".xlsx":
		result, err = l.ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	l.logger.Info("loaded chart export",
		slog.String("path", path),
		slog.Int("rows", result.Rows),
		slog.Int("entries", len(result.Entries)),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

// header maps column names to record positions.
type header map[string]int

func parseHeader(names []string) (header, error) {
	h := make(header, len(names))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := h[name]; !ok {
			h[name] = i
		}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := h[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return h, nil
}

func (h header) get(record []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// add decodes and validates one record, counting it as skipped on failure.
func (l *Loader) add(result *Result, h header, record []string) {
	result.Rows++
	entry, err := h.decode(record)
	if err == nil {
		err = l.validate.Struct(entry)
	}
	if err != nil {
		result.Skipped++
		l.logger.Debug("skipping row", slog.Int("row", result.Rows), slog.String("error", err.Error()))
		return
	}
	result.Entries = append(result.Entries, entry)
}

func (h header) decode(record []string) (entry chart.Entry, err error) {
	entry = chart.Entry{
		TrackID:          h.get(record, colTrackID),
		Title:            h.get(record, colTitle),
		Artists:          h.get(record, colArtists),
		Country:          h.get(record, colCountry),
		AlbumName:        h.get(record, colAlbumName),
		AlbumReleaseDate: h.get(record, colAlbumReleaseDate),
	}

	entry.SnapshotDate, err = time.Parse(dateFormat, h.get(record, colSnapshotDate))
	if err != nil {
		return entry, fmt.Errorf("%s: %w", colSnapshotDate, err)
	}

	var rank, popularity, duration float64
	fields := []struct {
		column string
		dest   *float64
	}{
		{colRank, &rank},
		{colPopularity, &popularity},
		{colDuration, &duration},
		{colDanceability, &entry.Danceability},
		{colEnergy, &entry.Energy},
		{colValence, &entry.Valence},
		{colSpeechiness, &entry.Speechiness},
		{colAcousticness, &entry.Acousticness},
		{colInstrumentalness, &entry.Instrumentalness},
		{colLiveness, &entry.Liveness},
		{colTempo, &entry.Tempo},
	}
	for _, field := range fields {
		*field.dest, err = parseFloat(h.get(record, field.column))
		if err != nil {
			return entry, fmt.Errorf("%s: %w", field.column, err)
		}
	}
	entry.Rank = int(rank)
	entry.Popularity = int(popularity)
	entry.DurationMs = int64(duration)
	return entry, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
