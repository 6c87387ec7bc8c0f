package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/ademuri/chart-tools/internal/chart"
)

// Filter restricts which entries are read. Zero values mean no
// restriction; End is exclusive.
type Filter struct {
	Countries []string
	Start     time.Time
	End       time.Time
}

func (f Filter) where() (string, []interface{}) {
	var clauses []string
	var args []interface{}
	if len(f.Countries) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(f.Countries)), ", ")
		clauses = append(clauses, "country IN ("+placeholders+")")
		for _, c := range f.Countries {
			args = append(args, c)
		}
	}
	if !f.Start.IsZero() {
		clauses = append(clauses, "snapshot_date >= ?")
		args = append(args, f.Start.Format(dateFormat))
	}
	if !f.End.IsZero() {
		clauses = append(clauses, "snapshot_date < ?")
		args = append(args, f.End.Format(dateFormat))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// Entries returns the matching entries in import order.
func (s *Store) Entries(filter Filter) ([]chart.Entry, error) {
	where, args := filter.where()
	query := `
		SELECT spotify_id, name, artists, country, snapshot_date, daily_rank,
			popularity, duration_ms, album_name, album_release_date, danceability,
			energy, valence, speechiness, acousticness, instrumentalness, liveness, tempo
		FROM ChartEntry
		` + where + `
		ORDER BY id ASC
	`
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []chart.Entry
	for rows.Next() {
		var e chart.Entry
		var date string
		err := rows.Scan(
			&e.TrackID, &e.Title, &e.Artists, &e.Country, &date, &e.Rank,
			&e.Popularity, &e.DurationMs, &e.AlbumName, &e.AlbumReleaseDate, &e.Danceability,
			&e.Energy, &e.Valence, &e.Speechiness, &e.Acousticness, &e.Instrumentalness,
			&e.Liveness, &e.Tempo,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.SnapshotDate, err = time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("parsing snapshot date %q: %w", date, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type CountryCount struct {
	Country string
	Entries int64
	Tracks  int64
	First   string
	Last    string
}

// Countries summarizes the imported entries per country.
func (s *Store) Countries() ([]CountryCount, error) {
	query := `
		SELECT country, COUNT(*), COUNT(DISTINCT spotify_id), MIN(snapshot_date), MAX(snapshot_date)
		FROM ChartEntry
		GROUP BY country
		ORDER BY COUNT(*) DESC, country ASC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying countries: %w", err)
	}
	defer rows.Close()

	var results []CountryCount
	for rows.Next() {
		var c CountryCount
		if err := rows.Scan(&c.Country, &c.Entries, &c.Tracks, &c.First, &c.Last); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}
