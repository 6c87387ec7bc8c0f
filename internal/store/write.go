package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/mattn/go-sqlite3"

	"github.com/ademuri/chart-tools/internal/chart"
)

const dateFormat = "2006-01-02"

const insertEntry = `
INSERT INTO ChartEntry (
  spotify_id, name, artists, country, snapshot_date, daily_rank, popularity,
  duration_ms, album_name, album_release_date, danceability, energy, valence,
  speechiness, acousticness, instrumentalness, liveness, tempo
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// AddEntries appends a batch of entries in one transaction. The batch is
// retried while another connection holds the database lock.
func (s *Store) AddEntries(entries []chart.Entry) error {
	return retry.Do(
		func() error {
			return s.addEntries(entries)
		},
		retry.Attempts(5),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(isBusy),
	)
}

func (s *Store) addEntries(entries []chart.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertEntry)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(
			e.TrackID, e.Title, e.Artists, e.Country, e.SnapshotDate.Format(dateFormat),
			e.Rank, e.Popularity, e.DurationMs, e.AlbumName, e.AlbumReleaseDate,
			e.Danceability, e.Energy, e.Valence, e.Speechiness, e.Acousticness,
			e.Instrumentalness, e.Liveness, e.Tempo,
		)
		if err != nil {
			return fmt.Errorf("inserting entry %q (%s): %w", e.TrackID, e.Country, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func isBusy(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
	}
	return false
}
