package chart

import (
	"time"
)

// QualifyingRank is the highest rank that still counts as a top-tier
// chart appearance.
const QualifyingRank = 50

// Entry is one row of chart history: a track's position in one country
// on one day.
type Entry struct {
	TrackID          string    `validate:"required"`
	Title            string    `validate:"required"`
	Artists          string    `validate:"required"`
	Country          string    `validate:"required,len=2"`
	SnapshotDate     time.Time `validate:"required"`
	Rank             int       `validate:"gt=0"`
	Popularity       int       `validate:"gte=0"`
	DurationMs       int64     `validate:"gte=0"`
	AlbumName        string
	AlbumReleaseDate string

	Danceability     float64
	Energy           float64
	Valence          float64
	Speechiness      float64
	Acousticness     float64
	Instrumentalness float64
	Liveness         float64
	Tempo            float64
}

// Qualifies reports whether the entry reached the top tier of its chart.
func (e Entry) Qualifies() bool {
	return e.Rank <= QualifyingRank
}

// Appearance is an entry together with its parsed credit list.
type Appearance struct {
	Entry
	Credits []string
}

// IsCollab reports whether more than one artist is credited.
func (a Appearance) IsCollab() bool {
	return len(a.Credits) > 1
}
