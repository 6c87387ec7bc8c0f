package analysis

import (
	"fmt"
)

// ProfileKey identifies one artist's chart presence in one country.
type ProfileKey struct {
	Artist  string
	Country string
}

// String flattens the key into the "Artist (Country)" form used by
// document consumers.
func (k ProfileKey) String() string {
	return fmt.Sprintf("%s (%s)", k.Artist, k.Country)
}

// Profile is the per-artist, per-country summary.
type Profile struct {
	Name         string           `json:"name" yaml:"name"`
	Rank         int              `json:"rank" yaml:"rank"`
	Country      string           `json:"country" yaml:"country"`
	Stats        Stats            `json:"stats" yaml:"stats"`
	Top50History []MonthlyEntry   `json:"top50History" yaml:"top50History"`
	AudioProfile []AudioAttribute `json:"audioProfile" yaml:"audioProfile"`
	Tracks       []TrackSummary   `json:"tracks" yaml:"tracks"`
}

type Stats struct {
	TracksInDataset int    `json:"tracksInDataset" yaml:"tracksInDataset"`
	AvgTempo        int    `json:"avgTempo" yaml:"avgTempo"`
	AvgDuration     string `json:"avgDuration" yaml:"avgDuration"`
	CollabRatio     int    `json:"collabRatio" yaml:"collabRatio"`
}

type AudioAttribute struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Value     int    `json:"value" yaml:"value"`
}

// TrackSummary describes one unique track of a profile. Rank is the best
// rank the track reached in the profile's country.
type TrackSummary struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Artists     string `json:"artists" yaml:"artists"`
	Rank        int    `json:"rank" yaml:"rank"`
	Popularity  int    `json:"popularity" yaml:"popularity"`
	Duration    string `json:"duration" yaml:"duration"`
	DaysInTop50 int    `json:"days_in_top_50" yaml:"days_in_top_50"`
	IsTopTrack  bool   `json:"isTopTrack" yaml:"isTopTrack"`
}
