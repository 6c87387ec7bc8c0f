package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/ademuri/chart-tools/internal/chart"
)

type audioFeature struct {
	name  string
	value func(chart.Entry) float64
}

var audioFeatures = []audioFeature{
	{"Danceability", func(e chart.Entry) float64 { return e.Danceability }},
	{"Energy", func(e chart.Entry) float64 { return e.Energy }},
	{"Valence", func(e chart.Entry) float64 { return e.Valence }},
	{"Speechiness", func(e chart.Entry) float64 { return e.Speechiness }},
	{"Acousticness", func(e chart.Entry) float64 { return e.Acousticness }},
	{"Instrumentalness", func(e chart.Entry) float64 { return e.Instrumentalness }},
	{"Liveness", func(e chart.Entry) float64 { return e.Liveness }},
}

// BuildProfiles groups appearances by credited artist and country and
// summarizes each group. A multi-artist appearance contributes to the
// profile of every credited artist.
func BuildProfiles(appearances []chart.Appearance) *Profiles {
	var keys []ProfileKey
	groups := make(map[ProfileKey][]chart.Appearance)
	for _, a := range appearances {
		for _, artist := range a.Credits {
			key := ProfileKey{Artist: artist, Country: a.Country}
			if _, ok := groups[key]; !ok {
				keys = append(keys, key)
			}
			groups[key] = append(groups[key], a)
		}
	}

	profiles := newProfiles(len(keys))
	for _, key := range keys {
		profiles.add(key, buildProfile(key, groups[key]))
	}
	return profiles
}

type trackAggregate struct {
	first         chart.Appearance
	bestRank      int
	maxPopularity int
	qualifiedDays map[time.Time]bool
}

func buildProfile(key ProfileKey, appearances []chart.Appearance) *Profile {
	var ids []string
	tracks := make(map[string]*trackAggregate)
	bestRank := appearances[0].Rank
	var tempo, duration float64
	for _, a := range appearances {
		bestRank = min(bestRank, a.Rank)
		tempo += a.Tempo
		duration += float64(a.DurationMs)

		agg, ok := tracks[a.TrackID]
		if !ok {
			agg = &trackAggregate{
				first:         a,
				bestRank:      a.Rank,
				maxPopularity: a.Popularity,
				qualifiedDays: make(map[time.Time]bool),
			}
			tracks[a.TrackID] = agg
			ids = append(ids, a.TrackID)
		}
		agg.bestRank = min(agg.bestRank, a.Rank)
		agg.maxPopularity = max(agg.maxPopularity, a.Popularity)
		if a.Qualifies() {
			y, m, d := a.SnapshotDate.Date()
			agg.qualifiedDays[time.Date(y, m, d, 0, 0, 0, 0, time.UTC)] = true
		}
	}

	summaries := make([]TrackSummary, 0, len(ids))
	collabs := 0
	for _, id := range ids {
		agg := tracks[id]
		if agg.first.IsCollab() {
			collabs++
		}
		summaries = append(summaries, TrackSummary{
			ID:          id,
			Title:       agg.first.Title,
			Artists:     agg.first.Artists,
			Rank:        agg.bestRank,
			Popularity:  agg.maxPopularity,
			Duration:    FormatDuration(float64(agg.first.DurationMs)),
			DaysInTop50: len(agg.qualifiedDays),
		})
	}

	n := float64(len(appearances))
	return &Profile{
		Name:    key.Artist,
		Rank:    bestRank,
		Country: key.Country,
		Stats: Stats{
			TracksInDataset: len(ids),
			AvgTempo:        round(tempo / n),
			AvgDuration:     FormatDuration(duration / n),
			CollabRatio:     percentage(collabs, len(ids)),
		},
		Top50History: BuildHistory(appearances),
		AudioProfile: audioProfile(appearances),
		Tracks:       RankTracks(summaries),
	}
}

func audioProfile(appearances []chart.Appearance) []AudioAttribute {
	profile := make([]AudioAttribute, 0, len(audioFeatures))
	for _, feature := range audioFeatures {
		var sum float64
		for _, a := range appearances {
			sum += feature.value(a.Entry)
		}
		profile = append(profile, AudioAttribute{
			Attribute: feature.name,
			Value:     round(sum / float64(len(appearances)) * 100),
		})
	}
	return profile
}

// FormatDuration renders milliseconds as m:ss. Partial seconds are
// dropped.
func FormatDuration(ms float64) string {
	if ms < 0 || math.IsNaN(ms) {
		ms = 0
	}
	seconds := int(ms / 1000)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// round rounds half to even.
func round(v float64) int {
	return int(math.RoundToEven(v))
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return round(float64(part) / float64(total) * 100)
}
