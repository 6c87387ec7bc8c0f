package analysis

import (
	"cmp"
	"slices"
)

// RankTracks orders tracks by days spent in the top tier, most first,
// then by best rank. Tracks with equal keys keep their input order. The
// first track of the result is flagged as the top track.
func RankTracks(tracks []TrackSummary) []TrackSummary {
	ranked := slices.Clone(tracks)
	slices.SortStableFunc(ranked, func(a, b TrackSummary) int {
		if c := cmp.Compare(b.DaysInTop50, a.DaysInTop50); c != 0 {
			return c
		}
		return cmp.Compare(a.Rank, b.Rank)
	})
	for i := range ranked {
		ranked[i].IsTopTrack = i == 0
	}
	return ranked
}
