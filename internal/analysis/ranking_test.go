package analysis

import (
	"reflect"
	"testing"
)

func ids(tracks []TrackSummary) []string {
	var out []string
	for _, t := range tracks {
		out = append(out, t.ID)
	}
	return out
}

func TestRankTracks(t *testing.T) {
	ranked := RankTracks([]TrackSummary{
		{ID: "A", DaysInTop50: 3, Rank: 10},
		{ID: "B", DaysInTop50: 3, Rank: 5},
		{ID: "C", DaysInTop50: 1, Rank: 1},
	})

	if got, want := ids(ranked), []string{"B", "A", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if !ranked[0].IsTopTrack || ranked[1].IsTopTrack || ranked[2].IsTopTrack {
		t.Errorf("only the first track should be flagged: %+v", ranked)
	}
}

func TestRankTracksStable(t *testing.T) {
	input := []TrackSummary{
		{ID: "first", DaysInTop50: 2, Rank: 4},
		{ID: "second", DaysInTop50: 2, Rank: 4},
		{ID: "third", DaysInTop50: 2, Rank: 4},
	}
	ranked := RankTracks(input)

	if got, want := ids(ranked), []string{"first", "second", "third"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if input[0].IsTopTrack {
		t.Errorf("input was modified")
	}
}

func TestRankTracksSingle(t *testing.T) {
	ranked := RankTracks([]TrackSummary{{ID: "only", Rank: 120, IsTopTrack: false}})

	if len(ranked) != 1 || !ranked[0].IsTopTrack {
		t.Errorf("RankTracks() = %+v, want the single track flagged", ranked)
	}
}

func TestRankTracksClearsStaleFlags(t *testing.T) {
	ranked := RankTracks([]TrackSummary{
		{ID: "old", DaysInTop50: 0, Rank: 90, IsTopTrack: true},
		{ID: "new", DaysInTop50: 4, Rank: 3},
	})

	if got, want := ids(ranked), []string{"new", "old"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if ranked[1].IsTopTrack {
		t.Errorf("stale flag kept on %q", ranked[1].ID)
	}
}
