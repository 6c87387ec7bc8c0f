package network

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ademuri/chart-tools/internal/chart"
)

func track(id, title, artists string, popularity int) chart.Entry {
	return chart.Entry{
		TrackID:    id,
		Title:      title,
		Artists:    artists,
		Country:    "CZ",
		Rank:       1,
		Popularity: popularity,
	}
}

func build(entries ...chart.Entry) *Network {
	return Build(chart.Normalize(entries).Tracks, []string{"CZ"})
}

func nodeByID(t *testing.T, n *Network, id string) Node {
	t.Helper()
	for _, node := range n.Nodes {
		if node.ID == id {
			return node
		}
	}
	t.Fatalf("node %q not found", id)
	return Node{}
}

func TestBuildScenario(t *testing.T) {
	n := build(
		track("T1", "Song 1", "X, Y", 80),
		track("T2", "Song 2", "X", 60),
	)

	if len(n.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(n.Nodes))
	}
	x := nodeByID(t, n, "X")
	if x.TrackCount != 2 || x.CollaboratorCount != 1 || x.AvgPopularity != 70.0 {
		t.Errorf("X = %+v, want 2 tracks, 1 collaborator, popularity 70", x)
	}
	y := nodeByID(t, n, "Y")
	if y.TrackCount != 1 || y.CollaboratorCount != 1 {
		t.Errorf("Y = %+v, want 1 track, 1 collaborator", y)
	}

	if len(n.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(n.Links))
	}
	want := Link{Source: x.Index, Target: y.Index, Weight: 1, Artist1: "X", Artist2: "Y"}
	if n.Links[0] != want {
		t.Errorf("link = %+v, want %+v", n.Links[0], want)
	}

	wantMeta := Metadata{Countries: "CZ", TotalArtists: 2, TotalCollaborations: 1, TotalTracks: 2}
	if n.Metadata != wantMeta {
		t.Errorf("metadata = %+v, want %+v", n.Metadata, wantMeta)
	}
}

func TestBuildEdgeSymmetry(t *testing.T) {
	forward := build(
		track("T1", "A", "Alpha, Beta", 10),
		track("T2", "B", "Beta, Alpha", 10),
	)
	if len(forward.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(forward.Links))
	}
	if l := forward.Links[0]; l.Weight != 2 || l.Artist1 != "Alpha" || l.Artist2 != "Beta" {
		t.Errorf("link = %+v, want Alpha-Beta with weight 2", l)
	}

	reversed := build(track("T1", "A", "Beta, Alpha", 10))
	if len(reversed.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(reversed.Links))
	}
	link := reversed.Links[0]
	if link.Artist1 != "Alpha" {
		t.Errorf("Artist1 = %q, want Alpha", link.Artist1)
	}
	if got := reversed.Nodes[link.Source].ID; got != "Alpha" {
		t.Errorf("source node = %q, want Alpha", got)
	}
	if got := reversed.Nodes[link.Target].ID; got != "Beta" {
		t.Errorf("target node = %q, want Beta", got)
	}
}

func TestBuildPairCount(t *testing.T) {
	n := build(track("T1", "Posse Cut", "A, B, C, D", 50))

	if len(n.Links) != 6 {
		t.Fatalf("got %d links, want 6", len(n.Links))
	}
	for _, link := range n.Links {
		if link.Weight != 1 || link.Artist1 >= link.Artist2 {
			t.Errorf("link = %+v, want weight 1 with ordered names", link)
		}
	}
	for _, node := range n.Nodes {
		if node.CollaboratorCount != 3 || node.TrackCount != 1 {
			t.Errorf("node = %+v, want 3 collaborators and 1 track", node)
		}
	}

	solo := build(track("T1", "Solo", "A", 50))
	if len(solo.Links) != 0 {
		t.Errorf("solo track produced links: %+v", solo.Links)
	}
}

func TestBuildRepeatedCreditCountsOnce(t *testing.T) {
	n := build(track("T1", "Echo", "A, B, A", 40))

	a := nodeByID(t, n, "A")
	if a.TrackCount != 1 || a.AvgPopularity != 40.0 {
		t.Errorf("A = %+v, want 1 track with popularity 40", a)
	}
	if len(n.Links) != 1 || n.Links[0].Weight != 1 {
		t.Errorf("links = %+v, want a single link of weight 1", n.Links)
	}
}

func TestBuildIsolatedArtist(t *testing.T) {
	n := build(
		track("T1", "Duet", "A, B", 40),
		track("T2", "Alone", "C", 30),
	)

	c := nodeByID(t, n, "C")
	if c.CollaboratorCount != 0 || c.TrackCount != 1 {
		t.Errorf("C = %+v, want 1 track and no collaborators", c)
	}
	if got := n.Stats().IsolatedArtistCount; got != 1 {
		t.Errorf("IsolatedArtistCount = %d, want 1", got)
	}
}

func TestBuildTopTracks(t *testing.T) {
	var entries []chart.Entry
	pops := []int{10, 90, 50, 90, 20, 70, 5}
	for i, p := range pops {
		id := string(rune('a' + i))
		entries = append(entries, track(id, "Song "+id, "A", p))
	}
	n := build(entries...)

	want := []TrackRef{
		{"Song b", 90},
		{"Song d", 90},
		{"Song f", 70},
		{"Song c", 50},
		{"Song e", 20},
	}
	if got := nodeByID(t, n, "A").TopTracks; !reflect.DeepEqual(got, want) {
		t.Errorf("TopTracks = %v, want %v", got, want)
	}
}

func TestAveragePopularityRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		total, count int
		want         float64
	}{
		{281, 4, 70.2},
		{283, 4, 70.8},
		{282, 4, 70.5},
		{200, 3, 66.7},
		{0, 0, 0},
	}
	for _, test := range tests {
		if got := averagePopularity(test.total, test.count); got != test.want {
			t.Errorf("averagePopularity(%d, %d) = %v, want %v", test.total, test.count, got, test.want)
		}
	}

	n := build(
		track("T1", "1", "A", 70),
		track("T2", "2", "A", 70),
		track("T3", "3", "A", 70),
		track("T4", "4", "A", 71),
	)
	if got := nodeByID(t, n, "A").AvgPopularity; got != 70.2 {
		t.Errorf("AvgPopularity = %v, want 70.2", got)
	}
}

func TestBuildEmpty(t *testing.T) {
	n := Build(nil, nil)

	if len(n.Nodes) != 0 || len(n.Links) != 0 {
		t.Errorf("got %d nodes and %d links, want none", len(n.Nodes), len(n.Links))
	}
	if n.Metadata.Countries != "All Countries" {
		t.Errorf("Countries = %q, want %q", n.Metadata.Countries, "All Countries")
	}

	out, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"nodes":[],"links":[],"metadata":{"countries":"All Countries","total_artists":0,"total_collaborations":0,"total_tracks":0}}`
	if string(out) != want {
		t.Errorf("json = %s, want %s", out, want)
	}
}

func TestTopArtistsAndLinks(t *testing.T) {
	n := build(
		track("T1", "1", "A, B", 1),
		track("T2", "2", "B, C", 1),
		track("T3", "3", "B, C", 1),
		track("T4", "4", "C", 1),
	)

	top := n.TopArtists(2)
	if len(top) != 2 || top[0].ID != "B" || top[1].ID != "C" {
		t.Errorf("TopArtists(2) = %+v, want B then C", top)
	}

	links := n.TopLinks(0)
	if len(links) != 2 {
		t.Fatalf("TopLinks(0) returned %d links, want 2", len(links))
	}
	if l := links[0]; l.Artist1 != "B" || l.Artist2 != "C" || l.Weight != 2 {
		t.Errorf("heaviest link = %+v, want B-C with weight 2", l)
	}

	stats := n.Stats()
	if stats.MaxWeight != 2 || stats.MinWeight != 1 || stats.AvgWeight != 1.5 || stats.MaxCollaborators != 2 {
		t.Errorf("Stats() = %+v", stats)
	}
}
