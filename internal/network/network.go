package network

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/ademuri/chart-tools/internal/chart"
)

const topTracksPerArtist = 5

type artistStats struct {
	name            string
	trackCount      int
	totalPopularity int
	tracks          []TrackRef
	collaborations  map[string]int
}

type pair struct {
	first  string
	second string
}

func newPair(a, b string) pair {
	if b < a {
		a, b = b, a
	}
	return pair{first: a, second: b}
}

// Build constructs the collaboration graph from deduplicated tracks.
// countries is echoed into the metadata; the tracks are expected to be
// filtered already.
func Build(tracks []chart.Appearance, countries []string) *Network {
	var artists []*artistStats
	byName := make(map[string]*artistStats)
	lookup := func(name string) *artistStats {
		stats, ok := byName[name]
		if !ok {
			stats = &artistStats{name: name, collaborations: make(map[string]int)}
			byName[name] = stats
			artists = append(artists, stats)
		}
		return stats
	}

	var pairs []pair
	weights := make(map[pair]int)

	for _, track := range tracks {
		for _, name := range track.Credits {
			stats := lookup(name)
			stats.trackCount++
			stats.totalPopularity += track.Popularity
			stats.tracks = append(stats.tracks, TrackRef{Name: track.Title, Popularity: track.Popularity})
		}

		for i, first := range track.Credits {
			for _, second := range track.Credits[i+1:] {
				p := newPair(first, second)
				if _, ok := weights[p]; !ok {
					pairs = append(pairs, p)
				}
				weights[p]++
				byName[first].collaborations[second]++
				byName[second].collaborations[first]++
			}
		}
	}

	network := &Network{
		Nodes: make([]Node, 0, len(artists)),
		Links: make([]Link, 0, len(pairs)),
	}
	index := make(map[string]int, len(artists))
	for i, stats := range artists {
		index[stats.name] = i
		network.Nodes = append(network.Nodes, Node{
			ID:                stats.name,
			Index:             i,
			TrackCount:        stats.trackCount,
			AvgPopularity:     averagePopularity(stats.totalPopularity, stats.trackCount),
			CollaboratorCount: len(stats.collaborations),
			TopTracks:         topTracks(stats.tracks),
		})
	}
	for _, p := range pairs {
		network.Links = append(network.Links, Link{
			Source:  index[p.first],
			Target:  index[p.second],
			Weight:  weights[p],
			Artist1: p.first,
			Artist2: p.second,
		})
	}

	network.Metadata = Metadata{
		Countries:           chart.DescribeCountries(countries),
		TotalArtists:        len(network.Nodes),
		TotalCollaborations: len(network.Links),
		TotalTracks:         len(tracks),
	}
	return network
}

// averagePopularity is rounded to one decimal place. Exact halves of the
// binary mean round to even, so 70.25 becomes 70.2.
func averagePopularity(total, count int) float64 {
	if count == 0 {
		return 0
	}
	mean := float64(total) / float64(count)
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(mean, 'f', 1, 64), 64)
	if err != nil {
		return mean
	}
	return rounded
}

func topTracks(tracks []TrackRef) []TrackRef {
	sorted := slices.Clone(tracks)
	slices.SortStableFunc(sorted, func(a, b TrackRef) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	if len(sorted) > topTracksPerArtist {
		sorted = sorted[:topTracksPerArtist]
	}
	if sorted == nil {
		sorted = []TrackRef{}
	}
	return sorted
}

// TopArtists returns up to limit nodes ordered by track count, most prolific
// first. A limit <= 0 returns every node.
func (n *Network) TopArtists(limit int) []Node {
	nodes := slices.Clone(n.Nodes)
	slices.SortStableFunc(nodes, func(a, b Node) int {
		return cmp.Compare(b.TrackCount, a.TrackCount)
	})
	return truncate(nodes, limit)
}

// TopLinks returns up to limit links ordered by weight, heaviest first.
// A limit <= 0 returns every link.
func (n *Network) TopLinks(limit int) []Link {
	links := slices.Clone(n.Links)
	slices.SortStableFunc(links, func(a, b Link) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return truncate(links, limit)
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func (n *Network) Stats() Stats {
	var stats Stats
	if len(n.Links) > 0 {
		total := 0
		stats.MinWeight = n.Links[0].Weight
		for _, link := range n.Links {
			total += link.Weight
			stats.MaxWeight = max(stats.MaxWeight, link.Weight)
			stats.MinWeight = min(stats.MinWeight, link.Weight)
		}
		stats.AvgWeight = float64(total) / float64(len(n.Links))
	}
	if len(n.Nodes) > 0 {
		total := 0
		for _, node := range n.Nodes {
			total += node.CollaboratorCount
			stats.MaxCollaborators = max(stats.MaxCollaborators, node.CollaboratorCount)
			if node.CollaboratorCount == 0 {
				stats.IsolatedArtistCount++
			}
		}
		stats.AvgCollaborators = float64(total) / float64(len(n.Nodes))
	}
	return stats
}
