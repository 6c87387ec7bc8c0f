package network

// Network is the collaboration graph document.
type Network struct {
	Nodes    []Node   `json:"nodes" yaml:"nodes"`
	Links    []Link   `json:"links" yaml:"links"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

type Node struct {
	ID                string     `json:"id" yaml:"id"`
	Index             int        `json:"index" yaml:"index"`
	TrackCount        int        `json:"track_count" yaml:"track_count"`
	AvgPopularity     float64    `json:"avg_popularity" yaml:"avg_popularity"`
	CollaboratorCount int        `json:"collaborator_count" yaml:"collaborator_count"`
	TopTracks         []TrackRef `json:"top_tracks" yaml:"top_tracks"`
}

type TrackRef struct {
	Name       string `json:"name" yaml:"name"`
	Popularity int    `json:"popularity" yaml:"popularity"`
}

// Link is an undirected collaboration edge. Source always refers to the
// lexicographically smaller artist name.
type Link struct {
	Source  int    `json:"source" yaml:"source"`
	Target  int    `json:"target" yaml:"target"`
	Weight  int    `json:"weight" yaml:"weight"`
	Artist1 string `json:"artist1" yaml:"artist1"`
	Artist2 string `json:"artist2" yaml:"artist2"`
}

type Metadata struct {
	Countries           string `json:"countries" yaml:"countries"`
	TotalArtists        int    `json:"total_artists" yaml:"total_artists"`
	TotalCollaborations int    `json:"total_collaborations" yaml:"total_collaborations"`
	TotalTracks         int    `json:"total_tracks" yaml:"total_tracks"`
}

// Stats summarizes the shape of a network.
type Stats struct {
	AvgWeight           float64
	MaxWeight           int
	MinWeight           int
	AvgCollaborators    float64
	MaxCollaborators    int
	IsolatedArtistCount int
}
