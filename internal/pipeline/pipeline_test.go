package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/chart-tools/internal/chart"
)

func entries() []chart.Entry {
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	return []chart.Entry{
		{TrackID: "T1", Title: "One", Artists: "X, Y", Country: "CZ", SnapshotDate: date, Rank: 1, Popularity: 80},
		{TrackID: "T2", Title: "Two", Artists: "X", Country: "CZ", SnapshotDate: date, Rank: 2, Popularity: 60},
		{TrackID: "T3", Title: "Three", Artists: "", Country: "CZ", SnapshotDate: date, Rank: 3, Popularity: 10},
	}
}

func TestBuild(t *testing.T) {
	docs, err := Build(context.Background(), entries(), []string{"CZ"})
	require.NoError(t, err)

	assert.Equal(t, 2, docs.Tracks)
	assert.Equal(t, 1, docs.Skipped)
	assert.Len(t, docs.Network.Nodes, 2)
	assert.Len(t, docs.Network.Links, 1)
	assert.Equal(t, "CZ", docs.Network.Metadata.Countries)

	x, ok := docs.Profiles.Get("X", "CZ")
	require.True(t, ok)
	assert.Equal(t, 2, x.Stats.TracksInDataset)
	assert.Equal(t, 50, x.Stats.CollabRatio)
}

func TestBuildMissingCountry(t *testing.T) {
	docs, err := Build(context.Background(), entries(), []string{"SK"})
	require.NoError(t, err)

	assert.Empty(t, docs.Network.Nodes)
	assert.Empty(t, docs.Network.Links)
	assert.Zero(t, docs.Profiles.Len())
	assert.Equal(t, "SK", docs.Network.Metadata.Countries)
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, entries(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
