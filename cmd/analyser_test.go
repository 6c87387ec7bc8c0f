/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ademuri/chart-tools/internal/chart"
	"github.com/ademuri/chart-tools/internal/network"
)

func testNetwork() *network.Network {
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	entries := []chart.Entry{
		{TrackID: "T1", Title: "One", Artists: "X, Y", SnapshotDate: date, Rank: 1, Popularity: 80},
		{TrackID: "T2", Title: "Two", Artists: "X, Z", SnapshotDate: date, Rank: 2, Popularity: 60},
		{TrackID: "T3", Title: "Three", Artists: "Y, X", SnapshotDate: date, Rank: 3, Popularity: 40},
		{TrackID: "T4", Title: "Four", Artists: "W", SnapshotDate: date, Rank: 4, Popularity: 20},
	}
	return network.Build(chart.Normalize(entries).Tracks, nil)
}

func TestTopArtistsAnalyzer(t *testing.T) {
	analysis, err := TopArtistsAnalyzer{}.SetConfig(AnalyserConfig{NumToReturn: 2}).GetResults(testNetwork())
	if err != nil {
		t.Fatalf("GetResults() error: %v", err)
	}

	want := [][]string{
		{"Artist", "Tracks", "Collaborators", "Avg popularity"},
		{"X", "3", "2", "60.0"},
		{"Y", "2", "1", "60.0"},
	}
	if !reflect.DeepEqual(analysis.results, want) {
		t.Errorf("results = %v, want %v", analysis.results, want)
	}
}

func TestTopArtistsAnalyzerThreshold(t *testing.T) {
	analysis, err := TopArtistsAnalyzer{}.SetConfig(AnalyserConfig{FilterThreshold: 1}).GetResults(testNetwork())
	if err != nil {
		t.Fatalf("GetResults() error: %v", err)
	}
	// Header plus X and Y.
	if len(analysis.results) != 3 {
		t.Errorf("got %d rows, want 3: %v", len(analysis.results), analysis.results)
	}
}

func TestTopCollabsAnalyzer(t *testing.T) {
	analysis, err := TopCollabsAnalyzer{}.SetConfig(AnalyserConfig{NumToReturn: 1}).GetResults(testNetwork())
	if err != nil {
		t.Fatalf("GetResults() error: %v", err)
	}

	want := [][]string{
		{"Artist", "Artist", "Tracks"},
		{"X", "Y", "2"},
	}
	if !reflect.DeepEqual(analysis.results, want) {
		t.Errorf("results = %v, want %v", analysis.results, want)
	}
}

func TestNetworkStatsAnalyzer(t *testing.T) {
	analysis, err := NetworkStatsAnalyzer{}.GetResults(testNetwork())
	if err != nil {
		t.Fatalf("GetResults() error: %v", err)
	}

	rendered := analysis.String()
	for _, want := range []string{"Artists with no collaborations", "All Countries"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered analysis missing %q:\n%s", want, rendered)
		}
	}
}

func TestPrintAnalysis(t *testing.T) {
	dir := t.TempDir()
	source := SourceConfig{Input: writeTestCSV(t, dir)}

	out := new(bytes.Buffer)
	if err := printAnalysis(context.Background(), out, source, TopCollabsAnalyzer{}); err != nil {
		t.Fatalf("printAnalysis() error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Top collaborations\n") {
		t.Errorf("printAnalysis() output = %q", out.String())
	}
}

func TestAnalyserConfigInclude(t *testing.T) {
	config := AnalyserConfig{NumToReturn: 2, FilterThreshold: 3}
	tests := []struct {
		i, count int
		want     bool
	}{
		{0, 4, true},
		{1, 4, true},
		{2, 4, false},
		{0, 3, false},
	}
	for _, test := range tests {
		if got := config.include(test.i, test.count); got != test.want {
			t.Errorf("include(%d, %d) = %v, want %v", test.i, test.count, got, test.want)
		}
	}
	if !(AnalyserConfig{}).include(100, 0) {
		t.Errorf("zero config should include everything")
	}
}
