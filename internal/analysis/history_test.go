package analysis

import (
	"testing"
	"time"

	"github.com/ademuri/chart-tools/internal/chart"
)

func appearances(entries ...chart.Entry) []chart.Appearance {
	return chart.Normalize(entries).Appearances
}

func TestBuildHistoryBucketsByMonth(t *testing.T) {
	history := BuildHistory(appearances(
		row("B", "X", "CZ", day(2024, time.April, 3), 40),
		row("A", "X", "CZ", day(2024, time.March, 1), 20),
		row("A", "X", "CZ", day(2024, time.March, 2), 8),
		row("B", "X", "CZ", day(2024, time.March, 9), 50),
		row("C", "X", "CZ", day(2024, time.March, 9), 51),
		row("C", "X", "CZ", day(2024, time.April, 9), 2),
	))

	if len(history) != 2 {
		t.Fatalf("got %d months, want 2", len(history))
	}

	march := history[0]
	if march.Month != (Month{2024, time.March}) || march.Top50Count != 2 {
		t.Errorf("march = %+v, want 2024-03 with 2 tracks", march)
	}
	if march.BestRank == nil || *march.BestRank != 8 {
		t.Errorf("march best rank = %v, want 8", march.BestRank)
	}

	april := history[1]
	if april.Month != (Month{2024, time.April}) || april.Top50Count != 2 {
		t.Errorf("april = %+v, want 2024-04 with 2 tracks", april)
	}
	if april.BestRank == nil || *april.BestRank != 2 {
		t.Errorf("april best rank = %v, want 2", april.BestRank)
	}
	if !april.IsQuarter() || april.IsYearStart() {
		t.Errorf("april should be a quarter start but not a year start")
	}
}

func TestBuildHistoryChronologicalAcrossYears(t *testing.T) {
	history := BuildHistory(appearances(
		row("A", "X", "CZ", day(2024, time.January, 3), 1),
		row("A", "X", "CZ", day(2023, time.December, 3), 1),
		row("A", "X", "CZ", day(2023, time.February, 3), 1),
	))

	if len(history) != 3 {
		t.Fatalf("got %d months, want 3", len(history))
	}
	for i, want := range []string{"2023-02", "2023-12", "2024-01"} {
		if got := history[i].Month.String(); got != want {
			t.Errorf("history[%d] = %s, want %s", i, got, want)
		}
	}
	if !history[2].IsYearStart() || !history[2].IsQuarter() {
		t.Errorf("January should be a year and quarter start")
	}
	if history[1].IsQuarter() {
		t.Errorf("December should not be a quarter start")
	}
}

func TestBuildHistoryPlaceholder(t *testing.T) {
	history := BuildHistory(appearances(
		row("A", "X", "CZ", day(2023, time.July, 30), 51),
		row("B", "X", "CZ", day(2023, time.October, 2), 199),
		row("A", "X", "CZ", day(2023, time.August, 1), 75),
	))

	if len(history) != 1 {
		t.Fatalf("got %d months, want 1", len(history))
	}
	entry := history[0]
	if entry.Month != (Month{2023, time.October}) || entry.Top50Count != 0 || entry.BestRank != nil {
		t.Errorf("placeholder = %+v, want 2023-10 with no tracks and no rank", entry)
	}
	if !entry.IsQuarter() {
		t.Errorf("October should be a quarter start")
	}
}

func TestBuildHistoryEmpty(t *testing.T) {
	if history := BuildHistory(nil); len(history) != 0 {
		t.Errorf("BuildHistory(nil) = %v, want empty", history)
	}
}

func TestMonthDisplay(t *testing.T) {
	m := MonthOf(time.Date(2022, time.September, 17, 13, 0, 0, 0, time.UTC))
	if m.String() != "2022-09" {
		t.Errorf("String() = %q, want 2022-09", m.String())
	}
	if m.Display() != "Sep 2022" {
		t.Errorf("Display() = %q, want Sep 2022", m.Display())
	}
}
