package analysis

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/ademuri/chart-tools/internal/chart"
)

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Compare(o Month) int {
	if m.Year != o.Year {
		return m.Year - o.Year
	}
	return int(m.Month) - int(o.Month)
}

// String formats the month as yyyy-mm.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Display formats the month for axis labels, e.g. "Jan 2024".
func (m Month) Display() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// MonthlyEntry records top-tier chart presence during one month.
// BestRank is nil for the placeholder entry of an artist that never
// qualified.
type MonthlyEntry struct {
	Month      Month
	Top50Count int
	BestRank   *int
}

func (e MonthlyEntry) IsYearStart() bool {
	return e.Month.Month == time.January
}

func (e MonthlyEntry) IsQuarter() bool {
	switch e.Month.Month {
	case time.January, time.April, time.July, time.October:
		return true
	}
	return false
}

type monthlyEntryDoc struct {
	Date            string `json:"date" yaml:"date"`
	DisplayDate     string `json:"displayDate" yaml:"displayDate"`
	Top50Count      int    `json:"top50Count" yaml:"top50Count"`
	BestRankInMonth *int   `json:"bestRankInMonth" yaml:"bestRankInMonth"`
	IsYearStart     bool   `json:"isYearStart" yaml:"isYearStart"`
	IsQuarter       bool   `json:"isQuarter" yaml:"isQuarter"`
}

func (e MonthlyEntry) doc() monthlyEntryDoc {
	return monthlyEntryDoc{
		Date:            e.Month.String(),
		DisplayDate:     e.Month.Display(),
		Top50Count:      e.Top50Count,
		BestRankInMonth: e.BestRank,
		IsYearStart:     e.IsYearStart(),
		IsQuarter:       e.IsQuarter(),
	}
}

func (e MonthlyEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc())
}

func (e MonthlyEntry) MarshalYAML() (interface{}, error) {
	return e.doc(), nil
}

type monthBucket struct {
	tracks   map[string]bool
	bestRank int
}

// BuildHistory buckets qualifying appearances by calendar month. When no
// appearance qualifies, a single empty entry is anchored at the month of
// the latest appearance so every history has at least one point.
func BuildHistory(appearances []chart.Appearance) []MonthlyEntry {
	buckets := make(map[Month]*monthBucket)
	var latest time.Time
	for _, a := range appearances {
		if a.SnapshotDate.After(latest) {
			latest = a.SnapshotDate
		}
		if !a.Qualifies() {
			continue
		}
		month := MonthOf(a.SnapshotDate)
		bucket, ok := buckets[month]
		if !ok {
			bucket = &monthBucket{tracks: make(map[string]bool), bestRank: a.Rank}
			buckets[month] = bucket
		}
		bucket.tracks[a.TrackID] = true
		bucket.bestRank = min(bucket.bestRank, a.Rank)
	}

	if len(buckets) == 0 {
		if len(appearances) == 0 {
			return nil
		}
		return []MonthlyEntry{{Month: MonthOf(latest)}}
	}

	history := make([]MonthlyEntry, 0, len(buckets))
	for month, bucket := range buckets {
		best := bucket.bestRank
		history = append(history, MonthlyEntry{
			Month:      month,
			Top50Count: len(bucket.tracks),
			BestRank:   &best,
		})
	}
	slices.SortFunc(history, func(a, b MonthlyEntry) int {
		return a.Month.Compare(b.Month)
	})
	return history
}
