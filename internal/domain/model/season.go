package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// gameDateLayouts are tried in order after RFC3339.
var gameDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseGameDate parses the date formats found in box-score exports.
func ParseGameDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SeasonYear maps a game date to the year its season started.
// Games from July onward belong to the season starting that year.
func SeasonYear(t time.Time) int {
	if t.Month() >= time.July {
		return t.Year()
	}
	return t.Year() - 1
}

// SeasonLabel formats a season start year as "2022-23".
func SeasonLabel(start int) string {
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// SeasonSpan formats a set of season years as "2022-23–2024-25".
// A single season is its label; no seasons is the empty string.
func SeasonSpan(years []int) string {
	if len(years) == 0 {
		return ""
	}
	sorted := append([]int(nil), years...)
	sort.Ints(sorted)
	first, last := sorted[0], sorted[len(sorted)-1]
	if first == last {
		return SeasonLabel(first)
	}
	return SeasonLabel(first) + "–" + SeasonLabel(last)
}

// Window is a contiguous range of season years.
type Window struct {
	Start int
	Span  int
}

// Contains reports whether season falls inside the window.
func (w Window) Contains(season int) bool {
	return season >= w.Start && season < w.Start+w.Span
}

// End is the last season year of the window.
func (w Window) End() int {
	if w.Span <= 0 {
		return w.Start
	}
	return w.Start + w.Span - 1
}

// Label formats the window as "2022-23 to 2024-25".
func (w Window) Label() string {
	if w.Span <= 0 {
		return SeasonLabel(w.Start)
	}
	return SeasonLabel(w.Start) + " to " + SeasonLabel(w.End())
}
