package core

import (
	"fmt"
	"strings"
)

// Summary holds aggregate statistics over a set of records.
type Summary struct {
	Total      int
	ByBranch   []Count // first-seen order
	ByCategory []Count // first-seen order
	MinClosing int32
	MaxClosing int32
	HasRange   bool // false when there are no records
}

// Summarize computes statistics over records. An empty slice yields a
// Summary with HasRange=false rather than an undefined range.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	branches := newCounter()
	categories := newCounter()

	for i, r := range records {
		branches.add(r.Branch)
		categories.add(r.Category)

		if i == 0 || r.ClosingRank < s.MinClosing {
			s.MinClosing = r.ClosingRank
		}
		if i == 0 || r.ClosingRank > s.MaxClosing {
			s.MaxClosing = r.ClosingRank
		}
	}

	s.HasRange = len(records) > 0
	s.ByBranch = branches.counts
	s.ByCategory = categories.counts
	return s
}

// RankRange renders the closing-rank range as "min - max", or "N/A".
func (s Summary) RankRange() string {
	if !s.HasRange {
		return "N/A"
	}
	return fmt.Sprintf("%d - %d", s.MinClosing, s.MaxClosing)
}

// FormatCounts renders counts as "A: 1, B: 2", or "none" when empty.
func FormatCounts(counts []Count) string {
	if len(counts) == 0 {
		return "none"
	}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s: %d", c.Value, c.N)
	}
	return strings.Join(parts, ", ")
}

// counter tallies values while remembering first-seen order.
type counter struct {
	index  map[string]int
	counts []Count
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(v string) {
	if i, ok := c.index[v]; ok {
		c.counts[i].N++
		return
	}
	c.index[v] = len(c.counts)
	c.counts = append(c.counts, Count{Value: v, N: 1})
}
