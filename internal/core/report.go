package core

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// sampleInstituteWidth is how many characters of an institute name a sample line shows.
const sampleInstituteWidth = 50

// WriteReport prints the human-readable summary of a run to w.
func WriteReport(w io.Writer, res *Result, outputPath string) error {
	var b strings.Builder

	for i, r := range res.Samples {
		fmt.Fprintf(&b, "Sample %d: %s... | %s | %s | %d\n",
			i+1, truncate(r.Institute, sampleInstituteWidth), r.Branch, r.Category, r.ClosingRank)
	}

	fmt.Fprintf(&b, "✅ Processed %d valid records\n", len(res.Accepted))
	if len(res.Rejected) > 0 {
		fmt.Fprintf(&b, "🚫 Skipped %d rows (%s)\n", res.RejectedTotal(), FormatCounts(res.Rejected))
	}
	fmt.Fprintf(&b, "🔄 Removed %d duplicates\n", len(res.Duplicates))
	fmt.Fprintf(&b, "📊 Final dataset: %d records\n", len(res.Records))
	fmt.Fprintf(&b, "✅ Cleaned CSV written to: %s\n", outputPath)

	s := Summarize(res.Records)
	b.WriteString("\n📈 Dataset Summary:\n")
	fmt.Fprintf(&b, "Total records: %d\n", s.Total)
	fmt.Fprintf(&b, "Branches: %s\n", FormatCounts(s.ByBranch))
	fmt.Fprintf(&b, "Categories: %s\n", FormatCounts(s.ByCategory))
	fmt.Fprintf(&b, "Rank range: %s\n", s.RankRange())

	_, err := io.WriteString(w, b.String())
	return err
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
