package core

import (
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ValidCategories lists the admission reservation categories a record may carry.
var ValidCategories = []string{"UR", "SC", "ST", "OBC", "EWS", "EBC", "RCG", "DQ", "BC"}

// IsValidCategory reports whether code is one of ValidCategories.
// Matching is exact; codes are expected to be trimmed upper-case.
func IsValidCategory(code string) bool {
	for _, c := range ValidCategories {
		if c == code {
			return true
		}
	}
	return false
}

// Record is one cleaned cutoff entry for an institute/branch/category.
// Records are values; nothing mutates them after creation.
type Record struct {
	Year        int         `validate:"gt=0"`
	Institute   string      `validate:"min=10"`
	Branch      string      `validate:"required"`
	Category    string      `validate:"oneof=UR SC ST OBC EWS EBC RCG DQ BC"`
	OpeningRank pgtype.Int4 // Valid=false when the export has no usable opening rank
	ClosingRank int32       `validate:"gt=0"`
}

// Key identifies a record for deduplication.
type Key struct {
	Institute string
	Branch    string
	Category  string
}

// Key returns the deduplication key of r.
func (r Record) Key() Key {
	return Key{Institute: r.Institute, Branch: r.Branch, Category: r.Category}
}

// CSVRow renders r in OutputHeader column order.
func (r Record) CSVRow() []string {
	opening := ""
	if r.OpeningRank.Valid {
		opening = strconv.FormatInt(int64(r.OpeningRank.Int32), 10)
	}
	return []string{
		strconv.Itoa(r.Year),
		r.Institute,
		r.Branch,
		r.Category,
		opening,
		strconv.FormatInt(int64(r.ClosingRank), 10),
	}
}

// Row is one raw CSV record together with its position in the input.
// Pos is the zero-based row number; blank lines count as rows.
type Row struct {
	Pos   int
	Cells []string
}

// Raw returns cell i exactly as read, or "" when the row is too short.
func (r Row) Raw(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// Field returns cell i trimmed, or def when the cell is missing or empty as
// read. A cell holding only whitespace is not empty and yields "".
func (r Row) Field(i int, def string) string {
	v := r.Raw(i)
	if v == "" {
		return def
	}
	return trimCell(v)
}

// Columns holds the zero-based positions of the fields a layout extracts.
type Columns struct {
	Institute       int
	Branch          int
	Category        int
	Opening         int
	Closing         int // closing rank in the general (UR) columns
	CategoryClosing int // closing rank in the category-specific columns
}

// Layout describes the shape of one kind of cutoff export.
type Layout struct {
	Key             string // Unique identifier: "dcece_pm25"
	Label           string // Display name
	HeaderRows      int    // Leading rows that are always discarded
	MinCells        int    // Rows with fewer cells are discarded
	Columns         Columns
	DefaultBranch   string // Used when the branch cell is blank
	DefaultCategory string // Used when the category cell is blank
}

// Count is a value with the number of records carrying it.
type Count struct {
	Value string
	N     int
}

// Result is the outcome of normalizing one input.
type Result struct {
	RowsRead   int      // Input rows, blank lines included
	Accepted   []Record // Records that passed every rule, in input order
	Records    []Record // Accepted with duplicate keys removed
	Duplicates []Record // Accepted records dropped by deduplication
	Rejected   []Count  // Rejections per rule/reason, in evaluation order
	Samples    []Record // The first few accepted records
	BytesRead  int64    // Bytes consumed from the input file (Run only)
}

// RejectedTotal returns the number of rows excluded by rules and validation.
func (r *Result) RejectedTotal() int {
	total := 0
	for _, c := range r.Rejected {
		total += c.N
	}
	return total
}
