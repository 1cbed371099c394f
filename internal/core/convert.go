package core

// convert.go turns raw export cells into record values.
//
// The export is produced from a PDF, so cells carry artifacts: stray quotes,
// line breaks inside institute names, padding. Rank cells are only trusted
// when they are a plain run of ASCII digits.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// errNoRank is returned by ParseRank for values that are not digit strings.
var errNoRank = errors.New("not a digit string")

// trimCell removes surrounding whitespace from a cell.
func trimCell(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeInstitute cleans an institute name cell:
// trims whitespace, strips double quotes and collapses line breaks to spaces.
func NormalizeInstitute(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// IsDigits reports whether s is a non-empty string of ASCII decimal digits.
// Signs, spaces and separators are rejected.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseRank parses a digit-string rank cell.
// Values that do not fit an int32 are reported as errors.
func ParseRank(s string) (int32, error) {
	if !IsDigits(s) {
		return 0, errNoRank
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse rank %q: %w", s, err)
	}
	return int32(n), nil
}

// ToPgInt4 converts an int to pgtype.Int4.
// Returns invalid if the value is zero.
func ToPgInt4(i int32) pgtype.Int4 {
	if i == 0 {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: i, Valid: true}
}

// resolveClosingRank picks the general closing rank when it is a digit string,
// otherwise the category-specific one. ok is false when neither qualifies.
func resolveClosingRank(general, category string) (rank int32, ok bool, err error) {
	var src string
	switch {
	case IsDigits(general):
		src = general
	case IsDigits(category):
		src = category
	default:
		return 0, false, nil
	}
	rank, err = ParseRank(src)
	if err != nil {
		return 0, true, err
	}
	return rank, true, nil
}

// resolveOpeningRank returns the opening rank, or an invalid value when the
// cell is not a digit string, is zero, or exceeds the closing rank.
func resolveOpeningRank(cell string, closing int32) pgtype.Int4 {
	if !IsDigits(cell) {
		return pgtype.Int4{}
	}
	n, err := ParseRank(cell)
	if err != nil || n > closing {
		// An overflowing value is larger than any closing rank.
		return pgtype.Int4{}
	}
	return ToPgInt4(n)
}
