package core

// rules.go holds the row filters that separate data rows from the title block,
// repeated page headers and pagination footers of the export.
//
// Each filter is a named Rule. Rules run in order and the first one that
// rejects a row decides the reason recorded for it.

import (
	"strings"
	"unicode/utf8"
)

// Rule names, in evaluation order.
const (
	RuleMinCells         = "min-cells"
	RuleHeaderBlock      = "header-block"
	RuleBlankInstitute   = "blank-institute"
	RuleInstituteHeader  = "institute-header"
	RuleCombinedHeader   = "combined-header"
	RulePageMarker       = "page-marker"
	RuleShortInstitute   = "short-institute"
	RuleNormalizedHeader = "normalized-header"
	RuleLeadingComma     = "leading-comma"
)

// Reasons recorded after the rules pass, during field validation.
const (
	ReasonInvalidCategory    = "invalid-category"
	ReasonMissingClosingRank = "missing-closing-rank"
	ReasonUnparseableRank    = "unparseable-rank"
	ReasonNonPositiveClosing = "non-positive-closing-rank"
	ReasonInvariant          = "invariant"
	ReasonMalformedRow       = "malformed-row"
)

// MinInstituteLength is the shortest institute name accepted, in characters.
const MinInstituteLength = 10

// Rule is a named row filter.
type Rule struct {
	Name   string
	Reject func(row Row) bool
}

// Rules returns the ordered filters for layout l.
func Rules(l Layout) []Rule {
	first := func(r Row) string { return r.Raw(l.Columns.Institute) }
	institute := func(r Row) string { return NormalizeInstitute(first(r)) }

	return []Rule{
		{Name: RuleMinCells, Reject: func(r Row) bool {
			return len(r.Cells) < l.MinCells
		}},
		{Name: RuleHeaderBlock, Reject: func(r Row) bool {
			return r.Pos < l.HeaderRows
		}},
		{Name: RuleBlankInstitute, Reject: func(r Row) bool {
			return first(r) == ""
		}},
		{Name: RuleInstituteHeader, Reject: func(r Row) bool {
			return strings.Contains(first(r), "INSTITUTE")
		}},
		{Name: RuleCombinedHeader, Reject: func(r Row) bool {
			return strings.Contains(first(r), "COMBINED")
		}},
		{Name: RulePageMarker, Reject: func(r Row) bool {
			for _, c := range r.Cells {
				if strings.Contains(c, "Page No") {
					return true
				}
			}
			return false
		}},
		{Name: RuleShortInstitute, Reject: func(r Row) bool {
			return utf8.RuneCountInString(institute(r)) < MinInstituteLength
		}},
		{Name: RuleNormalizedHeader, Reject: func(r Row) bool {
			return strings.Contains(institute(r), "INSTITUTE")
		}},
		{Name: RuleLeadingComma, Reject: func(r Row) bool {
			return strings.HasPrefix(institute(r), ",")
		}},
	}
}

// Screen returns the name of the first rule that rejects row,
// or "" when the row passes every rule.
func Screen(rules []Rule, row Row) string {
	for _, rule := range rules {
		if rule.Reject(row) {
			return rule.Name
		}
	}
	return ""
}

// ReasonOrder lists every rejection reason a run can record for layout
// rules, in the order they are evaluated.
func ReasonOrder(rules []Rule) []string {
	order := make([]string, 0, len(rules)+6)
	order = append(order, ReasonMalformedRow)
	for _, r := range rules {
		order = append(order, r.Name)
	}
	return append(order,
		ReasonInvalidCategory,
		ReasonMissingClosingRank,
		ReasonUnparseableRank,
		ReasonNonPositiveClosing,
		ReasonInvariant,
	)
}
