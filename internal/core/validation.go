package core

// validation.go converts rows that passed the rules into records.
//
// Conversion happens at two levels:
//  1. Field validation: category membership and rank resolution
//  2. Record validation: struct tags on Record checked with validator
//
// Every failure is a RejectError carrying the reason recorded for the row.

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RejectError explains why a row did not become a record.
type RejectError struct {
	Reason string // Rule or reason name
	Value  string // The offending value, if any
}

func (e *RejectError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Value)
	}
	return e.Reason
}

func reject(reason, value string) error {
	return &RejectError{Reason: reason, Value: value}
}

// rejectReason extracts the reason from err, defaulting to ReasonMalformedRow.
func rejectReason(err error) string {
	var re *RejectError
	if errors.As(err, &re) {
		return re.Reason
	}
	return ReasonMalformedRow
}

// fields are the named values extracted from a row by a layout.
type fields struct {
	institute       string
	branch          string
	category        string
	opening         string
	closing         string
	categoryClosing string
}

// extractFields pulls the layout's columns out of row.
// Branch and category fall back to the layout defaults only when the cell is
// missing or empty; rank cells are kept as read.
func extractFields(l Layout, row Row) fields {
	f := fields{
		institute:       NormalizeInstitute(row.Raw(l.Columns.Institute)),
		branch:          row.Field(l.Columns.Branch, l.DefaultBranch),
		category:        row.Field(l.Columns.Category, l.DefaultCategory),
		opening:         row.Raw(l.Columns.Opening),
		closing:         row.Raw(l.Columns.Closing),
		categoryClosing: row.Raw(l.Columns.CategoryClosing),
	}
	// Every record names a branch, so a whitespace-only branch cell also
	// takes the default. A whitespace-only category fails validation.
	if f.branch == "" {
		f.branch = l.DefaultBranch
	}
	return f
}

// RecordValidator checks record invariants.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator creates a validator for Record values.
func NewRecordValidator() *RecordValidator {
	v := validator.New()
	v.RegisterStructValidation(validateOpeningRank, Record{})
	return &RecordValidator{validate: v}
}

// Validate returns an error when r breaks a record invariant.
func (v *RecordValidator) Validate(r Record) error {
	return v.validate.Struct(r)
}

func validateOpeningRank(sl validator.StructLevel) {
	r := sl.Current().Interface().(Record)
	if r.OpeningRank.Valid && (r.OpeningRank.Int32 <= 0 || r.OpeningRank.Int32 > r.ClosingRank) {
		sl.ReportError(r.OpeningRank, "OpeningRank", "OpeningRank", "ltefield", "ClosingRank")
	}
}

// buildRecord converts a row that passed the layout rules into a record.
func buildRecord(l Layout, year int, row Row, v *RecordValidator) (Record, error) {
	f := extractFields(l, row)

	if !IsValidCategory(f.category) {
		return Record{}, reject(ReasonInvalidCategory, f.category)
	}

	closing, ok, err := resolveClosingRank(f.closing, f.categoryClosing)
	if err != nil {
		return Record{}, &RejectError{Reason: ReasonUnparseableRank, Value: err.Error()}
	}
	if !ok {
		return Record{}, reject(ReasonMissingClosingRank, "")
	}
	if closing <= 0 {
		return Record{}, reject(ReasonNonPositiveClosing, f.closing)
	}

	rec := Record{
		Year:        year,
		Institute:   f.institute,
		Branch:      f.branch,
		Category:    f.category,
		OpeningRank: resolveOpeningRank(f.opening, closing),
		ClosingRank: closing,
	}

	if err := v.Validate(rec); err != nil {
		return Record{}, reject(ReasonInvariant, err.Error())
	}
	return rec, nil
}

// convertRow runs buildRecord, turning a panic into a malformed-row rejection
// so one bad row cannot end the run.
func convertRow(l Layout, year int, row Row, v *RecordValidator) (rec Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = reject(ReasonMalformedRow, fmt.Sprint(r))
		}
	}()
	return buildRecord(l, year, row, v)
}
