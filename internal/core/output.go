package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// OutputHeader is the header row of a cleaned cutoff CSV.
var OutputHeader = []string{"year", "institute", "branch", "category", "opening_rank", "closing_rank"}

// WriteRecords writes the header and one row per record to w.
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OutputHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(r.CSVRow()); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates path (and its directory) and writes records to it.
func WriteFile(path string, records []Record) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := WriteRecords(f, records); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

// ReadRecords parses a cleaned cutoff CSV produced by WriteRecords.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(OutputHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read cleaned csv: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read cleaned csv header: %w", err)
	}
	for i, h := range OutputHeader {
		if header[i] != h {
			return nil, fmt.Errorf("read cleaned csv: column %d is %q, want %q", i+1, header[i], h)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read cleaned csv line %d: %w", line, err)
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("read cleaned csv line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(row []string) (Record, error) {
	year, err := strconv.Atoi(row[0])
	if err != nil {
		return Record{}, fmt.Errorf("invalid year %q: %w", row[0], err)
	}
	closing, err := strconv.ParseInt(row[5], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid closing_rank %q: %w", row[5], err)
	}

	var opening pgtype.Int4
	if row[4] != "" {
		n, err := strconv.ParseInt(row[4], 10, 32)
		if err != nil {
			return Record{}, fmt.Errorf("invalid opening_rank %q: %w", row[4], err)
		}
		opening = pgtype.Int4{Int32: int32(n), Valid: true}
	}

	return Record{
		Year:        year,
		Institute:   row[1],
		Branch:      row[2],
		Category:    row[3],
		OpeningRank: opening,
		ClosingRank: int32(closing),
	}, nil
}

// VerifyFile re-reads a cleaned CSV and checks it holds want records.
func VerifyFile(path string, want int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verify output: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return fmt.Errorf("verify output: %w", err)
	}
	if len(records) != want {
		return fmt.Errorf("verify output: read %d records, wrote %d", len(records), want)
	}
	return nil
}
