package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JonMunkholm/cutoffs/internal/logging"
)

// ContextCheckInterval is how often (in rows) to check for context cancellation.
var ContextCheckInterval = 100

// DefaultSampleCount is the number of accepted records kept as samples.
const DefaultSampleCount = 5

// Options configures a Normalizer.
type Options struct {
	Layout      Layout
	Year        int // stamped on every record
	SampleCount int // accepted records kept in Result.Samples
}

// Files names the input and output of a Run.
type Files struct {
	Input    string
	Output   string
	Encoding string // input encoding, see NewDecodingReader
}

// Normalizer turns a raw cutoff export into clean, deduplicated records.
type Normalizer struct {
	layout    Layout
	year      int
	samples   int
	rules     []Rule
	validator *RecordValidator
}

// NewNormalizer creates a Normalizer for the given layout and year.
func NewNormalizer(opts Options) (*Normalizer, error) {
	if opts.Layout.Key == "" {
		return nil, errors.New("normalizer: layout is required")
	}
	if opts.Year <= 0 {
		return nil, fmt.Errorf("normalizer: invalid year %d", opts.Year)
	}
	if opts.SampleCount < 0 {
		opts.SampleCount = 0
	}

	return &Normalizer{
		layout:    opts.Layout,
		year:      opts.Year,
		samples:   opts.SampleCount,
		rules:     Rules(opts.Layout),
		validator: NewRecordValidator(),
	}, nil
}

// Normalize reads CSV rows from r, keeps those that pass every rule and
// validation, and deduplicates them.
//
// Problems with a single row never fail the call; the row is counted under
// its rejection reason and skipped. Only read errors and cancellation are
// returned.
func (n *Normalizer) Normalize(ctx context.Context, r io.Reader) (*Result, error) {
	logger := logging.WithFields(ctx, "layout", n.layout.Key)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	res := &Result{}
	tally := make(map[string]int)

	rows := newRowCounter()

	for read := 0; ; read++ {
		if read%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("normalize cancelled at row %d: %w", rows.next, err)
			}
		}

		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read input: %w", err)
			}
			pos, blank := rows.record(pe.StartLine, pe.Line)
			res.RowsRead += blank + 1
			tally[RuleMinCells] += blank
			tally[ReasonMalformedRow]++
			logger.Debug("row skipped", "row", pos, "reason", ReasonMalformedRow, "error", err)
			continue
		}

		pos, blank := rows.record(recordLines(cr, cells))
		res.RowsRead += blank + 1
		// A blank line is a row without cells.
		tally[RuleMinCells] += blank

		row := Row{Pos: pos, Cells: cells}
		if rule := Screen(n.rules, row); rule != "" {
			tally[rule]++
			continue
		}

		rec, err := convertRow(n.layout, n.year, row, n.validator)
		if err != nil {
			reason := rejectReason(err)
			tally[reason]++
			logger.Debug("row rejected", "row", pos, "reason", reason, "error", err)
			continue
		}

		res.Accepted = append(res.Accepted, rec)
		if len(res.Samples) < n.samples {
			res.Samples = append(res.Samples, rec)
		}
	}

	res.Records, res.Duplicates = Deduplicate(res.Accepted)
	for _, d := range res.Duplicates {
		logger.Debug("duplicate dropped",
			"institute", d.Institute,
			"branch", d.Branch,
			"category", d.Category,
			"closing_rank", d.ClosingRank,
		)
	}
	res.Rejected = orderTally(ReasonOrder(n.rules), tally)

	logger.Info("input normalized",
		"rows", res.RowsRead,
		"accepted", len(res.Accepted),
		"duplicates", len(res.Duplicates),
		"rejected", res.RejectedTotal(),
	)
	return res, nil
}

// Run cleans files.Input, writes the records to files.Output and verifies
// the written file can be read back.
func (n *Normalizer) Run(ctx context.Context, files Files) (*Result, error) {
	logger := logging.WithFields(ctx, "input", files.Input, "output", files.Output)

	f, err := os.Open(files.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	counting := NewCountingReader(f)
	decoded, err := NewDecodingReader(counting, files.Encoding)
	if err != nil {
		return nil, err
	}

	res, err := n.Normalize(ctx, decoded)
	if err != nil {
		return nil, err
	}
	res.BytesRead = counting.BytesRead

	if err := WriteFile(files.Output, res.Records); err != nil {
		return nil, err
	}
	if err := VerifyFile(files.Output, len(res.Records)); err != nil {
		return nil, err
	}

	logger.Info("cleaned csv written",
		"records", len(res.Records),
		"bytes_read", res.BytesRead,
	)
	return res, nil
}

// rowCounter numbers input rows by physical position. encoding/csv skips
// blank lines; each one still occupies a row position here.
type rowCounter struct {
	next int // position of the next row
	line int // line the next record starts on when no blank line precedes it
}

func newRowCounter() *rowCounter {
	return &rowCounter{line: 1}
}

// record registers a record spanning startLine..endLine and returns its
// position and the number of blank lines skipped before it.
func (c *rowCounter) record(startLine, endLine int) (pos, blank int) {
	if startLine > c.line {
		blank = startLine - c.line
	}
	c.next += blank
	pos = c.next
	c.next++
	c.line = endLine + 1
	return pos, blank
}

// recordLines returns the first and last input line of the record just read.
// A quoted cell may span several lines.
func recordLines(cr *csv.Reader, cells []string) (start, end int) {
	start, _ = cr.FieldPos(0)
	last := len(cells) - 1
	end, _ = cr.FieldPos(last)
	return start, end + strings.Count(cells[last], "\n")
}

// orderTally converts tally into counts following order, omitting zeros.
func orderTally(order []string, tally map[string]int) []Count {
	counts := make([]Count, 0, len(tally))
	for _, name := range order {
		if n := tally[name]; n > 0 {
			counts = append(counts, Count{Value: name, N: n})
		}
	}
	return counts
}
