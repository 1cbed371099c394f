package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	_, notExist := os.Open("/definitely/not/here.csv")

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"nil error", nil, ""},
		{"missing input", fmt.Errorf("open input: %w", notExist), "FILE001"},
		{"missing input under config dir", fmt.Errorf("open input: %w", &os.PathError{Op: "open", Path: "/srv/config/output/x.csv", Err: os.ErrNotExist}), "FILE001"},
		{"input read failure under config dir", fmt.Errorf("read input: %w", &os.PathError{Op: "read", Path: "/srv/config/x.csv", Err: errors.New("input/output error")}), "FILE006"},
		{"input permission", fmt.Errorf("open input: %w", os.ErrPermission), "FILE002"},
		{"output permission", fmt.Errorf("create output: %w", os.ErrPermission), "FILE002"},
		{"encoding", errors.New(`unsupported input encoding "klingon": htmlindex: invalid encoding name`), "FILE003"},
		{"verify count", errors.New("verify output: read 2 records, wrote 3"), "FILE004"},
		{"verify missing file", fmt.Errorf("verify output: %w", notExist), "FILE004"},
		{"output directory missing", fmt.Errorf("create output: %w", notExist), "FILE005"},
		{"write", errors.New("write output out.csv: short write"), "FILE005"},
		{"layout", errors.New(`unknown layout "x" (registered: [dcece_pm25])`), "CFG001"},
		{"config", errors.New("config validation: validation failed:\n  - CUTOFF_OUTPUT_PATH is required"), "CFG002"},
		{"cancelled", fmt.Errorf("normalize cancelled at row 0: %w", context.Canceled), "RUN001"},
		{"deadline", fmt.Errorf("normalize cancelled at row 200: %w", context.DeadlineExceeded), "RUN002"},
		{"bare not-exist", notExist, "FILE001"},
		{"unknown", errors.New("something odd"), "ERR000"},
		{"unknown mentioning output", errors.New("normalizer: output config missing"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, MapError(tt.err).Code)
		})
	}
}

func TestMapError_RunErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := newTestNormalizer(t).Run(context.Background(), Files{
		Input:  filepath.Join(dir, "config", "missing.csv"),
		Output: filepath.Join(dir, "cleaned.csv"),
	})
	require.Error(t, err)
	assert.Equal(t, "FILE001", MapError(err).Code)

	err = VerifyFile(filepath.Join(dir, "never-written.csv"), 0)
	require.Error(t, err)
	assert.Equal(t, "FILE004", MapError(err).Code)
}

func TestFormatUserError(t *testing.T) {
	assert.Empty(t, FormatUserError(nil))

	got := FormatUserError(fmt.Errorf("open input: %w", os.ErrNotExist))
	assert.Equal(t, "Input file not found (Code: FILE001). Check that CUTOFF_INPUT_PATH points at the exported cutoff CSV", got)

	got = FormatUserError(errors.New("something odd"))
	assert.Contains(t, got, "something odd")
	assert.Contains(t, got, "ERR000")
}

func TestFormatUserError_ConfigDetail(t *testing.T) {
	err := errors.New("config validation: validation failed:\n  - CUTOFF_YEAR (1850) must be 1900-2100\n  - LOG_LEVEL (\"loud\") must be one of: debug, info, warn, error")

	got := FormatUserError(err)

	assert.Contains(t, got, "The configuration is invalid (Code: CFG002)")
	assert.Contains(t, got, "CUTOFF_YEAR (1850) must be 1900-2100")
	assert.Contains(t, got, "LOG_LEVEL")

	got = FormatUserError(errors.New(`unknown layout "neet_ug" (registered: [dcece_pm25])`))
	assert.Contains(t, got, "CFG001")
	assert.Contains(t, got, "dcece_pm25")
}

func TestIsUserFacing(t *testing.T) {
	assert.False(t, IsUserFacing(nil))
	assert.True(t, IsUserFacing(context.Canceled))
	assert.False(t, IsUserFacing(errors.New("something odd")))
}
