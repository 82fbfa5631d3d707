// Package tabular loads small uploaded tables into memory for per-request lookups.
// Files ending in .csv (any case) parse as comma-separated text; everything else
// parses as a spreadsheet workbook, reading the first sheet. Tables are built,
// queried, and discarded within a single request; nothing is retained
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FailKind classifies parse failures so callers can report them as structured
// results instead of propagating errors
type FailKind uint8

const (
	// FailNone means the error is not a tabular parse failure
	FailNone FailKind = iota

	// FailUnsupportedFormat means the bytes are not a readable workbook
	FailUnsupportedFormat

	// FailMalformedContent means the file was recognized but its rows are broken
	FailMalformedContent

	// FailEmptyFile means there was nothing to parse
	FailEmptyFile
)

func (k FailKind) String() string {
	switch k {
	case FailUnsupportedFormat:
		return "unsupported format"
	case FailMalformedContent:
		return "malformed content"
	case FailEmptyFile:
		return "empty file"
	default:
		return "none"
	}
}

// ParseError is the typed failure returned by Parse
type ParseError struct {
	Kind  FailKind
	cause error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return e.Kind.String()
}

// Unwrap returns the wrapped cause, if any
func (e *ParseError) Unwrap() error { return e.cause }

// KindOf extracts the failure kind from any error, FailNone for foreign errors
func KindOf(err error) FailKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return FailNone
}

func failf(kind FailKind, cause error) error { return &ParseError{Kind: kind, cause: cause} }

// Table is an immutable, header-indexed view over one parsed sheet
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

func newTable(headers []string, rows [][]string) *Table {
	idx := make(map[string]int, len(headers))
	clean := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		clean[i] = h
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return &Table{headers: clean, index: idx, rows: rows}
}

// Headers returns the column names in file order
func (t *Table) Headers() []string { return t.headers }

// Len returns the number of data rows (header excluded)
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the table has the named column (case-sensitive)
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the value at (row, column). ok is false when the column does not
// exist or row is out of range; short rows read as empty cells
func (t *Table) Cell(row int, column string) (string, bool) {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return "", false
	}
	r := t.rows[row]
	if col >= len(r) {
		return "", true
	}
	return strings.TrimSpace(r[col]), true
}

// FindRows returns the indexes of rows whose column equals value exactly
// (case-sensitive), in file order
func (t *Table) FindRows(column, value string) []int {
	if !t.HasColumn(column) {
		return nil
	}
	var out []int
	for i := range t.rows {
		if v, ok := t.Cell(i, column); ok && v == value {
			out = append(out, i)
		}
	}
	return out
}

// Parse dispatches on the filename suffix and builds a Table
func Parse(filename string, data []byte) (*Table, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return parseCSV(data)
	}
	return parseWorkbook(data)
}

// parseCSV reads comma-separated text with a header row
// uneven row lengths are tolerated; short rows read as empty cells
func parseCSV(data []byte) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, failf(FailEmptyFile, nil)
	}
	rd := csv.NewReader(bytes.NewReader(data))
	rd.FieldsPerRecord = -1

	headers, err := rd.Read()
	if err != nil {
		return nil, failf(FailMalformedContent, err)
	}

	var rows [][]string
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, failf(FailMalformedContent, err)
		}
		rows = append(rows, rec)
	}
	return newTable(headers, rows), nil
}

// parseWorkbook reads the first sheet of a spreadsheet workbook
func parseWorkbook(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, failf(FailEmptyFile, nil)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, failf(FailUnsupportedFormat, err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, failf(FailEmptyFile, nil)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, failf(FailMalformedContent, err)
	}
	if len(rows) == 0 {
		return nil, failf(FailEmptyFile, nil)
	}
	return newTable(rows[0], rows[1:]), nil
}
