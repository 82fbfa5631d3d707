package tabular

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleCSV = "user_id,bbt,notes\n" +
	"ada, 36.5 ,ok\n" +
	"ada,36.9\n" +
	"grace,36.2,fine\n"

func sampleWorkbook(t *testing.T) []byte {
	t.Helper()
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]any{
		{"user_id", "bbt"},
		{"ada", 36.5},
		{"grace", 36.2},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseCSV(t *testing.T) {
	t.Parallel()

	tb, err := Parse("history.csv", []byte(sampleCSV))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tb.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tb.Len())
	}
	if !tb.HasColumn("bbt") || tb.HasColumn("BBT") {
		t.Fatalf("column lookup should be case-sensitive")
	}

	// values trim whitespace
	if v, ok := tb.Cell(0, "bbt"); !ok || v != "36.5" {
		t.Fatalf("Cell(0, bbt) = %q %v", v, ok)
	}
	// short rows read as empty cells
	if v, ok := tb.Cell(1, "notes"); !ok || v != "" {
		t.Fatalf("Cell(1, notes) = %q %v, want empty ok", v, ok)
	}
	// unknown column and out of range rows are not ok
	if _, ok := tb.Cell(0, "nope"); ok {
		t.Fatalf("Cell on unknown column should not be ok")
	}
	if _, ok := tb.Cell(99, "bbt"); ok {
		t.Fatalf("Cell out of range should not be ok")
	}
}

func TestParseDispatchesOnSuffix(t *testing.T) {
	t.Parallel()

	// uppercase suffix still parses as text
	if _, err := Parse("HISTORY.CSV", []byte(sampleCSV)); err != nil {
		t.Fatalf("uppercase csv suffix: %v", err)
	}
	// csv bytes under a workbook suffix are not a workbook
	_, err := Parse("history.xlsx", []byte(sampleCSV))
	if KindOf(err) != FailUnsupportedFormat {
		t.Fatalf("kind = %v, want unsupported format", KindOf(err))
	}
}

func TestParseWorkbook(t *testing.T) {
	t.Parallel()

	tb, err := Parse("history.xlsx", sampleWorkbook(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tb.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tb.Len())
	}
	if v, ok := tb.Cell(0, "bbt"); !ok || v != "36.5" {
		t.Fatalf("Cell(0, bbt) = %q %v", v, ok)
	}
}

func TestParseFailures(t *testing.T) {
	t.Parallel()

	if _, err := Parse("x.csv", []byte("  \n ")); KindOf(err) != FailEmptyFile {
		t.Fatalf("blank csv kind = %v, want empty file", KindOf(err))
	}
	if _, err := Parse("x.xlsx", nil); KindOf(err) != FailEmptyFile {
		t.Fatalf("empty workbook kind = %v, want empty file", KindOf(err))
	}
	if _, err := Parse("x.csv", []byte("a,b\nada,\"36.5\n")); KindOf(err) != FailMalformedContent {
		t.Fatalf("broken csv should be malformed content")
	}
	if KindOf(errors.New("plain")) != FailNone {
		t.Fatalf("foreign errors map to FailNone")
	}
}

func TestFindRows(t *testing.T) {
	t.Parallel()

	tb, err := Parse("history.csv", []byte(sampleCSV))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := tb.FindRows("user_id", "ada"); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("FindRows(ada) = %v, want [0 1]", got)
	}
	// exact case-sensitive match
	if got := tb.FindRows("user_id", "Ada"); got != nil {
		t.Fatalf("FindRows(Ada) = %v, want nil", got)
	}
	if got := tb.FindRows("missing", "ada"); got != nil {
		t.Fatalf("FindRows on missing column = %v, want nil", got)
	}
}
