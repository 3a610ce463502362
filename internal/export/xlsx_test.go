package export

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"

	"lg/calorie-banking-go-api/internal/weekplan"
)

func testWeek(t *testing.T) (weekplan.Week, weekplan.Macros) {
	t.Helper()
	base := weekplan.Macros{ProteinG: 150, CarbsG: 200, FatG: 60}
	w, err := weekplan.NewWeek(base, 0)
	if err != nil {
		t.Fatal(err)
	}
	if w, err = w.ToggleLock(6); err != nil {
		t.Fatal(err)
	}
	if w, err = w.SetDayTotal(0, 2200); err != nil {
		t.Fatal(err)
	}
	return w, base
}

// roundTrip writes the workbook to bytes and opens it again, the way a
// client receiving the download would.
func roundTrip(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { out.Close() })
	return out
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s, %s): %v", sheet, ref, err)
	}
	return v
}

func TestWeekWorkbook_Sheets(t *testing.T) {
	w, base := testWeek(t)
	f, err := WeekWorkbook(w, base)
	if err != nil {
		t.Fatalf("WeekWorkbook: %v", err)
	}
	got := roundTrip(t, f).GetSheetList()
	if len(got) != 2 || got[0] != SheetWeek || got[1] != SheetMessage {
		t.Errorf("sheets = %v, want [%s %s]", got, SheetWeek, SheetMessage)
	}
}

func TestWeekWorkbook_Days(t *testing.T) {
	w, base := testWeek(t)
	f, err := WeekWorkbook(w, base)
	if err != nil {
		t.Fatalf("WeekWorkbook: %v", err)
	}
	f = roundTrip(t, f)

	if got := cell(t, f, SheetWeek, "B3"); got != "Protein (g)" {
		t.Errorf("header B3 = %q", got)
	}
	for i, d := range w.Days {
		row := firstDayRow + i
		checks := map[string]string{
			"A": d.Label,
			"B": fmt.Sprint(d.ProteinG),
			"C": fmt.Sprint(d.CarbsG),
			"D": fmt.Sprint(d.FatG),
			"F": fmt.Sprint(d.CarbsG * 4),
			"H": fmt.Sprint(d.TotalCalories),
		}
		for col, want := range checks {
			if got := cell(t, f, SheetWeek, fmt.Sprintf("%s%d", col, row)); got != want {
				t.Errorf("%s%d = %q, want %q", col, row, got, want)
			}
		}
	}
	if got := cell(t, f, SheetWeek, fmt.Sprintf("I%d", firstDayRow+6)); got != "yes" {
		t.Errorf("Sunday locked = %q, want yes", got)
	}
	if got := cell(t, f, SheetWeek, fmt.Sprintf("I%d", firstDayRow)); got != "" {
		t.Errorf("Monday locked = %q, want empty", got)
	}
}

func TestWeekWorkbook_Totals(t *testing.T) {
	w, base := testWeek(t)
	f, err := WeekWorkbook(w, base)
	if err != nil {
		t.Fatalf("WeekWorkbook: %v", err)
	}
	f = roundTrip(t, f)

	if got, want := cell(t, f, SheetWeek, fmt.Sprintf("H%d", totalRow)), fmt.Sprint(w.Total()); got != want {
		t.Errorf("weekly total = %q, want %q", got, want)
	}
	if got := cell(t, f, SheetWeek, fmt.Sprintf("H%d", budgetRow)); got != "13580" {
		t.Errorf("budget = %q, want 13580", got)
	}
	if got := cell(t, f, SheetWeek, fmt.Sprintf("B%d", totalRow)); got != "1050" {
		t.Errorf("weekly protein = %q, want 1050", got)
	}
	if got := cell(t, f, SheetWeek, fmt.Sprintf("H%d", baselineRow)); got != "1940" {
		t.Errorf("baseline total = %q, want 1940", got)
	}
}

func TestWeekWorkbook_Message(t *testing.T) {
	w, base := testWeek(t)
	f, err := WeekWorkbook(w, base)
	if err != nil {
		t.Fatalf("WeekWorkbook: %v", err)
	}
	f = roundTrip(t, f)

	if got := cell(t, f, SheetMessage, "A1"); got != "Hey coach! Here's how I'm planning my weekly macros:" {
		t.Errorf("A1 = %q", got)
	}
	want := fmt.Sprintf("M: %d cals / %dP / %dF / %dC", w.Days[0].TotalCalories, w.Days[0].ProteinG, w.Days[0].FatG, w.Days[0].CarbsG)
	if got := cell(t, f, SheetMessage, "A3"); got != want {
		t.Errorf("A3 = %q, want %q", got, want)
	}
}

// TestWriteSheets_MissingSheet checks that cell write failures are reported
// rather than dropped: a bare workbook has neither the Week nor the Message
// sheet.
func TestWriteSheets_MissingSheet(t *testing.T) {
	w, base := testWeek(t)

	f := excelize.NewFile()
	defer f.Close()
	if err := writeWeekSheet(f, w, base); err == nil {
		t.Error("writeWeekSheet: expected an error for a missing sheet")
	}
	if err := writeMessageSheet(f, weekplan.ShareText(w)); err == nil {
		t.Error("writeMessageSheet: expected an error for a missing sheet")
	}
}
