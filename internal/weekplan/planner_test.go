package weekplan

import (
	"errors"
	"testing"
)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	p, err := NewPlanner(scenarioBaseline, 1940)
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}
	return p
}

func TestNewPlanner(t *testing.T) {
	p := newTestPlanner(t)
	if _, ok := p.Selected(); ok {
		t.Error("new planner should have no selection")
	}
	if p.Week().Budget != 13580 {
		t.Errorf("Budget = %d, want 13580", p.Week().Budget)
	}
	if p.Baseline() != scenarioBaseline {
		t.Errorf("Baseline() = %+v, want %+v", p.Baseline(), scenarioBaseline)
	}
	if _, err := NewPlanner(scenarioBaseline, 1); !errors.Is(err, ErrBaselineMismatch) {
		t.Errorf("expected ErrBaselineMismatch, got %v", err)
	}
}

func TestPlanner_SetDayTotalCommits(t *testing.T) {
	p := newTestPlanner(t)
	w, err := p.SetDayTotal(0, 2200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Week() != w {
		t.Error("returned week was not committed")
	}
}

// TestPlanner_FailedEditLeavesState verifies the all-locked failure leaves the
// committed week deep-equal to what it was.
func TestPlanner_FailedEditLeavesState(t *testing.T) {
	p := newTestPlanner(t)
	for i := 1; i < DaysPerWeek; i++ {
		if _, err := p.ToggleLock(i); err != nil {
			t.Fatalf("ToggleLock(%d): %v", i, err)
		}
	}
	before := p.Week()

	w, err := p.SetDayTotal(0, 2500)
	if !errors.Is(err, ErrAllOtherDaysLocked) {
		t.Fatalf("expected ErrAllOtherDaysLocked, got %v", err)
	}
	if w != before || p.Week() != before {
		t.Error("week changed after failed edit")
	}
}

/* ─── Selection & slider ─────────────────────────────────────────────── */

func TestPlanner_SelectDay(t *testing.T) {
	p := newTestPlanner(t)
	if _, err := p.SetDayTotal(2, 1500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.SelectDay(2); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}
	day, ok := p.Selected()
	if !ok || day != 2 {
		t.Errorf("Selected() = %d, %v; want 2, true", day, ok)
	}
	if want := float64(p.Week().Days[2].TotalCalories); p.SliderValue() != want {
		t.Errorf("SliderValue() = %v, want %v", p.SliderValue(), want)
	}

	p.ClearSelection()
	if _, ok := p.Selected(); ok {
		t.Error("selection not cleared")
	}

	if err := p.SelectDay(7); !errors.Is(err, ErrDayOutOfRange) {
		t.Errorf("expected ErrDayOutOfRange, got %v", err)
	}
}

func TestPlanner_SetSelectedTotal(t *testing.T) {
	p := newTestPlanner(t)

	if _, err := p.SetSelectedTotal(2000); !errors.Is(err, ErrNoDaySelected) {
		t.Fatalf("expected ErrNoDaySelected, got %v", err)
	}

	_ = p.SelectDay(4)
	w, err := p.SetSelectedTotal(2100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Days[4].TotalCalories < 2098 || w.Days[4].TotalCalories > 2110 {
		t.Errorf("day 4 total = %d, want ~2100", w.Days[4].TotalCalories)
	}
	if p.SliderValue() != 2100 {
		t.Errorf("SliderValue() = %v, want 2100", p.SliderValue())
	}

	// Slider stays put when the edit is refused.
	for i := 0; i < DaysPerWeek; i++ {
		if i != 4 {
			_, _ = p.ToggleLock(i)
		}
	}
	if _, err := p.SetSelectedTotal(1800); !errors.Is(err, ErrAllOtherDaysLocked) {
		t.Fatalf("expected ErrAllOtherDaysLocked, got %v", err)
	}
	if p.SliderValue() != 2100 {
		t.Errorf("SliderValue() = %v after refused edit, want 2100", p.SliderValue())
	}
}

func TestPlanner_SliderBounds(t *testing.T) {
	p := newTestPlanner(t)
	lo, hi, err := p.SliderBounds(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo != 600 {
		t.Errorf("lo = %v, want 600", lo)
	}
	if hi != 1940*1.8 {
		t.Errorf("hi = %v, want %v", hi, 1940*1.8)
	}
	if _, _, err := p.SliderBounds(-1); !errors.Is(err, ErrDayOutOfRange) {
		t.Errorf("expected ErrDayOutOfRange, got %v", err)
	}
}

/* ─── Reset ──────────────────────────────────────────────────────────── */

// TestPlanner_ResetIdempotent edits, locks and selects, then resets twice and
// expects identical weeks made of plain baseline copies.
func TestPlanner_ResetIdempotent(t *testing.T) {
	p := newTestPlanner(t)
	_, _ = p.ToggleLock(3)
	_ = p.SelectDay(1)
	_, _ = p.SetSelectedTotal(2300)

	first, err := p.Reset(scenarioBaseline)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	second, err := p.Reset(scenarioBaseline)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if first != second {
		t.Errorf("resets differ:\n%+v\n%+v", first, second)
	}
	fresh, _ := NewWeek(scenarioBaseline, 0)
	if first != fresh {
		t.Errorf("reset week = %+v, want %+v", first, fresh)
	}
	if _, ok := p.Selected(); ok {
		t.Error("reset kept the selection")
	}
}

func TestPlanner_ResetNewBaseline(t *testing.T) {
	p := newTestPlanner(t)
	next := Macros{ProteinG: 180, CarbsG: 150, FatG: 70}

	w, err := p.Reset(next)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if w.Budget != next.Calories()*DaysPerWeek {
		t.Errorf("Budget = %d, want %d", w.Budget, next.Calories()*DaysPerWeek)
	}
	if p.Baseline() != next {
		t.Errorf("Baseline() = %+v, want %+v", p.Baseline(), next)
	}

	before := p.Week()
	if _, err := p.Reset(Macros{ProteinG: -5}); !errors.Is(err, ErrInvalidBaseline) {
		t.Fatalf("expected ErrInvalidBaseline, got %v", err)
	}
	if p.Week() != before {
		t.Error("invalid reset changed the week")
	}
}
