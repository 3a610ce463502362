package weekplan

import "errors"

// sliderMaxFactor caps a day's total at this multiple of the baseline daily total.
const sliderMaxFactor = 1.8

// ErrNoDaySelected is returned by SetSelectedTotal when no day is selected.
var ErrNoDaySelected = errors.New("no day selected")

// Planner owns one week being edited: the committed Week, the baseline it was
// built from, and the selection/slider state a front end drives edits with.
//
// A Planner is not safe for concurrent use. Each method either commits a new
// week that satisfies the budget invariant or returns an error and leaves the
// committed week as it was.
type Planner struct {
	baseline Macros
	week     Week
	selected int // -1 when nothing is selected
	slider   float64
}

// NewPlanner builds a planner with every day set to baseline.
func NewPlanner(baseline Macros, dailyTotal int) (*Planner, error) {
	w, err := NewWeek(baseline, dailyTotal)
	if err != nil {
		return nil, err
	}
	return &Planner{
		baseline: baseline,
		week:     w,
		selected: -1,
		slider:   float64(w.Days[0].TotalCalories),
	}, nil
}

// Week returns the committed week.
func (p *Planner) Week() Week { return p.week }

// Baseline returns the macros the week was last seeded or reset from.
func (p *Planner) Baseline() Macros { return p.baseline }

// Selected returns the selected day, if any.
func (p *Planner) Selected() (int, bool) {
	return p.selected, p.selected >= 0
}

// SliderValue returns the pending total for the selected day.
func (p *Planner) SliderValue() float64 { return p.slider }

// SetDayTotal redistributes the week around a new total for day.
func (p *Planner) SetDayTotal(day int, total float64) (Week, error) {
	next, err := p.week.SetDayTotal(day, total)
	if err != nil {
		return p.week, err
	}
	p.week = next
	return next, nil
}

// SetSelectedTotal applies a slider move to the selected day.
func (p *Planner) SetSelectedTotal(total float64) (Week, error) {
	day, ok := p.Selected()
	if !ok {
		return p.week, ErrNoDaySelected
	}
	w, err := p.SetDayTotal(day, total)
	if err != nil {
		return w, err
	}
	p.slider = total
	return w, nil
}

// ToggleLock flips one day's lock.
func (p *Planner) ToggleLock(day int) (Week, error) {
	next, err := p.week.ToggleLock(day)
	if err != nil {
		return p.week, err
	}
	p.week = next
	return next, nil
}

// SelectDay makes day the driver for slider edits and loads its total into
// the slider.
func (p *Planner) SelectDay(day int) error {
	if err := checkDay(day); err != nil {
		return err
	}
	p.selected = day
	p.slider = float64(p.week.Days[day].TotalCalories)
	return nil
}

// ClearSelection drops the selected day.
func (p *Planner) ClearSelection() {
	p.selected = -1
}

// Reset replaces the week with seven fresh copies of baseline, clearing all
// locks and the selection. The baseline becomes the new reset target and the
// budget is re-derived from it.
func (p *Planner) Reset(baseline Macros) (Week, error) {
	w, err := NewWeek(baseline, 0)
	if err != nil {
		return p.week, err
	}
	p.baseline = baseline
	p.week = w
	p.selected = -1
	p.slider = float64(baseline.Calories())
	return w, nil
}

// SliderBounds is the range a day's total may be moved within: no lower than
// its protein calories, no higher than 1.8x the baseline daily total.
func (p *Planner) SliderBounds(day int) (lo, hi float64, err error) {
	if err = checkDay(day); err != nil {
		return 0, 0, err
	}
	lo = float64(p.week.Days[day].ProteinG * ProteinCalsPerGram)
	hi = float64(p.baseline.Calories()) * sliderMaxFactor
	return lo, hi, nil
}
