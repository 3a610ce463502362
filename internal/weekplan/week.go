package weekplan

import (
	"errors"
	"fmt"
	"math"
)

// DaysPerWeek is the fixed length of a week plan.
const DaysPerWeek = 7

// DayLabels are the display labels for Monday through Sunday.
var DayLabels = [DaysPerWeek]string{"M", "T", "W", "TH", "F", "S", "SN"}

var (
	// ErrAllOtherDaysLocked means a day's total cannot change because no other
	// day is free to absorb the difference. The week is left untouched.
	ErrAllOtherDaysLocked = errors.New("cannot adjust calories: all other days are locked")
	ErrDayOutOfRange      = errors.New("day index out of range")
	ErrInvalidTotal       = errors.New("calorie total must be finite and within range")
	ErrBaselineMismatch   = errors.New("daily total does not match baseline macros")
)

// Week is seven days plus the calorie budget they must add up to. It is a
// value: every operation returns a new Week and leaves the receiver as it was,
// so a failed edit can never leave a half-updated week behind.
type Week struct {
	Days   [DaysPerWeek]DayPlan
	Budget int
}

// NewWeek seeds all seven days with the baseline. dailyTotal must equal the
// baseline's calories; pass 0 to derive it.
func NewWeek(baseline Macros, dailyTotal int) (Week, error) {
	if err := baseline.Validate(); err != nil {
		return Week{}, err
	}
	if dailyTotal == 0 {
		dailyTotal = baseline.Calories()
	}
	if dailyTotal != baseline.Calories() {
		return Week{}, fmt.Errorf("%w: %d != %d", ErrBaselineMismatch, dailyTotal, baseline.Calories())
	}

	var w Week
	for i := range w.Days {
		w.Days[i] = DayPlan{
			Label:         DayLabels[i],
			ProteinG:      baseline.ProteinG,
			CarbsG:        baseline.CarbsG,
			FatG:          baseline.FatG,
			TotalCalories: dailyTotal,
		}
	}
	w.Budget = dailyTotal * DaysPerWeek
	return w, nil
}

// Total returns the current sum of all day totals.
func (w Week) Total() int {
	total := 0
	for _, d := range w.Days {
		total += d.TotalCalories
	}
	return total
}

// SetDayTotal moves day to newTotal calories and spreads the opposite change
// evenly over every other unlocked day, then folds the rounding drift back
// into those same days so the week still sums to Budget. Locked days are never
// touched.
func (w Week) SetDayTotal(day int, newTotal float64) (Week, error) {
	if err := checkDay(day); err != nil {
		return w, err
	}
	if math.IsNaN(newTotal) || math.Abs(newTotal) > MaxDayCalories {
		return w, ErrInvalidTotal
	}

	others := w.unlockedExcept(day)
	if len(others) == 0 {
		return w, ErrAllOtherDaysLocked
	}

	delta := newTotal - float64(w.Days[day].TotalCalories)
	perDayDelta := -delta / float64(len(others))

	next := w
	next.Days[day] = RecomputeDay(w.Days[day], newTotal)
	for _, i := range others {
		next.Days[i] = RecomputeDay(next.Days[i], float64(next.Days[i].TotalCalories)+perDayDelta)
	}

	// Correction pass: the edited day keeps what it got.
	adjustment := float64(next.Budget-next.Total()) / float64(len(others))
	for _, i := range others {
		next.Days[i] = RecomputeDay(next.Days[i], float64(next.Days[i].TotalCalories)+adjustment)
	}

	next.settleCarbs(others)
	return next, nil
}

// settleCarbs hands out whatever drift the correction pass left as single carb
// grams, round-robin over days. It stops early when removing carbs and every
// day is already at zero.
func (w *Week) settleCarbs(days []int) {
	grams := roundHalfUp(float64(w.Budget-w.Total()) / CarbCalsPerGram)
	step := 1
	if grams < 0 {
		step, grams = -1, -grams
	}

	for k, idle := 0, 0; grams > 0 && idle < len(days); k++ {
		d := &w.Days[days[k%len(days)]]
		if step < 0 && d.CarbsG == 0 {
			idle++
			continue
		}
		idle = 0
		d.CarbsG += step
		d.TotalCalories = calories(d.ProteinG, d.CarbsG, d.FatG)
		grams--
	}
}

// ToggleLock flips the lock on one day. Nothing is recomputed.
func (w Week) ToggleLock(day int) (Week, error) {
	if err := checkDay(day); err != nil {
		return w, err
	}
	w.Days[day].Locked = !w.Days[day].Locked
	return w, nil
}

// unlockedExcept lists, in calendar order, the unlocked days other than day.
func (w Week) unlockedExcept(day int) []int {
	var out []int
	for i, d := range w.Days {
		if i != day && !d.Locked {
			out = append(out, i)
		}
	}
	return out
}

func checkDay(day int) error {
	if day < 0 || day >= DaysPerWeek {
		return fmt.Errorf("%w: %d", ErrDayOutOfRange, day)
	}
	return nil
}
