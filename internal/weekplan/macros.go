// Package weekplan holds the weekly calorie banking core: the per-day macro
// split and the scheduler that keeps a week's calorie budget fixed while
// individual days are edited.
package weekplan

import "errors"

// Energy density of each macro, in calories per gram.
const (
	ProteinCalsPerGram = 4
	CarbCalsPerGram    = 4
	FatCalsPerGram     = 9
)

// ErrInvalidBaseline is returned when a baseline carries negative grams.
var ErrInvalidBaseline = errors.New("baseline macros must be non-negative")

// Macros is a daily protein/carbs/fat target in grams. It is the baseline every
// day of a fresh week starts from.
type Macros struct {
	ProteinG int
	CarbsG   int
	FatG     int
}

// Calories returns the energy of the macro triple.
func (m Macros) Calories() int {
	return calories(m.ProteinG, m.CarbsG, m.FatG)
}

// Validate rejects negative gram values.
func (m Macros) Validate() error {
	if m.ProteinG < 0 || m.CarbsG < 0 || m.FatG < 0 {
		return ErrInvalidBaseline
	}
	return nil
}

// DayPlan is one day of the week. TotalCalories always equals the calories of
// the stored grams; nothing sets it independently.
type DayPlan struct {
	Label         string
	ProteinG      int
	CarbsG        int
	FatG          int
	TotalCalories int
	Locked        bool
}

// Macros returns the day's gram triple.
func (d DayPlan) Macros() Macros {
	return Macros{ProteinG: d.ProteinG, CarbsG: d.CarbsG, FatG: d.FatG}
}

func calories(proteinG, carbsG, fatG int) int {
	return proteinG*ProteinCalsPerGram + carbsG*CarbCalsPerGram + fatG*FatCalsPerGram
}
