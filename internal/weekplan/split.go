package weekplan

import "math"

const (
	// minFatShare is the fraction of non-protein calories fat must supply.
	minFatShare = 0.2
	// fallbackCarbRatio is used when a day has neither carbs nor fat to take a
	// ratio from.
	fallbackCarbRatio = 0.5
)

// MaxDayCalories is the largest total a day can be set to. RecomputeDay clamps
// to it and Week.SetDayTotal rejects anything beyond it, so gram values always
// fit in an int.
const MaxDayCalories = math.MaxInt32

// RecomputeDay returns day re-split to hit newTotal calories. Protein grams are
// held fixed; the calories left over go to carbs and fat in the day's existing
// carb:fat gram ratio, with fat never below 20% of them. Carbs absorb any
// rounding shortfall. The returned TotalCalories is derived from the final
// grams, so it can differ from newTotal by a few calories.
//
// Negative and NaN totals are treated as 0, and totals above MaxDayCalories
// (including +Inf) as MaxDayCalories. Callers are expected to keep
// newTotal at or above the calories of the fixed protein.
func RecomputeDay(day DayPlan, newTotal float64) DayPlan {
	if math.IsNaN(newTotal) || newTotal < 0 {
		newTotal = 0
	}
	if newTotal > MaxDayCalories {
		newTotal = MaxDayCalories
	}

	proteinCalories := float64(day.ProteinG * ProteinCalsPerGram)
	adjustableCalories := math.Max(newTotal-proteinCalories, 0)

	// Fat floor applies regardless of the previous ratio.
	minFatCalories := adjustableCalories * minFatShare
	minFatG := int(math.Ceil(minFatCalories / FatCalsPerGram))

	// Ratio is taken over grams, not calories.
	ratio := fallbackCarbRatio
	if day.CarbsG+day.FatG > 0 {
		ratio = float64(day.CarbsG) / float64(day.CarbsG+day.FatG)
	}

	remaining := adjustableCalories - minFatCalories
	carbsG := max(0, roundHalfUp(remaining*ratio/CarbCalsPerGram))
	fatG := max(minFatG, roundHalfUp((remaining*(1-ratio)+minFatCalories)/FatCalsPerGram))

	if got := float64(calories(day.ProteinG, carbsG, fatG)); got < newTotal {
		carbsG += roundHalfUp((newTotal - got) / CarbCalsPerGram)
	}

	day.CarbsG = carbsG
	day.FatG = fatG
	day.TotalCalories = calories(day.ProteinG, carbsG, fatG)
	return day
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
