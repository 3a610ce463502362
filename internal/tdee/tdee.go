// Package tdee turns a person's body profile into a baseline day of macros:
// Harris-Benedict BMR, times an activity multiplier, split into protein by
// body weight and the rest into carbs and fat.
package tdee

import (
	"errors"
	"fmt"
	"math"

	"lg/calorie-banking-go-api/internal/weekplan"
)

// Protein intake and carb split bounds, with the defaults used when a profile
// leaves them unset.
const (
	MinProteinPerKG     = 1.3
	MaxProteinPerKG     = 2.3
	DefaultProteinPerKG = MinProteinPerKG

	MinCarbSplitPct     = 0
	MaxCarbSplitPct     = 80
	DefaultCarbSplitPct = 50

	minAge = 18
	maxAge = 130

	// minFatShare matches the weekly planner's fat floor.
	minFatShare = 0.2
)

// ErrProteinExceedsBudget means the protein target alone uses up (or exceeds)
// the day's energy, leaving nothing for carbs and fat.
var ErrProteinExceedsBudget = errors.New("protein intake exceeds daily energy expenditure")

// Profile is the body and preference input for the macros-unknown path.
// ProteinPerKG and CarbSplitPct are optional; nil takes the default.
type Profile struct {
	Age           int      `json:"age"             yaml:"age"`
	HeightCM      int      `json:"height_cm"       yaml:"height_cm"`
	WeightKG      int      `json:"weight_kg"       yaml:"weight_kg"`
	Sex           string   `json:"sex"             yaml:"sex"`
	ActivityLevel string   `json:"activity_level"  yaml:"activity_level"`
	ProteinPerKG  *float64 `json:"protein_per_kg"  yaml:"protein_per_kg"`
	CarbSplitPct  *int     `json:"carb_split_pct"  yaml:"carb_split_pct"`
}

// Result is a computed baseline plus the energy figures behind it.
type Result struct {
	BMR           float64         `json:"bmr"`
	TDEE          float64         `json:"tdee"`
	ProteinPerKG  float64         `json:"protein_per_kg"`
	CarbSplitPct  int             `json:"carb_split_pct"`
	Macros        weekplan.Macros `json:"-"`
	TotalCalories int             `json:"total_calories"`
}

// Validate checks every field and reports all failures at once.
func (p Profile) Validate() error {
	var verr ValidationError
	if p.Age < minAge {
		verr.add("age", fmt.Sprintf("Age must be %d or above", minAge))
	} else if p.Age > maxAge {
		verr.add("age", fmt.Sprintf("Age must be %d or below", maxAge))
	}
	if p.HeightCM <= 0 {
		verr.add("height_cm", "Value must be greater than 0")
	}
	if p.WeightKG <= 0 {
		verr.add("weight_kg", "Value must be greater than 0")
	}
	if p.Sex != "male" && p.Sex != "female" {
		verr.add("sex", "Sex must be male or female")
	}
	if _, ok := Multiplier(p.ActivityLevel); !ok {
		verr.add("activity_level", "Activity level must be one of: sedentary, light, moderate, active, very_active")
	}
	// Written so NaN fails too.
	if v := p.proteinPerKG(); !(v >= MinProteinPerKG && v <= MaxProteinPerKG) {
		verr.add("protein_per_kg", fmt.Sprintf("Protein intake must be between %.1f and %.1f g/kg", MinProteinPerKG, MaxProteinPerKG))
	}
	if v := p.carbSplitPct(); v < MinCarbSplitPct || v > MaxCarbSplitPct {
		verr.add("carb_split_pct", fmt.Sprintf("Carb split must be between %d and %d percent", MinCarbSplitPct, MaxCarbSplitPct))
	}
	return verr.orNil()
}

func (p Profile) proteinPerKG() float64 {
	if p.ProteinPerKG == nil {
		return DefaultProteinPerKG
	}
	return *p.ProteinPerKG
}

func (p Profile) carbSplitPct() int {
	if p.CarbSplitPct == nil {
		return DefaultCarbSplitPct
	}
	return *p.CarbSplitPct
}

// BMR uses the revised Harris-Benedict equation. Anything other than "male"
// takes the female coefficients; call Validate first.
func BMR(p Profile) float64 {
	w, h, a := float64(p.WeightKG), float64(p.HeightCM), float64(p.Age)
	if p.Sex == "male" {
		return 88.362 + 13.397*w + 4.799*h - 5.677*a
	}
	return 447.593 + 9.247*w + 3.098*h - 4.330*a
}

// Compute validates p and derives its baseline macros.
//
// Protein is weight x g/kg. Of the calories left, fat gets the larger of 20%
// and (100 - carb split)%, carbs get the rest.
func Compute(p Profile) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	mult, _ := Multiplier(p.ActivityLevel)
	bmr := BMR(p)
	tdee := bmr * mult

	weight := float64(p.WeightKG)
	intake := p.proteinPerKG()
	split := p.carbSplitPct()

	proteinCalories := weight * intake * weekplan.ProteinCalsPerGram
	remaining := tdee - proteinCalories
	if remaining <= 0 {
		return Result{}, fmt.Errorf("%w: %.0f cal of protein vs %.0f cal TDEE", ErrProteinExceedsBudget, proteinCalories, tdee)
	}
	fatCalories := math.Max(remaining*minFatShare, remaining*(1-float64(split)/100))
	carbCalories := remaining - fatCalories

	m := weekplan.Macros{
		ProteinG: roundHalfUp(weight * intake),
		CarbsG:   roundHalfUp(carbCalories / weekplan.CarbCalsPerGram),
		FatG:     roundHalfUp(fatCalories / weekplan.FatCalsPerGram),
	}
	return Result{
		BMR:           bmr,
		TDEE:          tdee,
		ProteinPerKG:  intake,
		CarbSplitPct:  split,
		Macros:        m,
		TotalCalories: m.Calories(),
	}, nil
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
