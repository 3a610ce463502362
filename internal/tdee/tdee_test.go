package tdee

import (
	"errors"
	"math"
	"testing"

	"lg/calorie-banking-go-api/internal/weekplan"
)

// makeProfile constructs a valid Profile for tests. Optional intake and split
// are left nil so the defaults (1.3 g/kg, 50%) apply.
func makeProfile(sex string, age, heightCM, weightKG int, activity string) Profile {
	return Profile{
		Age:           age,
		HeightCM:      heightCM,
		WeightKG:      weightKG,
		Sex:           sex,
		ActivityLevel: activity,
	}
}

func ptr[T any](v T) *T { return &v }

/* ─── BMR accuracy tests ─────────────────────────────────────────────── */

// TestBMR_Male: 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632
func TestBMR_Male(t *testing.T) {
	got := BMR(makeProfile("male", 30, 180, 80, "sedentary"))
	if math.Abs(got-1853.632) > 1e-6 {
		t.Errorf("male BMR = %f, want 1853.632", got)
	}
}

// TestBMR_Female: 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333
func TestBMR_Female(t *testing.T) {
	got := BMR(makeProfile("female", 25, 165, 60, "moderate"))
	if math.Abs(got-1405.333) > 1e-6 {
		t.Errorf("female BMR = %f, want 1405.333", got)
	}
}

/* ─── Compute ────────────────────────────────────────────────────────── */

func TestCompute(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		want    weekplan.Macros
		tdee    float64
	}{
		{
			name:    "male sedentary defaults",
			profile: makeProfile("male", 30, 180, 80, "sedentary"),
			want:    weekplan.Macros{ProteinG: 104, CarbsG: 226, FatG: 100},
			tdee:    2224.3584,
		},
		{
			name:    "female moderate defaults",
			profile: makeProfile("female", 25, 165, 60, "moderate"),
			want:    weekplan.Macros{ProteinG: 78, CarbsG: 233, FatG: 104},
			tdee:    2178.26615,
		},
		{
			name: "high protein, carb heavy split hits the fat floor",
			profile: func() Profile {
				p := makeProfile("male", 30, 180, 80, "sedentary")
				p.ProteinPerKG = ptr(2.3)
				p.CarbSplitPct = ptr(80)
				return p
			}(),
			want: weekplan.Macros{ProteinG: 184, CarbsG: 298, FatG: 33},
			tdee: 2224.3584,
		},
		{
			name: "zero carb split",
			profile: func() Profile {
				p := makeProfile("male", 30, 180, 80, "sedentary")
				p.CarbSplitPct = ptr(0)
				return p
			}(),
			want: weekplan.Macros{ProteinG: 104, CarbsG: 0, FatG: 201},
			tdee: 2224.3584,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.profile)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Macros != tc.want {
				t.Errorf("macros = %+v, want %+v", got.Macros, tc.want)
			}
			if math.Abs(got.TDEE-tc.tdee) > 1e-4 {
				t.Errorf("TDEE = %f, want %f", got.TDEE, tc.tdee)
			}
			if got.TotalCalories != tc.want.Calories() {
				t.Errorf("TotalCalories = %d, want %d", got.TotalCalories, tc.want.Calories())
			}
		})
	}
}

// TestCompute_ProteinExceedsBudget uses an implausibly small body so the
// formula goes negative and protein alone exceeds the day.
func TestCompute_ProteinExceedsBudget(t *testing.T) {
	p := makeProfile("female", 130, 1, 1, "sedentary")
	p.ProteinPerKG = ptr(2.3)
	_, err := Compute(p)
	if !errors.Is(err, ErrProteinExceedsBudget) {
		t.Errorf("expected ErrProteinExceedsBudget, got %v", err)
	}
}

/* ─── Validation ─────────────────────────────────────────────────────── */

// TestValidate_Fields mutates one field of a valid profile per case and
// checks the message reported for it.
func TestValidate_Fields(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mutFn func(p *Profile)
	}{
		{"under 18", "age", func(p *Profile) { p.Age = 17 }},
		{"over 130", "age", func(p *Profile) { p.Age = 131 }},
		{"zero height", "height_cm", func(p *Profile) { p.HeightCM = 0 }},
		{"zero weight", "weight_kg", func(p *Profile) { p.WeightKG = 0 }},
		{"unknown sex", "sex", func(p *Profile) { p.Sex = "other" }},
		{"unknown activity", "activity_level", func(p *Profile) { p.ActivityLevel = "couch" }},
		{"protein too low", "protein_per_kg", func(p *Profile) { p.ProteinPerKG = ptr(1.0) }},
		{"protein too high", "protein_per_kg", func(p *Profile) { p.ProteinPerKG = ptr(2.5) }},
		{"protein NaN", "protein_per_kg", func(p *Profile) { p.ProteinPerKG = ptr(math.NaN()) }},
		{"protein Inf", "protein_per_kg", func(p *Profile) { p.ProteinPerKG = ptr(math.Inf(1)) }},
		{"split too high", "carb_split_pct", func(p *Profile) { p.CarbSplitPct = ptr(81) }},
		{"negative split", "carb_split_pct", func(p *Profile) { p.CarbSplitPct = ptr(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := makeProfile("male", 30, 180, 80, "sedentary")
			tc.mutFn(&p)
			err := p.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if _, ok := verr.Messages()[tc.field]; !ok || len(verr.Fields) != 1 {
				t.Errorf("expected a single error on %s, got %v", tc.field, verr.Fields)
			}
		})
	}
}

func TestValidate_AgeMessage(t *testing.T) {
	p := makeProfile("male", 16, 180, 80, "sedentary")
	var verr *ValidationError
	if !errors.As(p.Validate(), &verr) {
		t.Fatal("expected validation error")
	}
	if got := verr.Messages()["age"]; got != "Age must be 18 or above" {
		t.Errorf("age message = %q", got)
	}
}

/* ─── Activity levels ────────────────────────────────────────────────── */

func TestMultiplier(t *testing.T) {
	want := map[string]float64{
		"sedentary": 1.2, "light": 1.375, "moderate": 1.55, "active": 1.725, "very_active": 1.9,
	}
	for key, m := range want {
		got, ok := Multiplier(key)
		if !ok || got != m {
			t.Errorf("Multiplier(%q) = %v, %v; want %v, true", key, got, ok, m)
		}
	}
	if _, ok := Multiplier("unknown"); ok {
		t.Error("expected ok=false for unknown level")
	}
	if n := len(ActivityLevels()); n != len(want) {
		t.Errorf("ActivityLevels() has %d entries, want %d", n, len(want))
	}
}
