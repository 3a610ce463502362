package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lg/calorie-banking-go-api/internal/tdee"
	"lg/calorie-banking-go-api/internal/weekplan"
)

func baselineCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "baseline",
		Short: "Work out a baseline day of macros",
	}
	c.AddCommand(baselineMacrosCmd())
	c.AddCommand(baselineProfileCmd())
	c.AddCommand(activityLevelsCmd())
	return c
}

/* ─── baseline macros ────────────────────────────────────────────────── */

// macroFlags are the three gram inputs shared by "baseline macros" and "week".
// They are strings so validation reports what the user typed.
type macroFlags struct {
	protein, carbs, fats string
}

func (f *macroFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.protein, "protein", "", "Protein grams per day")
	c.Flags().StringVar(&f.carbs, "carbs", "", "Carb grams per day")
	c.Flags().StringVar(&f.fats, "fats", "", "Fat grams per day")
}

func (f macroFlags) set() bool {
	return f.protein != "" || f.carbs != "" || f.fats != ""
}

func (f macroFlags) parse() (weekplan.Macros, error) {
	return tdee.ParseMacros(f.protein, f.carbs, f.fats)
}

func baselineMacrosCmd() *cobra.Command {
	var flags macroFlags

	c := &cobra.Command{
		Use:   "macros",
		Short: "Validate macros you already know and print their daily total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := flags.parse()
			if err != nil {
				return err
			}
			printMacros(cmd.OutOrStdout(), m)
			return nil
		},
	}

	flags.register(c)
	return c
}

/* ─── baseline profile ───────────────────────────────────────────────── */

// profileFlags collect a tdee.Profile from flags, a YAML file, or both.
// Flags the user set win over the file.
type profileFlags struct {
	file         string
	age          string
	height       string
	weight       string
	sex          string
	activity     string
	proteinPerKG float64
	carbSplit    int
}

func (f *profileFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.file, "file", "", "YAML profile file (default $"+profileEnv+")")
	c.Flags().StringVar(&f.age, "age", "", "Age in years")
	c.Flags().StringVar(&f.height, "height", "", "Height in cm")
	c.Flags().StringVar(&f.weight, "weight", "", "Weight in kg")
	c.Flags().StringVar(&f.sex, "sex", "", "male or female")
	c.Flags().StringVar(&f.activity, "activity", "", "sedentary, light, moderate, active or very_active")
	c.Flags().Float64Var(&f.proteinPerKG, "protein-per-kg", tdee.DefaultProteinPerKG, "Protein grams per kg of body weight (1.3-2.3)")
	c.Flags().IntVar(&f.carbSplit, "carb-split", tdee.DefaultCarbSplitPct, "Percent of non-protein calories from carbs (0-80)")
}

// profile builds the profile, reading the file first when one is given.
func (f profileFlags) profile(c *cobra.Command) (tdee.Profile, error) {
	var p tdee.Profile

	path := f.file
	if path == "" {
		path = os.Getenv(profileEnv)
	}
	if path != "" {
		loaded, err := loadProfile(path)
		if err != nil {
			return tdee.Profile{}, err
		}
		p = loaded
	}

	var verr tdee.ValidationError
	whole := func(field, value string, dst *int) {
		if value == "" {
			return
		}
		n, err := tdee.ParseWhole(field, value)
		var fe *tdee.ValidationError
		if errors.As(err, &fe) {
			verr.Fields = append(verr.Fields, fe.Fields...)
			return
		}
		*dst = n
	}
	whole("age", f.age, &p.Age)
	whole("height_cm", f.height, &p.HeightCM)
	whole("weight_kg", f.weight, &p.WeightKG)
	if len(verr.Fields) > 0 {
		return tdee.Profile{}, &verr
	}

	if f.sex != "" {
		p.Sex = f.sex
	}
	if f.activity != "" {
		p.ActivityLevel = f.activity
	}
	if c.Flags().Changed("protein-per-kg") {
		v := f.proteinPerKG
		p.ProteinPerKG = &v
	}
	if c.Flags().Changed("carb-split") {
		v := f.carbSplit
		p.CarbSplitPct = &v
	}
	return p, nil
}

func baselineProfileCmd() *cobra.Command {
	var flags profileFlags

	c := &cobra.Command{
		Use:   "profile",
		Short: "Estimate baseline macros from age, height, weight, sex and activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.profile(cmd)
			if err != nil {
				return err
			}
			res, err := tdee.Compute(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR:  %.0f cal\n", res.BMR)
			fmt.Fprintf(out, "TDEE: %.0f cal\n", res.TDEE)
			fmt.Fprintf(out, "Protein %.1f g/kg, carb split %d%%\n\n", res.ProteinPerKG, res.CarbSplitPct)
			printMacros(out, res.Macros)
			return nil
		},
	}

	flags.register(c)
	return c
}

func activityLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activity-levels",
		Short: "List activity levels and their multipliers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, l := range tdee.ActivityLevels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %.3f  %s\n", l.Key, l.Multiplier, l.Description)
			}
			return nil
		},
	}
}

func printMacros(w io.Writer, m weekplan.Macros) {
	fmt.Fprintf(w, "Protein: %d g\n", m.ProteinG)
	fmt.Fprintf(w, "Carbs:   %d g\n", m.CarbsG)
	fmt.Fprintf(w, "Fat:     %d g\n", m.FatG)
	fmt.Fprintf(w, "Total:   %d cal\n", m.Calories())
}
