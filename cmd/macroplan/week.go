package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lg/calorie-banking-go-api/internal/export"
	"lg/calorie-banking-go-api/internal/tdee"
	"lg/calorie-banking-go-api/internal/weekplan"
)

func weekCmd() *cobra.Command {
	var (
		macros   macroFlags
		profile  profileFlags
		locks    []string
		edits    []string
		share    bool
		whatsapp bool
		xlsxPath string
	)

	c := &cobra.Command{
		Use:   "week",
		Short: "Redistribute a week of macros around the days you change",
		Long: `Starts every day at the baseline, locks the --lock days, then applies each
--set in order. Each edit moves the difference onto the other unlocked days so
the week stays on budget.

The baseline comes from --protein/--carbs/--fats, or from a body profile
(--file or the profile flags) when no macros are given.

Days are 0-6 or M, T, W, TH, F, S, SN.`,
		Example: `  macroplan week --protein 150 --carbs 200 --fats 60 --lock SN --set M=2200 --set F=1600`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseline, err := weekBaseline(cmd, macros, profile)
			if err != nil {
				return err
			}
			p, err := weekplan.NewPlanner(baseline, 0)
			if err != nil {
				return err
			}

			for _, ref := range locks {
				day, err := parseDay(ref)
				if err != nil {
					return err
				}
				if p.Week().Days[day].Locked {
					continue
				}
				if _, err := p.ToggleLock(day); err != nil {
					return err
				}
			}

			for _, edit := range edits {
				if err := applyEdit(p, edit); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			printWeek(out, p.Week())
			if xlsxPath != "" {
				if err := saveWorkbook(p, xlsxPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved %s\n", xlsxPath)
			}
			if share || whatsapp {
				text := weekplan.ShareText(p.Week())
				fmt.Fprintln(out)
				if whatsapp {
					fmt.Fprintln(out, weekplan.WhatsAppURL(text))
				} else {
					fmt.Fprintln(out, text)
				}
			}
			return nil
		},
	}

	macros.register(c)
	profile.register(c)
	c.Flags().StringArrayVar(&locks, "lock", nil, "Lock a day so edits elsewhere leave it alone (repeatable)")
	c.Flags().StringArrayVar(&edits, "set", nil, "Set a day's total, as DAY=CALORIES (repeatable, applied in order)")
	c.Flags().BoolVar(&share, "share", false, "Print the message for your coach")
	c.Flags().BoolVar(&whatsapp, "whatsapp", false, "Print a wa.me link with the message prefilled")
	c.Flags().StringVar(&xlsxPath, "xlsx", "", "Also save the week as an Excel workbook at this path")
	return c
}

// weekBaseline prefers explicit macros and falls back to a body profile.
func weekBaseline(cmd *cobra.Command, macros macroFlags, profile profileFlags) (weekplan.Macros, error) {
	if macros.set() {
		return macros.parse()
	}
	p, err := profile.profile(cmd)
	if err != nil {
		return weekplan.Macros{}, err
	}
	if p == (tdee.Profile{}) {
		return weekplan.Macros{}, errors.New("a baseline is required: pass --protein, --carbs and --fats, or a profile")
	}
	res, err := tdee.Compute(p)
	if err != nil {
		return weekplan.Macros{}, err
	}
	return res.Macros, nil
}

// applyEdit applies one DAY=CALORIES edit, refusing totals outside the day's
// slider range.
func applyEdit(p *weekplan.Planner, edit string) error {
	ref, value, ok := strings.Cut(edit, "=")
	if !ok {
		return fmt.Errorf("--set %q: expected DAY=CALORIES", edit)
	}
	day, err := parseDay(ref)
	if err != nil {
		return err
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("--set %q: calories must be a number", edit)
	}

	lo, hi, err := p.SliderBounds(day)
	if err != nil {
		return err
	}
	if total < lo || total > hi {
		return fmt.Errorf("--set %q: total must be between %.0f and %.0f", edit, lo, hi)
	}
	if _, err := p.SetDayTotal(day, total); err != nil {
		return fmt.Errorf("--set %q: %w", edit, err)
	}
	return nil
}

func saveWorkbook(p *weekplan.Planner, path string) error {
	f, err := export.WeekWorkbook(p.Week(), p.Baseline())
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// parseDay accepts a 0-based index or a day label, case-insensitively.
func parseDay(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 || n >= weekplan.DaysPerWeek {
			return 0, fmt.Errorf("day %d: %w", n, weekplan.ErrDayOutOfRange)
		}
		return n, nil
	}
	for i, label := range weekplan.DayLabels {
		if strings.EqualFold(ref, label) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q: use 0-6 or one of %s", ref, strings.Join(weekplan.DayLabels[:], ", "))
}

// printWeek writes one row per day plus the weekly total against budget.
func printWeek(w io.Writer, week weekplan.Week) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Day\tProtein\tCarbs\tFat\tCalories\t\t")
	for _, d := range week.Days {
		lock := ""
		if d.Locked {
			lock = "locked"
		}
		fmt.Fprintf(tw, "%s\t%dg\t%dg\t%dg\t%d\t%s\t\n", d.Label, d.ProteinG, d.CarbsG, d.FatG, d.TotalCalories, lock)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nWeekly total: %d / %d cal\n", week.Total(), week.Budget)
}
