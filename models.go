package main

import (
	"encoding/json"

	"lg/calorie-banking-go-api/internal/tdee"
	"lg/calorie-banking-go-api/internal/weekplan"
)

/* ─── Request bodies ─────────────────────────────────────────────────── */

// macrosRequest is the body for POST /api/baseline/macros, POST /api/sessions
// and POST /api/week/reset. Fields accept JSON numbers or numeric strings so a
// form can post what the user typed; validation happens in tdee.ParseMacros.
type macrosRequest struct {
	Protein json.Number `json:"protein"`
	Carbs   json.Number `json:"carbs"`
	Fats    json.Number `json:"fats"`
}

// empty reports whether no macro field was sent at all.
func (r macrosRequest) empty() bool {
	return r.Protein == "" && r.Carbs == "" && r.Fats == ""
}

// profileRequest is the body for POST /api/baseline/profile. Whole-number
// fields are json.Number for the same reason as macrosRequest.
// protein_per_kg and carb_split_pct are optional.
type profileRequest struct {
	Age           json.Number `json:"age"`
	HeightCM      json.Number `json:"height_cm"`
	WeightKG      json.Number `json:"weight_kg"`
	Sex           string      `json:"sex"`
	ActivityLevel string      `json:"activity_level"`
	ProteinPerKG  *float64    `json:"protein_per_kg"`
	CarbSplitPct  *int        `json:"carb_split_pct"`
}

// totalRequest is the body for the two "set a day's total" endpoints.
type totalRequest struct {
	Total *float64 `json:"total"`
}

// selectRequest is the body for PUT /api/week/selection.
type selectRequest struct {
	Day *int `json:"day"`
}

/* ─── Response shapes ────────────────────────────────────────────────── */

// macrosView is a baseline day: grams plus the derived daily total.
type macrosView struct {
	ProteinG      int `json:"protein_g"`
	CarbsG        int `json:"carbs_g"`
	FatG          int `json:"fat_g"`
	TotalCalories int `json:"total_calories"`
}

func newMacrosView(m weekplan.Macros) macrosView {
	return macrosView{
		ProteinG:      m.ProteinG,
		CarbsG:        m.CarbsG,
		FatG:          m.FatG,
		TotalCalories: m.Calories(),
	}
}

// baselineResponse is returned by both baseline endpoints. Energy is only set
// on the profile path.
type baselineResponse struct {
	Macros macrosView   `json:"macros"`
	Energy *tdee.Result `json:"energy,omitempty"`
}

// dayView is one bar of the weekly chart. Per-macro calories are included so
// a client can show the tooltip breakdown without knowing the multipliers.
// MinCalories/MaxCalories are the accepted range for a new total.
type dayView struct {
	Index           int     `json:"index"`
	Label           string  `json:"label"`
	ProteinG        int     `json:"protein_g"`
	CarbsG          int     `json:"carbs_g"`
	FatG            int     `json:"fat_g"`
	ProteinCalories int     `json:"protein_calories"`
	CarbCalories    int     `json:"carb_calories"`
	FatCalories     int     `json:"fat_calories"`
	TotalCalories   int     `json:"total_calories"`
	Locked          bool    `json:"locked"`
	MinCalories     float64 `json:"min_calories"`
	MaxCalories     float64 `json:"max_calories"`
}

// weekView is the response shape for every /api/week endpoint.
// SelectedDay is null when nothing is selected.
type weekView struct {
	Days         []dayView  `json:"days"`
	WeeklyTotal  int        `json:"weekly_total"`
	WeeklyBudget int        `json:"weekly_budget"`
	SelectedDay  *int       `json:"selected_day"`
	SliderValue  float64    `json:"slider_value"`
	Baseline     macrosView `json:"baseline"`
}

func newWeekView(p *weekplan.Planner) weekView {
	w := p.Week()
	days := make([]dayView, len(w.Days))
	for i, d := range w.Days {
		lo, hi, _ := p.SliderBounds(i)
		days[i] = dayView{
			Index:           i,
			Label:           d.Label,
			ProteinG:        d.ProteinG,
			CarbsG:          d.CarbsG,
			FatG:            d.FatG,
			ProteinCalories: d.ProteinG * weekplan.ProteinCalsPerGram,
			CarbCalories:    d.CarbsG * weekplan.CarbCalsPerGram,
			FatCalories:     d.FatG * weekplan.FatCalsPerGram,
			TotalCalories:   d.TotalCalories,
			Locked:          d.Locked,
			MinCalories:     lo,
			MaxCalories:     hi,
		}
	}

	view := weekView{
		Days:         days,
		WeeklyTotal:  w.Total(),
		WeeklyBudget: w.Budget,
		SliderValue:  p.SliderValue(),
		Baseline:     newMacrosView(p.Baseline()),
	}
	if day, ok := p.Selected(); ok {
		view.SelectedDay = &day
	}
	return view
}

// sessionResponse is returned by POST /api/sessions.
type sessionResponse struct {
	Token string   `json:"token"`
	Week  weekView `json:"week"`
}

// shareResponse is returned by GET /api/week/share.
type shareResponse struct {
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsapp_url"`
}
