package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/calorie-banking-go-api/internal/tdee"
)

// postBaselineMacros validates macros a user already knows and returns them
// with their daily total.
// POST /api/baseline/macros. Body: { "protein", "carbs", "fats" }.
func (h *Handler) postBaselineMacros(c *gin.Context) {
	var body macrosRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	m, ok := parseMacrosRequest(c, body)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, baselineResponse{Macros: newMacrosView(m)})
}

// postBaselineProfile computes baseline macros from a body profile
// (Harris-Benedict BMR x activity multiplier, protein by g/kg, carb/fat split).
// POST /api/baseline/profile. Whole-number fields are validated the same way
// the macros are; range and enum checks come from tdee.Profile.Validate.
func (h *Handler) postBaselineProfile(c *gin.Context) {
	var body profileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Parse every whole-number field first so all bad fields are reported together.
	var verr tdee.ValidationError
	whole := func(field string, v string) int {
		n, err := tdee.ParseWhole(field, v)
		var fe *tdee.ValidationError
		if errors.As(err, &fe) {
			verr.Fields = append(verr.Fields, fe.Fields...)
		}
		return n
	}
	profile := tdee.Profile{
		Age:           whole("age", body.Age.String()),
		HeightCM:      whole("height_cm", body.HeightCM.String()),
		WeightKG:      whole("weight_kg", body.WeightKG.String()),
		Sex:           body.Sex,
		ActivityLevel: body.ActivityLevel,
		ProteinPerKG:  body.ProteinPerKG,
		CarbSplitPct:  body.CarbSplitPct,
	}
	if len(verr.Fields) > 0 {
		validationError(c, &verr)
		return
	}

	result, err := tdee.Compute(profile)
	if err != nil {
		var fe *tdee.ValidationError
		switch {
		case errors.As(err, &fe):
			validationError(c, fe)
		case errors.Is(err, tdee.ErrProteinExceedsBudget):
			apiError(c, http.StatusUnprocessableEntity, "protein intake exceeds daily energy expenditure")
		default:
			apiError(c, http.StatusInternalServerError, "failed to compute macros")
		}
		return
	}

	c.JSON(http.StatusOK, baselineResponse{Macros: newMacrosView(result.Macros), Energy: &result})
}

// getActivityLevels lists the valid activity levels and their multipliers.
// GET /api/activity-levels.
func (h *Handler) getActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, tdee.ActivityLevels())
}
