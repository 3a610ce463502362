package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/calorie-banking-go-api/internal/export"
	"lg/calorie-banking-go-api/internal/weekplan"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// getWeek returns the session's current week, weekly total and selection.
// GET /api/week.
func (h *Handler) getWeek(c *gin.Context) {
	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	c.JSON(http.StatusOK, newWeekView(sess.planner))
}

// putDayTotal sets one day's total and redistributes the difference over the
// other unlocked days. Returns 409 when every other day is locked; the week is
// left unchanged in that case.
// PUT /api/week/days/:day/total. Body: { "total": 2200 }.
func (h *Handler) putDayTotal(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	total, ok := bindTotal(c)
	if !ok {
		return
	}

	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !checkTotalInBounds(c, sess.planner, day, total) {
		return
	}
	if _, err := sess.planner.SetDayTotal(day, total); err != nil {
		plannerError(c, "putDayTotal", err)
		return
	}

	c.JSON(http.StatusOK, newWeekView(sess.planner))
}

// toggleDayLock flips the lock on one day. No totals change.
// POST /api/week/days/:day/lock.
func (h *Handler) toggleDayLock(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := sess.planner.ToggleLock(day); err != nil {
		plannerError(c, "toggleDayLock", err)
		return
	}

	c.JSON(http.StatusOK, newWeekView(sess.planner))
}

// putSelection selects the day slider edits apply to and loads its total into
// the slider.
// PUT /api/week/selection. Body: { "day": 2 }.
func (h *Handler) putSelection(c *gin.Context) {
	var body selectRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Day == nil {
		apiError(c, http.StatusBadRequest, "day is required")
		return
	}

	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.planner.SelectDay(*body.Day); err != nil {
		plannerError(c, "putSelection", err)
		return
	}

	c.JSON(http.StatusOK, newWeekView(sess.planner))
}

// deleteSelection clears the selected day.
// DELETE /api/week/selection.
func (h *Handler) deleteSelection(c *gin.Context) {
	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.planner.ClearSelection()
	c.JSON(http.StatusOK, newWeekView(sess.planner))
}

// putSelectedTotal moves the slider for the selected day, redistributing the
// week the same way putDayTotal does. 409 when no day is selected.
// PUT /api/week/selection/total. Body: { "total": 2200 }.
func (h *Handler) putSelectedTotal(c *gin.Context) {
	total, ok := bindTotal(c)
	if !ok {
		return
	}

	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if day, selected := sess.planner.Selected(); selected {
		if !checkTotalInBounds(c, sess.planner, day, total) {
			return
		}
	}
	if _, err := sess.planner.SetSelectedTotal(total); err != nil {
		plannerError(c, "putSelectedTotal", err)
		return
	}

	c.JSON(http.StatusOK, newWeekView(sess.planner))
}

// resetWeek puts every day back to the baseline, clearing locks and selection.
// POST /api/week/reset. Optional body { "protein", "carbs", "fats" } replaces
// the baseline; without it the session's current baseline is used.
func (h *Handler) resetWeek(c *gin.Context) {
	var body macrosRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			apiError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	baseline := sess.planner.Baseline()
	if !body.empty() {
		m, ok := parseMacrosRequest(c, body)
		if !ok {
			return
		}
		baseline = m
	}
	if _, err := sess.planner.Reset(baseline); err != nil {
		plannerError(c, "resetWeek", err)
		return
	}

	c.JSON(http.StatusOK, newWeekView(sess.planner))
}

// getShare renders the week as the "Hey coach!" message and a wa.me link
// that opens WhatsApp with it prefilled.
// GET /api/week/share.
func (h *Handler) getShare(c *gin.Context) {
	sess := currentSession(c)
	sess.mu.Lock()
	text := weekplan.ShareText(sess.planner.Week())
	sess.mu.Unlock()

	c.JSON(http.StatusOK, shareResponse{Text: text, WhatsAppURL: weekplan.WhatsAppURL(text)})
}

// getExport returns the week as an .xlsx download.
// GET /api/week/export.xlsx.
func (h *Handler) getExport(c *gin.Context) {
	sess := currentSession(c)
	sess.mu.Lock()
	f, err := export.WeekWorkbook(sess.planner.Week(), sess.planner.Baseline())
	sess.mu.Unlock()
	if err != nil {
		log.Printf("[getExport] failed to build workbook: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to build workbook")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("[getExport] failed to write workbook: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="macro-week.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

/* ─── Helpers ────────────────────────────────────────────────────────── */

// bindTotal reads { "total": n } from the body.
func bindTotal(c *gin.Context) (float64, bool) {
	var body totalRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Total == nil {
		apiError(c, http.StatusBadRequest, "total is required")
		return 0, false
	}
	return *body.Total, true
}

// checkTotalInBounds rejects totals outside the day's slider range: below the
// day's protein calories or above 1.8x the baseline daily total.
func checkTotalInBounds(c *gin.Context, p *weekplan.Planner, day int, total float64) bool {
	lo, hi, err := p.SliderBounds(day)
	if err != nil {
		plannerError(c, "checkTotalInBounds", err)
		return false
	}
	if total < lo || total > hi {
		log.Printf("[checkTotalInBounds] day %d total %.0f outside [%.0f, %.0f]", day, total, lo, hi)
		apiError(c, http.StatusBadRequest, fmt.Sprintf("total must be between %.0f and %.0f", lo, hi))
		return false
	}
	return true
}
