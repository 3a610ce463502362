package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lg/calorie-banking-go-api/internal/tdee"
	"lg/calorie-banking-go-api/internal/weekplan"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	sessions *sessionStore
}

/* ─── Response helpers ───────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// validationError returns 400 with the per-field messages alongside the
// usual error string: {"error": "invalid input", "fields": {"age": "..."}}.
func validationError(c *gin.Context, verr *tdee.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "fields": verr.Messages()})
}

// plannerError maps a weekplan error to a status code. All-locked is a 409:
// the request is well-formed but conflicts with the locks the client set.
func plannerError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, weekplan.ErrAllOtherDaysLocked):
		log.Printf("[%s] refused: %v", op, err)
		apiError(c, http.StatusConflict, "Cannot adjust calories. All other days are locked.")
	case errors.Is(err, weekplan.ErrDayOutOfRange):
		apiError(c, http.StatusBadRequest, "day must be between 0 and 6")
	case errors.Is(err, weekplan.ErrInvalidTotal):
		apiError(c, http.StatusBadRequest, "total must be a finite number within range")
	case errors.Is(err, weekplan.ErrNoDaySelected):
		apiError(c, http.StatusConflict, "no day selected")
	case errors.Is(err, weekplan.ErrInvalidBaseline), errors.Is(err, weekplan.ErrBaselineMismatch):
		apiError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[%s] unexpected error: %v", op, err)
		apiError(c, http.StatusInternalServerError, "internal error")
	}
}

/* ─── Request helpers ────────────────────────────────────────────────── */

// parseMacrosRequest validates macro grams from a request body, writing a 400
// and returning ok=false when they are invalid.
func parseMacrosRequest(c *gin.Context, body macrosRequest) (weekplan.Macros, bool) {
	m, err := tdee.ParseMacros(body.Protein.String(), body.Carbs.String(), body.Fats.String())
	if err != nil {
		var verr *tdee.ValidationError
		if errors.As(err, &verr) {
			validationError(c, verr)
		} else {
			apiError(c, http.StatusBadRequest, err.Error())
		}
		return weekplan.Macros{}, false
	}
	return m, true
}

// dayParam parses the :day path parameter (0 = Monday ... 6 = Sunday).
func dayParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day >= weekplan.DaysPerWeek {
		apiError(c, http.StatusBadRequest, "day must be between 0 and 6")
		return 0, false
	}
	return day, true
}

// currentSession returns the session set by sessionMiddleware.
func currentSession(c *gin.Context) *session {
	return c.MustGet("session").(*session)
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/baseline/macros", h.postBaselineMacros)
	router.POST("/api/baseline/profile", h.postBaselineProfile)
	router.GET("/api/activity-levels", h.getActivityLevels)
	router.POST("/api/sessions", h.createSession)

	// Session routes
	api := router.Group("/api", h.sessionMiddleware())
	api.DELETE("/sessions", h.deleteSession)
	api.GET("/week", h.getWeek)
	api.PUT("/week/days/:day/total", h.putDayTotal)
	api.POST("/week/days/:day/lock", h.toggleDayLock)
	api.PUT("/week/selection", h.putSelection)
	api.DELETE("/week/selection", h.deleteSelection)
	api.PUT("/week/selection/total", h.putSelectedTotal)
	api.POST("/week/reset", h.resetWeek)
	api.GET("/week/share", h.getShare)
	api.GET("/week/export.xlsx", h.getExport)
}
