package main

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/calorie-banking-go-api/internal/weekplan"
)

var errTooManySessions = errors.New("too many active sessions")

// session is one planner being edited by one client. mu serializes requests
// so each scheduler operation runs to completion before the next starts.
type session struct {
	mu       sync.Mutex
	planner  *weekplan.Planner
	lastSeen time.Time
}

// sessionStore keeps planner sessions in memory, keyed by a random token.
// Nothing is persisted; sessions idle longer than ttl are dropped on the next
// create or lookup.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	max      int
	now      func() time.Time // overridable for tests
}

func newSessionStore(ttl time.Duration, maxSessions int) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		max:      maxSessions,
		now:      time.Now,
	}
}

// create stores p under a new token.
func (s *sessionStore) create(p *weekplan.Planner) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	if len(s.sessions) >= s.max {
		return "", errTooManySessions
	}
	token := uuid.New().String()
	s.sessions[token] = &session{planner: p, lastSeen: s.now()}
	return token, nil
}

// get returns the live session for token and marks it as used.
func (s *sessionStore) get(token string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, token)
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// delete drops a session. Returns false if it did not exist.
func (s *sessionStore) delete(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[token]
	delete(s.sessions, token)
	return ok
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) evictExpiredLocked() {
	now := s.now()
	for token, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, token)
		}
	}
}

/* ─── Handlers & middleware ──────────────────────────────────────────── */

// createSession seeds a new planner from baseline macros and returns its token.
// POST /api/sessions (public). Body: { "protein", "carbs", "fats" }.
func (h *Handler) createSession(c *gin.Context) {
	var body macrosRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	baseline, ok := parseMacrosRequest(c, body)
	if !ok {
		return
	}

	p, err := weekplan.NewPlanner(baseline, baseline.Calories())
	if err != nil {
		plannerError(c, "createSession", err)
		return
	}
	token, err := h.sessions.create(p)
	if err != nil {
		log.Printf("[createSession] %v", err)
		apiError(c, http.StatusServiceUnavailable, "too many active sessions, try again later")
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{Token: token, Week: newWeekView(p)})
}

// deleteSession ends the caller's session. Returns 204.
// DELETE /api/sessions.
func (h *Handler) deleteSession(c *gin.Context) {
	h.sessions.delete(c.GetString("session_token"))
	c.Status(http.StatusNoContent)
}

// sessionMiddleware resolves the Bearer token to a planner session and sets
// "session" and "session_token" on the context.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		sess, ok := h.sessions.get(token)
		if !ok {
			apiError(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Set("session_token", token)
		c.Next()
	}
}
