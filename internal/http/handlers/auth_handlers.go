package handlers

import (
	"errors"
	"net/http"

	"github.com/oldenfyre/inventory-console/internal/session"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type SessionResult struct {
	State         string `json:"state"`
	Authenticated bool   `json:"authenticated"`
}

// LoginHandler godoc
// @Summary Log in with the shared console password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, fail("invalid input"))
		return
	}

	if err := requireGate().Login(req.Password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, fail("Invalid password"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, fail("could not save session"))
		return
	}

	writeJSON(w, http.StatusOK, okMsg("Login successful", nil))
}

// LogoutHandler godoc
// @Summary Drop the current session
// @Tags auth
// @Produce json
// @Success 200 {object} Response
// @Router /auth/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	requireGate().Logout()
	writeJSON(w, http.StatusOK, okMsg("Logged out", nil))
}

// SessionHandler godoc
// @Summary Report the current session state
// @Tags auth
// @Produce json
// @Success 200 {object} Response
// @Router /auth/session [get]
func SessionHandler(w http.ResponseWriter, r *http.Request) {
	g := requireGate()
	writeJSON(w, http.StatusOK, ok(SessionResult{
		State:         g.State().String(),
		Authenticated: g.Authenticated(),
	}))
}
