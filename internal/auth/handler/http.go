// Package handler exposes the session lifecycle over HTTP and maps service
// errors onto status codes.
package handler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/braven85/Questify-Backend/internal/audit"
	auditdomain "github.com/braven85/Questify-Backend/internal/audit/domain"
	"github.com/braven85/Questify-Backend/internal/auth/service"
	"github.com/braven85/Questify-Backend/internal/security"
	"github.com/braven85/Questify-Backend/internal/server/middleware"
)

// Handler serves the /users endpoints.
type Handler struct {
	svc   *service.Service
	audit *audit.Logger
}

// New wires a Handler. audit may be nil.
func New(svc *service.Service, auditLogger *audit.Logger) *Handler {
	return &Handler{svc: svc, audit: auditLogger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Sid string `json:"sid"`
}

type userData struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

type authResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Sid          string   `json:"sid"`
	UserData     userData `json:"userData"`
}

// Register handles POST /users/register. It creates the account but opens no
// session; the client logs in afterwards.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	account, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.audit.Log(r.Context(), account.ID, auditdomain.ActionRegister, clientIP(r), "")
	writeJSON(w, http.StatusCreated, userData{Email: account.Email, ID: account.ID})
}

// Login handles POST /users/login. A success replaces any existing session
// for the account.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) || errors.Is(err, service.ErrEmailNotRegistered) {
			h.audit.Log(r.Context(), "", auditdomain.ActionLoginFailure, clientIP(r), req.Email)
		}
		h.writeServiceError(w, err)
		return
	}
	h.audit.Log(r.Context(), res.User.ID, auditdomain.ActionLoginSuccess, clientIP(r), "")
	writeJSON(w, http.StatusOK, authResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Sid:          res.Sid,
		UserData:     userData{Email: res.User.Email, ID: res.User.ID},
	})
}

// Refresh handles POST /users/refresh. The refresh token rides in the
// Authorization header; the sid the client believes it holds rides in the body.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	res, err := h.svc.Refresh(r.Context(), middleware.BearerToken(r), req.Sid)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.audit.Log(r.Context(), res.User.ID, auditdomain.ActionTokenRefresh, clientIP(r), "")
	writeJSON(w, http.StatusOK, authResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Sid:          res.Sid,
		UserData:     userData{Email: res.User.Email, ID: res.User.ID},
	})
}

// Logout handles POST /users/logout using the access token from the
// Authorization header.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	account, err := h.svc.Logout(r.Context(), middleware.BearerToken(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.audit.Log(r.Context(), account.ID, auditdomain.ActionLogout, clientIP(r), "")
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /users/me. It runs behind RequireToken and echoes the
// authenticated account, letting clients verify a stored token pair.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, userData{Email: identity.User.Email, ID: identity.User.ID})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMissingToken):
		writeError(w, http.StatusUnauthorized, "missing token")
	case errors.Is(err, security.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "token expired")
	case errors.Is(err, security.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusUnauthorized, "session is no longer active")
	case errors.Is(err, service.ErrBadCredentials):
		writeError(w, http.StatusForbidden, "wrong password")
	case errors.Is(err, service.ErrSidMismatch):
		writeError(w, http.StatusForbidden, "wrong sid provided")
	case errors.Is(err, service.ErrEmailNotRegistered):
		writeError(w, http.StatusNotFound, "email not registered")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrNoActiveSession):
		writeError(w, http.StatusNotFound, "no active session")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
