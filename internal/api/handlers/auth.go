package handlers

import (
	"net/http"

	"github.com/howdythrift/server/internal/api/middleware"
	"github.com/howdythrift/server/internal/api/respond"
	"github.com/howdythrift/server/internal/auth"
	"github.com/howdythrift/server/internal/metrics"
)

// AuthHandler implements the admin login/logout pair. There is a single
// shared admin credential; a successful login issues a session JWT both in
// the response body and as an HttpOnly cookie.
type AuthHandler struct {
	passwordHash string
	jwt          *auth.JWTManager
}

func NewAuthHandler(passwordHash string, jwt *auth.JWTManager) *AuthHandler {
	return &AuthHandler{passwordHash: passwordHash, jwt: jwt}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Password required", err)
		return
	}
	if req.Password == "" {
		respond.Error(w, r, http.StatusBadRequest, "Password required", nil)
		return
	}

	if !auth.VerifyPassword(req.Password, h.passwordHash) {
		metrics.AdminLoginsTotal.WithLabelValues("rejected").Inc()
		respond.Error(w, r, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	metrics.AdminLoginsTotal.WithLabelValues("accepted").Inc()

	token, err := h.jwt.Generate()
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.jwt.Expiry().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	respond.JSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
