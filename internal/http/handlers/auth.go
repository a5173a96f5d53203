package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"flightfare/internal/domain"
	"flightfare/internal/http/middleware"
	"flightfare/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	if !h.Env.AuthEnabled() {
		respondError(c, http.StatusServiceUnavailable, "auth_disabled", "admin login is not configured", nil)
		return
	}

	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Env.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(h.Env.AdminPasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login_failed", "username="+req.Username)
		RespondDomainError(c, domain.UnauthorizedError{Msg: "invalid username or password"})
		return
	}

	now := h.now()
	token, err := middleware.IssueToken(h.Env.JWTSecret, req.Username, "admin", tokenTTL, now)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_failed", "failed to create token", nil)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "username="+req.Username)
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": now.Add(tokenTTL),
	})
}
