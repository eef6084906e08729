package handlers

import (
	"errors"
	"net/http"

	"github.com/JorgegrDev/medic-action/internal/auth"
	"github.com/JorgegrDev/medic-action/internal/dto"
	"github.com/JorgegrDev/medic-action/internal/logging"
	"github.com/JorgegrDev/medic-action/internal/service"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session_id"

// AuthHandler handles login, register, Google sign-in and logout.
type AuthHandler struct {
	sessions   *auth.Store
	userSvc    *service.UserService
	sessionAge int // cookie max age in seconds
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions *auth.Store, userSvc *service.UserService, sessionAgeSeconds int) *AuthHandler {
	if sessionAgeSeconds <= 0 {
		sessionAgeSeconds = 24 * 60 * 60
	}
	return &AuthHandler{sessions: sessions, userSvc: userSvc, sessionAge: sessionAgeSeconds}
}

// Login godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		logging.Logger.Error("login failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	h.startSession(c, http.StatusOK, user.ID, user.Email)
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		logging.Logger.Error("registration failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	h.startSession(c, http.StatusCreated, user.ID, user.Email)
}

// Google godoc
// @Summary      Sign in with a Google id token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GoogleSignInRequest  true  "Google id token"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/google [post]
func (h *AuthHandler) Google(c *gin.Context) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.GoogleSignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidIDToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid google token"})
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		logging.Logger.Error("google sign-in failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "google sign-in failed"})
		return
	}
	h.startSession(c, http.StatusOK, user.ID, user.Email)
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, userID int64, email string) {
	sessionID, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		logging.WithUser(userID).Error("session create failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(sessionCookieName, sessionID, h.sessionAge, "/", "", false, true) // httpOnly
	c.JSON(status, gin.H{"ok": true, "user": dto.UserResponse{ID: userID, Email: email}})
}
