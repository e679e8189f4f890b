package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/usecase"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/dto"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/api/middleware"
)

// CookieSettings controls how the session cookie is written
type CookieSettings struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles registration, login, logout and password changes
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookie      CookieSettings
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, cookie CookieSettings, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookie:      cookie,
		logger:      logger,
	}
}

// setSessionCookie writes the session token as an HTTP-only cookie
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
}

// clearSessionCookie expires the session cookie immediately
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		apologyFor(c, errs.ErrMissingInput)
		return
	}

	token, err := h.authUseCase.Register(c.Request.Context(), form.Username, form.Password, form.Confirmation)
	if err != nil {
		apologyFor(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		apologyFor(c, errs.ErrInvalidCredentials)
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		apologyFor(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err == nil && token != "" {
		if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
			h.logger.Warn("Failed to destroy session on logout", map[string]any{
				"error": err.Error(),
			})
		}
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowChangePassword handles GET /pswdchange
func (h *AuthHandler) ShowChangePassword(c *gin.Context) {
	c.HTML(http.StatusOK, "pswdchange.html", nil)
}

// ChangePassword handles POST /pswdchange
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apologyFor(c, errs.ErrUnauthenticated)
		return
	}

	var form dto.PasswordChangeForm
	if err := c.ShouldBind(&form); err != nil {
		apologyFor(c, errs.ErrMissingInput)
		return
	}

	if err := h.authUseCase.ChangePassword(c.Request.Context(), username, form.OldPassword, form.NewPassword); err != nil {
		apologyFor(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
