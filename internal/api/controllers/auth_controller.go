package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"routediscovery/internal/models/response_models"
	"routediscovery/internal/services"
	"routediscovery/pkg/session"
	"routediscovery/pkg/utils"
)

type AuthController struct {
	tokenService services.TokenServiceInterface
	frontendURL  string
	logger       zerolog.Logger
}

func NewAuthController(tokenService services.TokenServiceInterface, frontendURL string, logger zerolog.Logger) *AuthController {
	return &AuthController{
		tokenService: tokenService,
		frontendURL:  frontendURL,
		logger:       logger,
	}
}

// Login redirects the user to Strava's authorization page.
func (a *AuthController) Login(c *gin.Context) {
	c.Redirect(http.StatusFound, a.tokenService.AuthorizationURL(callbackURL(c.Request)))
}

// Callback handles the redirect back from Strava, exchanging the one-time
// code for tokens and storing them in the session.
func (a *AuthController) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		a.logger.Warn().Msg("auth callback received without code")
		utils.RespondError(c, http.StatusBadRequest, "Authorization code not provided")
		return
	}

	tok, err := a.tokenService.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		a.logger.Error().Err(err).Msg("authentication failed")
		utils.RespondError(c, http.StatusInternalServerError, "Authentication failed")
		return
	}

	if err := session.SaveToken(sessions.Default(c), tok); err != nil {
		a.logger.Error().Err(err).Msg("failed to store token in session")
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.logger.Info().Msg("user successfully authenticated with strava")
	c.Redirect(http.StatusFound, a.frontendURL+"/activities")
}

// Status reports whether the session carries an unexpired token.
func (a *AuthController) Status(c *gin.Context) {
	tok, ok := session.TokenFrom(sessions.Default(c))
	authenticated := ok && !tok.Expired(time.Now())
	c.JSON(http.StatusOK, response_models.AuthStatusResponse{Authenticated: authenticated})
}

// Logout clears the session.
func (a *AuthController) Logout(c *gin.Context) {
	if err := session.Clear(sessions.Default(c)); err != nil {
		a.logger.Error().Err(err).Msg("failed to clear session")
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response_models.MessageResponse{Message: "Successfully logged out"})
}

func callbackURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/auth/strava/callback", scheme, r.Host)
}
