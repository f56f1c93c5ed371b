package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"routediscovery/pkg/session"
	"routediscovery/pkg/utils"
)

// ContextAccessTokenKey is where the gate leaves the resolved access token for
// downstream handlers.
const ContextAccessTokenKey = "access_token"

// TokenRefresher exchanges a refresh token for a fresh token set.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*session.Token, error)
}

// SessionAuthMiddleware guards endpoints that need an authenticated user.
// No token in the session short-circuits with 401; an expired token triggers
// exactly one refresh before the handler runs, and a failed refresh clears the
// session entirely.
//
// Concurrent requests sharing an expired session are not serialized: each may
// issue its own refresh call (the provider's refresh endpoint is idempotent)
// and the last response wins the session cookie.
func SessionAuthMiddleware(refresher TokenRefresher, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		tok, ok := session.TokenFrom(sess)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if tok.Expired(time.Now()) {
			refreshed, err := refresher.Refresh(c.Request.Context(), tok.RefreshToken)
			if err != nil {
				logger.Error().Err(err).Msg("token refresh failed")
				if clearErr := session.Clear(sess); clearErr != nil {
					logger.Error().Err(clearErr).Msg("failed to clear session after refresh failure")
				}
				utils.RespondError(c, http.StatusUnauthorized, "Authentication expired, please re-authenticate")
				c.Abort()
				return
			}
			if err := session.SaveToken(sess, refreshed); err != nil {
				// The refreshed token is still good for this request.
				logger.Warn().Err(err).Msg("failed to persist refreshed token")
			}
			logger.Info().Msg("token refreshed for session")
			tok = refreshed
		}

		c.Set(ContextAccessTokenKey, tok.AccessToken)
		c.Next()
	}
}
