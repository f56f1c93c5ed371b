package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"routediscovery/pkg/session"
	"routediscovery/pkg/utils"
)

const (
	stravaAuthorizeURL = "https://www.strava.com/oauth/authorize"
	stravaTokenURL     = "https://www.strava.com/oauth/token"

	tokenExchangeTimeout = 10 * time.Second
)

type TokenServiceInterface interface {
	AuthorizationURL(redirectURI string) string
	ExchangeCode(ctx context.Context, code string) (*session.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*session.Token, error)
}

// TokenService owns the OAuth2 authorization-code exchange and refresh
// against Strava. It is stateless beyond the client credentials; callers
// persist the returned tokens.
type TokenService struct {
	oauth  *oauth2.Config
	client *http.Client
	logger zerolog.Logger
}

func NewTokenService(clientID, clientSecret string, logger zerolog.Logger) TokenServiceInterface {
	return &TokenService{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  stravaAuthorizeURL,
				TokenURL: stravaTokenURL,
			},
			// Strava wants its scopes comma-separated in a single value.
			Scopes: []string{"read,activity:read_all"},
		},
		client: &http.Client{Timeout: tokenExchangeTimeout},
		logger: logger,
	}
}

func (s *TokenService) AuthorizationURL(redirectURI string) string {
	cfg := *s.oauth
	cfg.RedirectURL = redirectURI
	return cfg.AuthCodeURL("", oauth2.SetAuthURLParam("approval_prompt", "force"))
}

func (s *TokenService) ExchangeCode(ctx context.Context, code string) (*session.Token, error) {
	tok, err := s.oauth.Exchange(s.httpCtx(ctx), code)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to exchange code for token")
		return nil, fmt.Errorf("%w: %v", utils.ErrAuthExchange, err)
	}
	return fromOAuthToken(tok), nil
}

func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*session.Token, error) {
	s.logger.Info().Msg("refreshing strava access token")
	src := s.oauth.TokenSource(s.httpCtx(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to refresh token")
		return nil, fmt.Errorf("%w: %v", utils.ErrTokenRefresh, err)
	}
	refreshed := fromOAuthToken(tok)
	if refreshed.RefreshToken == "" {
		// The provider may not rotate the refresh token.
		refreshed.RefreshToken = refreshToken
	}
	s.logger.Info().Msg("token refreshed successfully")
	return refreshed, nil
}

// httpCtx pins the oauth2 transport to our client so the exchange timeout
// applies.
func (s *TokenService) httpCtx(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.client)
}

func fromOAuthToken(tok *oauth2.Token) *session.Token {
	return &session.Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry.Unix(),
	}
}
