package utils

import "errors"

var (
	ErrAuthExchange  = errors.New("authorization code exchange failed")
	ErrTokenRefresh  = errors.New("token refresh failed")
	ErrUpstreamAPI   = errors.New("upstream api failure")
	ErrPoiResolution = errors.New("poi resolution failed")
	ErrInvalidRoute  = errors.New("invalid route")
)
