package middleware

import (
	"net/http"
	"strconv"
)

// SecurityHeadersConfig configures security headers for JSON API responses
type SecurityHeadersConfig struct {
	// ContentTypeNosniff sets X-Content-Type-Options: nosniff
	ContentTypeNosniff bool

	// FrameOptions sets X-Frame-Options. API responses are never framed.
	FrameOptions string

	// ReferrerPolicy sets Referrer-Policy
	ReferrerPolicy string

	// NoStore sets Cache-Control: no-store so member-specific prices and
	// orders are never cached by intermediaries
	NoStore bool

	// HSTSMaxAge sets Strict-Transport-Security max-age in seconds.
	// 0 disables HSTS (development over plain HTTP).
	HSTSMaxAge int
}

// DefaultSecurityHeadersConfig returns the production configuration
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		ContentTypeNosniff: true,
		FrameOptions:       "DENY",
		ReferrerPolicy:     "no-referrer",
		NoStore:            true,
		HSTSMaxAge:         31536000, // 1 year
	}
}

// SecurityHeaders adds security headers to all responses
func SecurityHeaders(config SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if config.ContentTypeNosniff {
				h.Set("X-Content-Type-Options", "nosniff")
			}
			if config.FrameOptions != "" {
				h.Set("X-Frame-Options", config.FrameOptions)
			}
			if config.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", config.ReferrerPolicy)
			}
			if config.NoStore {
				h.Set("Cache-Control", "no-store")
			}
			if config.HSTSMaxAge > 0 {
				h.Set("Strict-Transport-Security", "max-age="+strconv.Itoa(config.HSTSMaxAge)+"; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
