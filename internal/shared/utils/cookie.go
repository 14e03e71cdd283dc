package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oficina/internal/shared/config"
)

const AccessTokenCookie = "access_token"

func cookieName(cfg config.CookieConfig) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return AccessTokenCookie
}

// SetAccessTokenCookie stores the access token in an HttpOnly cookie.
func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(cookieName(cfg), accessToken, maxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// GetTokenFromCookie returns the access token cookie or "".
func GetTokenFromCookie(c *gin.Context, cfg config.CookieConfig) string {
	token, err := c.Cookie(cookieName(cfg))
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
