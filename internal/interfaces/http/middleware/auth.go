package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oficina/internal/shared/config"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/logger"
	"oficina/internal/shared/utils"
)

// TokenVerifier resolves an access token to the admin id it was issued for.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	cookie   config.CookieConfig
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, cookie config.CookieConfig, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		cookie:   cookie,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}
			token = strings.TrimSpace(parts[1])
		}

		// Cookie mode: browsers send the token as an HttpOnly cookie.
		if token == "" && m.cookie.Enabled {
			token = utils.GetTokenFromCookie(c, m.cookie)
		}

		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		adminID, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Debugw("failed to verify token", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, adminID)
		c.Next()
	}
}
