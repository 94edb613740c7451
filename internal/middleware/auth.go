// Package middleware holds the gin handlers that run before the controllers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	principalKey      = "principal"
	AccessTokenCookie = "access_token"
)

// Authenticate accepts a bearer token or the access_token cookie and stores the caller's
// Principal in the context.
func Authenticate(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(AccessTokenCookie)
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}

		principal, err := auth.ParseAccessToken(token)
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		if !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin role required"})
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the caller stored by Authenticate.
func PrincipalFrom(c *gin.Context) (service.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return service.Principal{}, false
	}
	p, ok := v.(service.Principal)
	return p, ok
}

// SetPrincipal stores p as the authenticated caller.
func SetPrincipal(c *gin.Context, p service.Principal) {
	c.Set(principalKey, p)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
