package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/itsnaruto045-hub/EBONZ/internal/auth/domain"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/jwt"
)

const (
	authHeaderName = "Authorization"

	AccountIDContextKey = "account-id"
	UsernameContextKey  = "account-username"
	RoleContextKey      = "account-role"
)

func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser) gin.HandlerFunc {
	secret := []byte(secretKey)

	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(AccountIDContextKey, claims.AccountID)
		c.Set(UsernameContextKey, claims.Username)
		c.Set(RoleContextKey, claims.Role)
		c.Next()
	}
}

func NewAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleContextKey) != authdomain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errors": "admin role required"})
			return
		}

		c.Next()
	}
}
