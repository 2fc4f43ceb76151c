package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pokewiki/pokewiki/pkg/token"
)

// CallerIDKey is the gin context key holding the verified caller identity.
const CallerIDKey = "caller_id"

// Auth returns a middleware that resolves the caller identity from the
// Authorization header. The token itself is issued by the external
// credential service; only verification happens here.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		claims, err := token.Validate(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		c.Set(CallerIDKey, claims.UserID)
		c.Next()
	}
}

// CallerID extracts the verified caller identity from the request context.
func CallerID(c *gin.Context) (string, error) {
	value, exists := c.Get(CallerIDKey)
	if !exists {
		return "", errors.New("caller identity not found in context")
	}

	id, ok := value.(string)
	if !ok || id == "" {
		return "", errors.New("caller identity has unexpected type")
	}
	return id, nil
}
