package jwtmw

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUsername is the gin context key holding the resolved username.
const ContextUsername = "username"

// GuestUsername is the sentinel identity used when no valid token is
// presented. Identity here is a session convenience, not authentication, so
// anonymous callers are served as Guest rather than rejected.
const GuestUsername = "Guest"

// Identity returns a Gin middleware function that resolves the caller's
// username from a bearer token. A missing, malformed, or expired token
// resolves to GuestUsername; the request is never aborted.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUsername, GuestUsername)

		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Parse and verify the signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		// 3. Extract the username claim
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok && sub != "" {
				c.Set(ContextUsername, sub)
			}
		}
		c.Next()
	}
}

// Username returns the identity resolved by the Identity middleware,
// defaulting to GuestUsername when the middleware did not run.
func Username(c *gin.Context) string {
	if v, ok := c.Get(ContextUsername); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return GuestUsername
}
