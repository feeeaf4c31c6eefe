package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UIDKey is the gin context key under which Auth stores the
// authenticated user's uid.
const UIDKey = "uid"

// TokenVerifier validates a Firebase ID token and returns the uid it
// belongs to. Implemented by pkg.AuthClient.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

// Auth returns a gin middleware that authenticates requests with a
// Firebase ID token from the Authorization header. A missing header, a
// missing "Bearer " prefix, an empty token and a failed verification
// are all distinct 401 responses.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg := extractBearerToken(c.GetHeader("Authorization"))
		if errMsg != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsg})
			return
		}

		uid, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UIDKey, uid)
		c.Next()
	}
}

// extractBearerToken extracts a bearer token from the Authorization
// header. Returns the token and an error message (empty on success).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "Authorization token is missing"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "Invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "Authorization token is missing"
	}
	return token, ""
}

// UID returns the uid set by Auth for the current request.
func UID(c *gin.Context) string {
	return c.GetString(UIDKey)
}
