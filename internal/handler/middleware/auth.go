package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"easebooking/internal/domain/user"
	"easebooking/internal/pkg/cookie"
	"easebooking/internal/pkg/jwt"
	"easebooking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware decodes the backend-issued session token and puts the
// caller's session into the request context. Decoding is local; the
// backend stays authoritative, since every downstream call forwards
// the raw token and its rejection surfaces as a session expiry.
type AuthMiddleware struct {
	tokens *jwt.Service
}

const ctxSessionKey = "session"

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		sess := shared.Session{
			Token:  token,
			UserID: claims.UserID,
			Role:   user.Role(claims.Role),
		}
		c.Set(ctxSessionKey, sess)
		c.Set("jwt_claims", map[string]any{
			"user_id": strconv.FormatInt(sess.UserID, 10),
			"role":    sess.Role.String(),
		})
		c.Next()
	}
}

// RequireRole gates a route group to one account role. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if sess.Role != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetSession(c *gin.Context) (shared.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return shared.Session{}, false
	}

	sess, ok := v.(shared.Session)
	return sess, ok
}
