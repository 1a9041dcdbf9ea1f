//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	golangjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"easebooking/internal/domain/user"
	"easebooking/internal/handler/middleware"
	"easebooking/internal/pkg/cookie"
	"easebooking/internal/pkg/jwt"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID int64, role string, expiry time.Duration) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: golangjwt.RegisteredClaims{
			ExpiresAt: golangjwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	signed, err := golangjwt.NewWithClaims(golangjwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	mw := middleware.NewAuthMiddleware(jwt.NewService(testSecret))

	s.router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": sess.UserID, "role": sess.Role.String(), "token": sess.Token})
	})
	s.router.GET("/owner-only", mw.RequireAuth(), mw.RequireRole(user.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) perform(path, bearer string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token builds a session", func() {
		token := signToken(s.T(), 7, "Visitor", time.Hour)

		w := s.perform("/me", token)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"userId":7`)
		s.Contains(w.Body.String(), `"role":"Visitor"`)
	})

	s.Run("success: cookie token works without a header", func() {
		token := signToken(s.T(), 7, "Visitor", time.Hour)

		w := s.perform("/me", "", &http.Cookie{Name: cookie.AccessTokenCookieName, Value: token})

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("failure: missing token returns 401", func() {
		w := s.perform("/me", "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("failure: expired token returns 401", func() {
		token := signToken(s.T(), 7, "Visitor", -time.Hour)

		w := s.perform("/me", token)

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("failure: unknown role returns 401", func() {
		token := signToken(s.T(), 7, "Superuser", time.Hour)

		w := s.perform("/me", token)

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("failure: token signed with another secret returns 401", func() {
		claims := jwt.Claims{UserID: 7, Role: "Visitor", RegisteredClaims: golangjwt.RegisteredClaims{
			ExpiresAt: golangjwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		forged, err := golangjwt.NewWithClaims(golangjwt.SigningMethodHS256, claims).SignedString([]byte("wrong"))
		require.NoError(s.T(), err)

		w := s.perform("/me", forged)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("success: owner passes the owner gate", func() {
		token := signToken(s.T(), 3, "Owner", time.Hour)

		w := s.perform("/owner-only", token)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("failure: visitor is rejected with 403", func() {
		token := signToken(s.T(), 7, "Visitor", time.Hour)

		w := s.perform("/owner-only", token)

		assert.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}
