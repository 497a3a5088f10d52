package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/mud-ali/DIHacks2025/schema"
)

// tokenValidity is the fixed lifetime of an access token. There is no
// refresh or revocation; an expired token means a fresh login.
const tokenValidity = 7 * 24 * time.Hour

// TokenClaims is what an access token embeds: the account, its email and
// the ids of the masajid it administers.
type TokenClaims struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Admin  []string `json:"admin"`
	jwt.StandardClaims
}

// GenerateToken signs an access token for the given user.
func (s *Server) GenerateToken(user *schema.User) (string, error) {
	claims := TokenClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Admin:  user.AdminHexIDs(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenValidity).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// parseToken verifies a token string. Callers only learn valid/invalid;
// signature, structure and expiry failures are indistinguishable on purpose.
func (s *Server) parseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// authTokenRequired checks "Authorization: Bearer <token>" and attaches the
// verified claims to the request context as "user".
func (s *Server) authTokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithEncoding(c, http.StatusUnauthorized, errorTokenRequired)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithEncoding(c, http.StatusUnauthorized, errorTokenRequired)
			return
		}

		claims, err := s.parseToken(parts[1])
		if err != nil {
			abortWithEncoding(c, http.StatusForbidden, errorTokenInvalid)
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// currentUser returns the verified token claims attached by
// authTokenRequired.
func currentUser(c *gin.Context) (*TokenClaims, bool) {
	claims, ok := c.MustGet("user").(*TokenClaims)
	return claims, ok
}
