package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mud-ali/DIHacks2025/schema"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(nil, nil, "test-secret", false)
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestServer()

	masjidID := primitive.NewObjectID()
	user := &schema.User{
		ID:    primitive.NewObjectID(),
		Name:  "Owner",
		Email: "owner@example.org",
		Admin: []primitive.ObjectID{masjidID},
	}

	token, err := s.GenerateToken(user)
	assert.NoError(t, err)

	claims, err := s.parseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "owner@example.org", claims.Email)
	assert.Equal(t, []string{masjidID.Hex()}, claims.Admin)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := newTestServer()
	verifier := NewServer(nil, nil, "other-secret", false)

	token, err := issuer.GenerateToken(&schema.User{ID: primitive.NewObjectID()})
	assert.NoError(t, err)

	_, err = verifier.parseToken(token)
	assert.Error(t, err)
}

func TestAuthMissingTokenIs401(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access token required")
}

func TestAuthMalformedTokenIs403(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	// the caller cannot tell malformed from expired
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthNonBearerHeaderIs401(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
