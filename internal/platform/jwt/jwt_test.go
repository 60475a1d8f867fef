package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// resolve runs one request through the Identity middleware and returns the
// username the downstream handler saw.
func resolve(t *testing.T, secret, authHeader string) string {
	t.Helper()

	var got string
	r := gin.New()
	r.Use(Identity(secret))
	r.GET("/", func(c *gin.Context) {
		got = Username(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "identity resolution must never reject a request")
	return got
}

func TestIdentity_ValidToken(t *testing.T) {
	t.Parallel()

	token, err := NewGenerator(testSecret, time.Hour).GenerateToken("alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", resolve(t, testSecret, "Bearer "+token))
}

func TestIdentity_FallsBackToGuest(t *testing.T) {
	t.Parallel()

	expired, err := NewGenerator(testSecret, -time.Hour).GenerateToken("alice")
	require.NoError(t, err)
	wrongSecret, err := NewGenerator("other-secret", time.Hour).GenerateToken("alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + wrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, GuestUsername, resolve(t, testSecret, tt.authHeader))
		})
	}
}

func TestIdentity_RejectsNonHMACAlgorithm(t *testing.T) {
	t.Parallel()

	// alg=none tokens must not be honored even with a valid-looking payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice"})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Equal(t, GuestUsername, resolve(t, testSecret, "Bearer "+tokenStr))
}

func TestGenerator_TokenClaims(t *testing.T) {
	t.Parallel()

	signed, err := NewGenerator(testSecret, time.Hour).GenerateToken("alice")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice", claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestUsername_WithoutMiddleware(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, GuestUsername, Username(c))
}
