package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IsPeeves/lumenixorg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/clients", AuthMiddleware(), func(c *gin.Context) {
		userID := c.GetUint("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func signToken(t *testing.T, key []byte, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"email":   "admin@lumenix.com",
		"exp":     time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	config.JwtKey = []byte("test-secret")
	r := protectedRouter()

	do := func(mutate func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		if mutate != nil {
			mutate(req)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid bearer token", func(t *testing.T) {
		token := signToken(t, config.JwtKey, time.Hour)
		w := do(func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("cookie fallback", func(t *testing.T) {
		token := signToken(t, config.JwtKey, time.Hour)
		w := do(func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("missing token", func(t *testing.T) {
		if w := do(nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		w := do(func(req *http.Request) {
			req.Header.Set("Authorization", "Token abc")
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, config.JwtKey, -time.Hour)
		w := do(func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token := signToken(t, []byte("other-secret"), time.Hour)
		w := do(func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})
}
