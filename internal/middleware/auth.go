package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sunjoe508/inteligent-munga/internal/services"
	"github.com/sunjoe508/inteligent-munga/internal/utils"
)

type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// NewSessionToken — подписанный токен сессии. Без exp: единственное
// правило истечения — 30 минут неактивности, его ведёт SessionService.
func NewSessionToken(username, email string, key []byte) (string, error) {
	nonce, err := utils.NewSessionNonce(16)
	if err != nil {
		return "", err
	}
	claims := &Claims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       nonce,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// SessionMiddleware — шлюз операторских маршрутов: Bearer-токен должен
// совпадать с токеном живой сессии. Каждый прошедший запрос считается
// активностью и продлевает сессию (Touch).
func SessionMiddleware(sessions *services.SessionService, key []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(parts[1])

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			// принимаем только HMAC
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		// просроченную по неактивности сессию добиваем прямо здесь,
		// не дожидаясь janitor-тика
		sessions.Tick()

		current := sessions.Current()
		if current == nil || current.Token != tokenStr {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
			return
		}

		if err := sessions.Touch(); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session"})
			return
		}

		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}
