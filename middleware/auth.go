package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/klubapp/klub-backend/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// credentialsKey is the gin context key the validated credentials live under
const credentialsKey = "auth_credentials"

// Credentials are the identity-provider claims attached to a request. They
// are carried explicitly on the request context rather than read from
// ambient session state.
type Credentials struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager validates session tokens issued by the identity provider
type JWTManager struct {
	secretKey []byte
}

// NewJWTManager creates a JWT manager with the given shared secret
func NewJWTManager(secretKey string) *JWTManager {
	return &JWTManager{secretKey: []byte(secretKey)}
}

// NewJWTManagerFromEnv creates a JWT manager from AUTH_JWT_SECRET
func NewJWTManagerFromEnv() *JWTManager {
	return NewJWTManager(os.Getenv("AUTH_JWT_SECRET"))
}

// Validate parses and validates a session token, returning its credentials
func (m *JWTManager) Validate(tokenString string) (*Credentials, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Credentials{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	creds, ok := token.Claims.(*Credentials)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return creds, nil
}

// GetCredentials returns the request's validated credentials, or nil for an
// unauthenticated request.
func GetCredentials(c *gin.Context) *Credentials {
	value, exists := c.Get(credentialsKey)
	if !exists {
		return nil
	}
	creds, _ := value.(*Credentials)
	return creds
}

// OptionalAuth validates a bearer token when one is present and attaches the
// credentials to the request context. Requests without a token pass through
// unauthenticated.
func OptionalAuth(manager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		if creds, err := manager.Validate(tokenString); err == nil {
			c.Set(credentialsKey, creds)
		}
		c.Next()
	}
}

// RequireRole rejects requests without a valid token carrying the given
// role: 401 when unauthenticated, 403 when the role does not match.
func RequireRole(manager *JWTManager, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		creds, err := manager.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}
		if creds.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		c.Set(credentialsKey, creds)
		c.Next()
	}
}

// RequireOwner is RequireRole for restaurant-owner accounts
func RequireOwner(manager *JWTManager) gin.HandlerFunc {
	return RequireRole(manager, models.RoleOwner)
}

func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}
