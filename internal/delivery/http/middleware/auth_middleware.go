package middleware

import (
	"context"
	"net/http"
	"strings"

	"bookline-schedule/pkg/jwt"
	"bookline-schedule/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ClientIDKey contextKey = "client_id"
	TokenIDKey  contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	enabled    bool
}

func NewAuthMiddleware(jwtService *jwt.JWTService, secret string) *AuthMiddleware {
	if secret == "" {
		logrus.Warn("JWT secret not configured, schedule API authentication disabled")
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		enabled:    secret != "",
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClientIDKey, claims.ClientID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientIDFromContext extracts the caller identity from context
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDKey).(string)
	return clientID, ok
}
