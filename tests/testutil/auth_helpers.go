package testutil

import (
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"

	"github.com/acme-gaming/acme-store-api/middleware"
)

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(subject, issuer, role string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  issuer,
			Subject: subject,
		},
		CustomClaims: &middleware.CustomClaims{
			Role: role,
		},
	}
}

// MockAuthMiddleware simulates the JWT middleware for testing.
// It sets up the context exactly as the real EnsureValidToken middleware does.
func MockAuthMiddleware(subject, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := MockValidatedClaims(subject, "https://test.auth0.com/", role)
		c.Set("user_id", subject)
		c.Set("validated_claims", claims)
		c.Next()
	}
}
