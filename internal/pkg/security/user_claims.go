package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret     string
	jwtExpiration time.Duration
)

// Init sets the signing secret and token lifetime from configuration.
// Must be called once before tokens are issued or validated.
func Init(secret string, expiryHours int) {
	jwtSecret = secret
	jwtExpiration = time.Duration(expiryHours) * time.Hour
}

// UserClaims carries the identity information embedded in each token.
type UserClaims struct {
	UserID  uint64 `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
