package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Init sets the signing secret. Called once from main before any route is
// served.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

// Claims carried by the access token.
type Claims struct {
	EmployeeID uint `json:"employeeId"`
	jwt.RegisteredClaims
}

// TokenTTL is the access token lifetime.
const TokenTTL = 24 * time.Hour

// GenerateToken issues an HS256 token for the employee.
func GenerateToken(employeeID uint) (string, error) {
	claims := &Claims{
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(employeeID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken checks signature and expiry and returns the claims.
func ValidateToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return claims, nil
}
