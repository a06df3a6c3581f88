package luminahr

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the backend encodes into access tokens.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// InspectToken decodes the claims of an access token without verifying
// its signature; the signing secret never leaves the backend. Display
// only: validity is always decided by the backend's 401, never locally.
func InspectToken(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}
