package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	MemberID string
	LoginID  string
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued after a completed sign-in.
type AccessTokenClaims struct {
	MemberID string `json:"member_id"`
	LoginID  string `json:"login_id"`
	jwt.RegisteredClaims
}
