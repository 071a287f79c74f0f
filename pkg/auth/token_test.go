package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/aerolinehq/ndc-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "aeroline-ndc",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	signed, err := MintAccessToken(cfg, now, AccessTokenPayload{
		MemberID: "member-123",
		LoginID:  "agent@example.com",
	})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.MemberID != "member-123" {
		t.Fatalf("unexpected member id %q", claims.MemberID)
	}
	if claims.LoginID != "agent@example.com" {
		t.Fatalf("unexpected login id %q", claims.LoginID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected generated jti")
	}
}

func TestMintAccessTokenValidation(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		cfg     config.JWTConfig
		payload AccessTokenPayload
		wantErr string
	}{
		{
			name:    "missing secret",
			cfg:     config.JWTConfig{Issuer: "x", ExpirationMinutes: 5},
			payload: AccessTokenPayload{MemberID: "m"},
			wantErr: "jwt secret is required",
		},
		{
			name:    "missing issuer",
			cfg:     config.JWTConfig{Secret: "s", ExpirationMinutes: 5},
			payload: AccessTokenPayload{MemberID: "m"},
			wantErr: "jwt issuer is required",
		},
		{
			name:    "missing member",
			cfg:     testJWTConfig(),
			payload: AccessTokenPayload{},
			wantErr: "member id is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := MintAccessToken(tc.cfg, now, tc.payload); err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{MemberID: "member-123"})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	if _, err := ParseAccessToken(other, signed); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now().Add(-time.Hour), AccessTokenPayload{MemberID: "member-123"})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}
