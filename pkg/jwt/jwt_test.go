package jwt

import (
	"testing"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService()
	establishmentID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(establishmentID, "contato@studiobela.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}
	if tokenID == "" {
		t.Fatal("GenerateAccessToken() returned an empty token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.EstablishmentID != establishmentID {
		t.Errorf("establishment id = %s, want %s", claims.EstablishmentID, establishmentID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %s, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id mismatch")
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "contato@studiobela.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %s, want refresh", claims.TokenType)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "contato@studiobela.com")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "contato@studiobela.com")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}
