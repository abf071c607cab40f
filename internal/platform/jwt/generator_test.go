package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen, ok := NewGenerator(tt.secret, tt.expiration).(*generator)
			if !ok {
				t.Fatal("expected *generator")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたJWTトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		subject    string
		expiration time.Duration
	}{
		{"dashboard client", "dashboard", time.Hour},
		{"client with symbols", "bot+eu@example.com", time.Hour},
		{"long lived", "warm-job", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			secret := "test-secret"
			fixed := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
			gen := &generator{secret: []byte(secret), expiration: tt.expiration, now: func() time.Time { return fixed }}

			tokenStr, err := gen.GenerateToken(tt.subject)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			claims := &jwt.RegisteredClaims{}
			_, err = jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithTimeFunc(func() time.Time { return fixed }))
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}

			if claims.Subject != tt.subject {
				t.Errorf("expected sub %q, got %q", tt.subject, claims.Subject)
			}
			if claims.Issuer != Issuer {
				t.Errorf("expected iss %q, got %q", Issuer, claims.Issuer)
			}
			if !claims.ExpiresAt.Time.Equal(fixed.Add(tt.expiration)) {
				t.Errorf("expected exp %v, got %v", fixed.Add(tt.expiration), claims.ExpiresAt.Time)
			}
			if !claims.IssuedAt.Time.Equal(fixed) {
				t.Errorf("expected iat %v, got %v", fixed, claims.IssuedAt.Time)
			}
		})
	}
}

// TestGenerator_GenerateToken_Invalid は必須項目が欠けている場合にエラーを返すことを検証します。
func TestGenerator_GenerateToken_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewGenerator("secret", time.Hour).GenerateToken(""); err == nil {
		t.Error("expected error for empty subject")
	}
	if _, err := NewGenerator("", time.Hour).GenerateToken("client"); err == nil {
		t.Error("expected error for empty secret")
	}
}

// TestGenerator_DifferentSecrets は異なる秘密鍵で署名されたトークンが検証に失敗することを検証します。
func TestGenerator_DifferentSecrets(t *testing.T) {
	t.Parallel()

	tokenStr, err := NewGenerator("secret-a", time.Hour).GenerateToken("client")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Error("expected signature validation to fail with a different secret")
	}
}
