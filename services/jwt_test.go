package services

import (
	"testing"
	"time"
)

func testJWTService() *JWTService {
	return &JWTService{
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
		jwtSecretKey:         "test-secret",
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair("user-1")
	if err != nil {
		t.Fatal(err)
	}

	userID, err := svc.VerifyJWTToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("user id = %q, want user-1", userID)
	}

	userID, err = svc.VerifyRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh token rejected: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("user id = %q, want user-1", userID)
	}
}

func TestTokenKindMismatch(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair("user-1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.VerifyJWTToken(pair.RefreshToken); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
	if _, err := svc.VerifyRefreshToken(pair.AccessToken); err == nil {
		t.Fatal("access token accepted as refresh token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := testJWTService()

	token, err := svc.signToken("user-1", tokenKindAccess, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.VerifyJWTToken(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair("user-1")
	if err != nil {
		t.Fatal(err)
	}

	other := testJWTService()
	other.jwtSecretKey = "other-secret"

	if _, err := other.VerifyJWTToken(pair.AccessToken); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := testJWTService()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc123", "abc123", false},
		{"missing", "", "", true},
		{"no bearer prefix", "abc123", "", true},
		{"wrong scheme", "Basic abc123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ExtractTokenFromHeader(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
