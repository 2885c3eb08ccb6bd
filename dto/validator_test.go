package dto

import "testing"

func TestRegisterRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"valid", RegisterRequest{Email: "a@b.com", Username: "collector1", Password: "GoodPass123"}, false},
		{"bad email", RegisterRequest{Email: "not-an-email", Username: "collector1", Password: "GoodPass123"}, true},
		{"short username", RegisterRequest{Email: "a@b.com", Username: "ab", Password: "GoodPass123"}, true},
		{"weak password", RegisterRequest{Email: "a@b.com", Username: "collector1", Password: "password"}, true},
		{"short password", RegisterRequest{Email: "a@b.com", Username: "collector1", Password: "Ab1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestScanRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     ScanRequest
		wantErr bool
	}{
		{"common", ScanRequest{Rarity: "common"}, false},
		{"ultra rare with type", ScanRequest{Rarity: "ultra_rare", CardType: "fire"}, false},
		{"unknown rarity", ScanRequest{Rarity: "mythic"}, true},
		{"missing rarity", ScanRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	err := RegisterRequest{Username: "collector1", Password: "GoodPass123"}.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := FormatValidationErrors(err)
	if len(formatted) != 1 {
		t.Fatalf("got %d errors, want 1", len(formatted))
	}
	if formatted[0].Field != "Email" {
		t.Fatalf("field = %q, want Email", formatted[0].Field)
	}
}
