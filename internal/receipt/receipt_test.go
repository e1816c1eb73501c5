package receipt

import (
	"reflect"
	"strings"
	"testing"
)

func TestSignVerify(t *testing.T) {
	s, err := NewSigner("test-secret")
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	in := Claims{Day: 3, Status: "won", Attempts: 2, Grid: []string{"⬛⬛🟩⬛⬛", "🟩🟩🟩🟩🟩"}}
	tok, err := s.Sign(in)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	got, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got.Day != in.Day || got.Status != in.Status || got.Attempts != in.Attempts || !reflect.DeepEqual(got.Grid, in.Grid) {
		t.Errorf("Verify() = %+v, want %+v", got, in)
	}
	if got.Issuer != "bossdle" || got.IssuedAt == nil {
		t.Errorf("registered claims not set: %+v", got.RegisteredClaims)
	}
}

func TestVerifyRejects(t *testing.T) {
	s, _ := NewSigner("test-secret")
	other, _ := NewSigner("other-secret")
	tok, err := s.Sign(Claims{Day: 1, Status: "lost"})
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(tok, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{name: "other key", token: tok},
		{name: "garbage", token: "not-a-token"},
		{name: "tampered payload", token: tampered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := s
			if tt.name == "other key" {
				verifier = other
			}
			if _, err := verifier.Verify(tt.token); err == nil {
				t.Error("expected verification failure")
			}
		})
	}
}

func TestNewSignerEmptySecret(t *testing.T) {
	if _, err := NewSigner(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
