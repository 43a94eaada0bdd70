package utils

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("secret", "sess-1", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !tok.Exp.After(time.Now()) {
		t.Fatalf("exp in the past: %v", tok.Exp)
	}
	id, err := ParseSessionToken("secret", tok.Token)
	if err != nil || id != "sess-1" {
		t.Fatalf("parse = %q, %v", id, err)
	}
}

func TestSessionTokenRejected(t *testing.T) {
	good, _ := NewSessionToken("secret", "sess-1", time.Minute)
	expired, _ := NewSessionToken("secret", "sess-1", -time.Minute)
	empty, _ := NewSessionToken("secret", "", time.Minute)

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{"wrong secret", "other", good.Token},
		{"expired", "secret", expired.Token},
		{"no subject", "secret", empty.Token},
		{"garbage", "secret", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.secret, tt.raw); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestSessionTokenAtUsesIssueTime(t *testing.T) {
	issued := time.Now().Add(30 * time.Second)
	tok, err := NewSessionTokenAt("secret", "sess-1", issued, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if want := issued.UTC().Add(time.Minute); !tok.Exp.Equal(want) {
		t.Fatalf("exp = %v, want %v", tok.Exp, want)
	}
	if id, err := ParseSessionToken("secret", tok.Token); err != nil || id != "sess-1" {
		t.Fatalf("parse = %q, %v", id, err)
	}
}
