package gate

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 24*time.Hour)

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !issuer.Verify(token) {
		t.Fatal("fresh token should verify")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 24*time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return now }

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	now = now.Add(25 * time.Hour)
	if issuer.Verify(token) {
		t.Fatal("token should expire after 24h")
	}
}

func TestForeignAndGarbageTokensRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)
	other := NewTokenIssuer("other-secret", 0)

	token, err := other.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if issuer.Verify(token) {
		t.Fatal("token signed with another secret should fail")
	}
	if issuer.Verify("not-a-token") {
		t.Fatal("garbage should fail")
	}
}
