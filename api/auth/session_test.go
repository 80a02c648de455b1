package auth

import (
	"testing"
	"time"
)

func TestMemoryStoreCreateValidate(t *testing.T) {
	store := NewMemoryStore(SessionTTL)

	token, err := store.Create(42)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Create returned empty token")
	}

	userID, ok := store.Validate(token)
	if !ok {
		t.Fatal("Validate rejected a freshly issued token")
	}
	if userID != 42 {
		t.Errorf("Validate returned userID %d, want 42", userID)
	}

	if _, ok := store.Validate("no-such-token"); ok {
		t.Error("Validate accepted an unknown token")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(-time.Second)

	token, err := store.Create(7)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, ok := store.Validate(token); ok {
		t.Fatal("Validate accepted an expired token")
	}

	// The expired entry must be evicted, not merely rejected
	store.mu.Lock()
	_, present := store.sessions[token]
	store.mu.Unlock()
	if present {
		t.Error("expired token was not evicted on lookup")
	}
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore(SessionTTL)

	token, err := store.Create(7)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	store.Destroy(token)
	if _, ok := store.Validate(token); ok {
		t.Error("Validate accepted a destroyed token")
	}

	// Destroying an unknown token must be a no-op
	store.Destroy("no-such-token")
}

func TestMemoryStoreSweep(t *testing.T) {
	expired := NewMemoryStore(-time.Second)
	for i := 0; i < 3; i++ {
		if _, err := expired.Create(uint(i + 1)); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}
	if removed := expired.Sweep(); removed != 3 {
		t.Errorf("Sweep removed %d entries, want 3", removed)
	}

	fresh := NewMemoryStore(SessionTTL)
	if _, err := fresh.Create(1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if removed := fresh.Sweep(); removed != 0 {
		t.Errorf("Sweep removed %d live entries, want 0", removed)
	}
}

func TestRandomTokenProperties(t *testing.T) {
	a, err := randomToken()
	if err != nil {
		t.Fatalf("randomToken returned error: %v", err)
	}
	b, err := randomToken()
	if err != nil {
		t.Fatalf("randomToken returned error: %v", err)
	}

	if a == b {
		t.Error("two tokens were identical")
	}
	// 32 random bytes encode to 43 base64url characters
	if len(a) != 43 {
		t.Errorf("token length = %d, want 43", len(a))
	}
}
