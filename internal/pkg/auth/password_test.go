package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	if h := NewBcryptHasher(0); h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
	if h := NewBcryptHasher(bcrypt.MaxCost + 1); h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost for out-of-range value, got %d", h.cost)
	}
	if h := NewBcryptHasher(bcrypt.MinCost); h.cost != bcrypt.MinCost {
		t.Fatalf("expected min cost to be respected, got %d", h.cost)
	}
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("Abcdef1!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" || hash == "Abcdef1!" {
		t.Fatalf("expected opaque hash, got %q", hash)
	}
	if err := hasher.Compare(hash, "Abcdef1!"); err != nil {
		t.Fatalf("compare with correct password: %v", err)
	}
}

func TestBcryptHasher_RejectsMutations(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	const password = "Abcdef1!"
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	for i := range password {
		mutated := []byte(password)
		mutated[i] ^= 0x01
		if err := hasher.Compare(hash, string(mutated)); err == nil {
			t.Fatalf("expected mismatch for mutation at index %d", i)
		}
	}
}

func TestBcryptHasher_CompareAcrossCosts(t *testing.T) {
	low := NewBcryptHasher(bcrypt.MinCost)
	high := NewBcryptHasher(bcrypt.MinCost + 1)
	hash, err := low.Hash("Abcdef1!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	// The encoded hash self-describes its cost.
	if err := high.Compare(hash, "Abcdef1!"); err != nil {
		t.Fatalf("compare across costs: %v", err)
	}
}
