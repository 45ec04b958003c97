package service

import "testing"

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for identical plaintext")
	}
	if !CheckPassword("correct horse", h1) || !CheckPassword("correct horse", h2) {
		t.Fatalf("both hashes must verify against the original plaintext")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	h, err := HashPassword("right")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if CheckPassword("wrong", h) {
		t.Fatalf("expected mismatch to verify false")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify false, not panic")
	}
}
