package hash

import "testing"

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("supersecret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "supersecret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Check(h, "supersecret") {
		t.Fatal("expected match for correct password")
	}
	if Check(h, "wrong") {
		t.Fatal("expected mismatch for wrong password")
	}
}
