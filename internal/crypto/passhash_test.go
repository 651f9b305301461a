package crypto

import "testing"

func TestHashPassword_Randomized(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("s3cret", bcryptTestCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("s3cret", bcryptTestCost)
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if len(h1) == 0 || len(h2) == 0 {
		t.Fatalf("empty digest")
	}
	if h1 == h2 {
		t.Fatalf("two digests of the same password are equal — salt missing")
	}
}

func TestHashPassword_DefaultCostFallback(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("s3cret", 0)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword("s3cret", h) {
		t.Fatalf("digest from default cost does not verify")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple", bcryptTestCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword("", hash) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
	if VerifyPassword("correct horse battery staple", "not-a-bcrypt-digest") {
		t.Fatalf("VerifyPassword: expected false for garbage digest")
	}
}

// bcryptTestCost keeps the test suite fast; production cost comes from config.
const bcryptTestCost = 4
