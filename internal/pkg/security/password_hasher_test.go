package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret1" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if err := CheckPasswordHash("secret1", hash); err != nil {
		t.Errorf("CheckPasswordHash() with right password error = %v", err)
	}
	if err := CheckPasswordHash("wrong", hash); err == nil {
		t.Error("CheckPasswordHash() accepted the wrong password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("HashPassword() accepted an empty password")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password collided, salting broken")
	}
}
