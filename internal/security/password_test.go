package security

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "secret123" {
		t.Error("Hash() returned the plain password")
	}

	if !hasher.Verify("secret123", hash) {
		t.Error("Verify() rejected the correct password")
	}
	if hasher.Verify("wrong", hash) {
		t.Error("Verify() accepted the wrong password")
	}
}

func TestPasswordHasher_Verify_InvalidHash(t *testing.T) {
	hasher := NewPasswordHasher()

	if hasher.Verify("secret123", "not-a-bcrypt-hash") {
		t.Error("Verify() accepted a malformed hash")
	}
}
