package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateVaultKey_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	k1, err := svc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}
	k2, err := svc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("vault key length = %d, want 32", len(k1))
	}
	if len(k2) != 32 {
		t.Fatalf("vault key length = %d, want 32", len(k2))
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected vault keys to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKey(password, salt)
	k2 := svc.DeriveKey(password, salt)

	if len(k1) != 32 {
		t.Fatalf("derived key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected derived keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1 := svc.DeriveKey(password, salt1)
	k2 := svc.DeriveKey(password, salt2)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestWrapVaultKey_UnwrapRoundTrip(t *testing.T) {
	svc := NewKeyChainService()

	vaultKey := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32) // valid AES-256 key length

	blob, err := svc.WrapVaultKey(vaultKey, kek)
	if err != nil {
		t.Fatalf("WrapVaultKey error: %v", err)
	}

	got, err := svc.UnwrapVaultKey(blob, kek)
	if err != nil {
		t.Fatalf("UnwrapVaultKey error: %v", err)
	}
	if !bytes.Equal(got, vaultKey) {
		t.Fatalf("unwrapped vault key mismatch")
	}
}

func TestUnwrapVaultKey_WrongKEKFails(t *testing.T) {
	svc := NewKeyChainService()

	vaultKey := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32)
	wrongKEK := bytes.Repeat([]byte{0x2B}, 32)

	blob, err := svc.WrapVaultKey(vaultKey, kek)
	if err != nil {
		t.Fatalf("WrapVaultKey error: %v", err)
	}

	if _, err := svc.UnwrapVaultKey(blob, wrongKEK); err == nil {
		t.Fatalf("expected unwrap with wrong KEK to fail")
	}
}

func TestUnwrapVaultKey_TruncatedBlobFails(t *testing.T) {
	svc := NewKeyChainService()

	kek := bytes.Repeat([]byte{0x2A}, 32)
	if _, err := svc.UnwrapVaultKey([]byte{0x01, 0x02}, kek); err == nil {
		t.Fatalf("expected unwrap of truncated blob to fail")
	}
}

func TestWrapVaultKey_NonceRandomness(t *testing.T) {
	svc := NewKeyChainService()

	vaultKey := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	blob1, err := svc.WrapVaultKey(vaultKey, kek)
	if err != nil {
		t.Fatalf("WrapVaultKey error: %v", err)
	}
	blob2, err := svc.WrapVaultKey(vaultKey, kek)
	if err != nil {
		t.Fatalf("WrapVaultKey error: %v", err)
	}

	// With different nonces, the full blobs should almost certainly differ.
	if bytes.Equal(blob1, blob2) {
		t.Fatalf("expected different ciphertext blobs for two encryptions")
	}
}

func TestSealExport_OpenRoundTrip(t *testing.T) {
	svc := NewKeyChainService()

	payload := `{"items":[{"name":"example login"}]}`
	envelope, err := svc.SealExport(payload, "file password")
	if err != nil {
		t.Fatalf("SealExport error: %v", err)
	}

	if !strings.Contains(envelope, `"passwordProtected":true`) {
		t.Fatalf("envelope missing passwordProtected marker: %s", envelope)
	}
	if strings.Contains(envelope, "example login") {
		t.Fatalf("envelope leaks plaintext payload")
	}

	got, err := svc.OpenExport(envelope, "file password")
	if err != nil {
		t.Fatalf("OpenExport error: %v", err)
	}
	if got != payload {
		t.Fatalf("payload mismatch: got %q, want %q", got, payload)
	}
}

func TestOpenExport_WrongPasswordFails(t *testing.T) {
	svc := NewKeyChainService()

	envelope, err := svc.SealExport("secret payload", "right password")
	if err != nil {
		t.Fatalf("SealExport error: %v", err)
	}

	if _, err := svc.OpenExport(envelope, "wrong password"); err == nil {
		t.Fatalf("expected open with wrong password to fail")
	}
}

func TestOpenExport_RejectsPlainJSON(t *testing.T) {
	svc := NewKeyChainService()

	if _, err := svc.OpenExport(`{"encrypted":false}`, "any"); err == nil {
		t.Fatalf("expected open of unencrypted document to fail")
	}
}
