// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// exportEnvelope is the on-disk format of a password-protected export. The
// KDF parameters are embedded so the file stays openable after the defaults
// change.
type exportEnvelope struct {
	Encrypted         bool   `json:"encrypted"`
	PasswordProtected bool   `json:"passwordProtected"`
	Salt              string `json:"salt"`
	KDFIterations     uint32 `json:"kdfIterations"`
	KDFMemory         uint32 `json:"kdfMemory"`
	KDFParallelism    uint8  `json:"kdfParallelism"`
	Data              string `json:"data"`
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateVaultKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateVaultKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey implements [KeyChainService]. It derives a 256-bit key from
// password and salt using Argon2id with the parameters stored in the
// receiver.
func (k *keyChainService) DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// WrapVaultKey implements [KeyChainService]. It wraps vaultKey with kek
// using AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext
// so the decryption side can locate it: blob = nonce ‖ ciphertext.
func (k *keyChainService) WrapVaultKey(vaultKey, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so UnwrapVaultKey can split it out.
	wrapped := gcm.Seal(nil, nonce, vaultKey, nil)
	return append(nonce, wrapped...), nil
}

// UnwrapVaultKey implements [KeyChainService]. It unwraps the blob produced
// by [keyChainService.WrapVaultKey]. The blob must be at least as long as
// the GCM nonce (12 bytes). Returns the plaintext vault key, or an error if
// the blob is too short, the KEK is wrong, or the ciphertext is corrupted
// (authentication-tag mismatch).
func (k *keyChainService) UnwrapVaultKey(wrapped, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(wrapped) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := wrapped[:nonceSize], wrapped[nonceSize:]

	// An error here almost always means a wrong password produced a
	// wrong KEK.
	key, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return key, nil
}

// SealExport implements [KeyChainService]. It derives a file key from
// password with a fresh salt, encrypts payload with AES-256-GCM, and
// returns the JSON envelope carrying the KDF parameters, the salt, and the
// Base64 blob: nonce (12 bytes) ‖ ciphertext.
func (k *keyChainService) SealExport(payload, password string) (string, error) {
	salt, err := k.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	fileKey := k.DeriveKey(password, salt)

	block, err := aes.NewCipher(fileKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(payload), nil)
	blob := append(nonce, ciphertext...)

	envelope := exportEnvelope{
		Encrypted:         true,
		PasswordProtected: true,
		Salt:              base64.StdEncoding.EncodeToString(salt),
		KDFIterations:     k.argonTime,
		KDFMemory:         k.argonMemory,
		KDFParallelism:    k.argonThreads,
		Data:              base64.StdEncoding.EncodeToString(blob),
	}

	out, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(out), nil
}

// OpenExport implements [KeyChainService]. It parses the envelope produced
// by [keyChainService.SealExport], re-derives the file key using the
// envelope's own KDF parameters, and returns the decrypted payload. Returns
// an error if any step (parsing, decoding, cipher creation, or decryption)
// fails.
func (k *keyChainService) OpenExport(envelopeJSON, password string) (string, error) {
	var envelope exportEnvelope
	if err := json.Unmarshal([]byte(envelopeJSON), &envelope); err != nil {
		return "", fmt.Errorf("unmarshal envelope: %w", err)
	}
	if !envelope.Encrypted || !envelope.PasswordProtected {
		return "", fmt.Errorf("not a password-protected export")
	}

	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	blob, err := base64.StdEncoding.DecodeString(envelope.Data)
	if err != nil {
		return "", fmt.Errorf("decode data: %w", err)
	}

	// Use the envelope's parameters, not the receiver's: the file may
	// predate a parameter bump.
	fileKey := argon2.IDKey(
		[]byte(password),
		salt,
		envelope.KDFIterations,
		envelope.KDFMemory,
		envelope.KDFParallelism,
		k.argonKeyLen,
	)

	block, err := aes.NewCipher(fileKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt export: %w", err)
	}

	return string(plaintext), nil
}
