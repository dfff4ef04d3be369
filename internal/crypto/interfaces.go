package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns the client-side key material. It knows nothing about
// the network, the database, or accounts; its single job is to generate and
// protect keys.
//
// Never-lock scheme:
//
//	VaultKey   = GenerateVaultKey()                 (Step 1)
//	KEK        = DeriveKey(devicePassword, salt)    (Step 2)
//	WrappedKey = WrapVaultKey(VaultKey, KEK)        (Step 3, stored locally)
//
// Export scheme:
//
//	envelope   = SealExport(json, filePassword)
type KeyChainService interface {
	// GenerateSalt generates a random salt (16 bytes / 128 bits).
	// The salt is not a secret and is stored alongside the data it
	// protects; it only ensures equal passwords derive different keys.
	GenerateSalt() ([]byte, error)

	// GenerateVaultKey generates a random vault key (32 bytes / 256 bits).
	// For never-timeout accounts the key is wrapped and kept locally so
	// the vault can be reopened without user interaction.
	GenerateVaultKey() ([]byte, error)

	// DeriveKey derives a 256-bit key from a password and salt via
	// Argon2id. The result exists only in client memory.
	DeriveKey(password string, salt []byte) []byte

	// WrapVaultKey encrypts the vault key with the KEK via AES-256-GCM.
	// The result (nonce || ciphertext) is safe to persist — without the
	// KEK it is indistinguishable from random noise.
	WrapVaultKey(vaultKey, kek []byte) ([]byte, error)

	// UnwrapVaultKey reverses WrapVaultKey. It expects the blob in the
	// format nonce || ciphertext and returns the original vault key, or
	// an error if authentication fails (wrong password or KEK).
	UnwrapVaultKey(wrapped, kek []byte) ([]byte, error)

	// SealExport wraps an export payload into a password-protected
	// envelope: a JSON document carrying the KDF parameters, the salt,
	// and the base64 blob (nonce || ciphertext) of the payload.
	SealExport(payload, password string) (string, error)

	// OpenExport reverses SealExport: it re-derives the key from the
	// envelope's own KDF parameters and returns the original payload.
	OpenExport(envelopeJSON, password string) (string, error)
}
