package models

import "time"

// ItemType defines the semantic type of a decrypted vault item.
// The value determines which exporter schema the item fits into and
// whether an organization policy restriction applies to it.
type ItemType int

const (
	// ItemTypeLogin represents authentication credentials
	// such as username, password, URIs, and optional TOTP secret.
	ItemTypeLogin ItemType = 1

	// ItemTypeSecureNote represents arbitrary textual data
	// stored as a secure note or free-form secret.
	ItemTypeSecureNote ItemType = 2

	// ItemTypeCard represents payment card information.
	ItemTypeCard ItemType = 3

	// ItemTypeIdentity represents personal identity information
	// (name, address, passport and license numbers).
	ItemTypeIdentity ItemType = 4

	// ItemTypeSSHKey represents an SSH key pair with its fingerprint.
	ItemTypeSSHKey ItemType = 5
)

// String returns the wire name of the item type as used by the exporter
// and the policy service.
func (t ItemType) String() string {
	switch t {
	case ItemTypeLogin:
		return "login"
	case ItemTypeSecureNote:
		return "secureNote"
	case ItemTypeCard:
		return "card"
	case ItemTypeIdentity:
		return "identity"
	case ItemTypeSSHKey:
		return "sshKey"
	default:
		return "unknown"
	}
}

// VaultItem is a single decrypted vault record as read from the vault store.
// The export pipeline treats it as opaque apart from the fields used for
// filtering; decryption and field-level handling live in the vault SDK.
type VaultItem struct {
	// ID is the unique identifier of the item.
	ID string `json:"id"`

	// Name is the decrypted display name of the item.
	Name string `json:"name"`

	// Type determines how the item payload must be interpreted.
	Type ItemType `json:"type"`

	// FolderID is the identifier of the folder the item belongs to,
	// empty when the item is unfiled.
	FolderID string `json:"folderId,omitempty"`

	// OrganizationID is non-empty when the item is owned by an
	// organization rather than the individual user.
	OrganizationID string `json:"organizationId,omitempty"`

	// ArchivedDate is set when the item has been archived. Archived items
	// are excludable from export independent of deletion.
	ArchivedDate *time.Time `json:"archivedDate,omitempty"`

	// DeletedDate is set when the item has been soft-deleted and is
	// pending permanent erasure. Soft-deleted items never appear in
	// export output.
	DeletedDate *time.Time `json:"deletedDate,omitempty"`

	// Login holds the credential payload when Type is ItemTypeLogin.
	Login *LoginItem `json:"login,omitempty"`

	// Notes holds the free-form note text, for every item type.
	Notes string `json:"notes,omitempty"`
}

// LoginItem represents the decrypted credential payload of a login item.
type LoginItem struct {
	// Username is the login identifier used for authentication.
	Username string `json:"username"`

	// Password is the secret credential associated with the username.
	Password string `json:"password"`

	// URIs defines one or more resources where the credentials apply.
	URIs []string `json:"uris,omitempty"`

	// TOTP contains an optional time-based one-time password seed.
	TOTP string `json:"totp,omitempty"`
}
