package models

// PolicyTypeRestrictItemTypes is the organization policy that forbids
// members from holding certain item types in their vaults.
const PolicyTypeRestrictItemTypes = "restrictItemTypes"

// Policy is an organization policy applying to the active user, as returned
// by the remote server.
type Policy struct {
	// OrganizationID identifies the organization that issued the policy.
	OrganizationID string `json:"organizationId"`

	// Type names the policy kind, e.g. [PolicyTypeRestrictItemTypes].
	Type string `json:"type"`

	// Enabled reports whether the policy is currently in force.
	Enabled bool `json:"enabled"`

	// RestrictedTypes lists the item types excluded by a
	// restrictItemTypes policy. Empty for other policy kinds.
	RestrictedTypes []ItemType `json:"restrictedTypes,omitempty"`
}
