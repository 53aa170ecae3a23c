package vaultschema

// VaultVersion maps an internal schema revision to the semantic version
// shown to users and the product release that introduced it.
type VaultVersion struct {
	Revision       int    `json:"revision"`
	Version        string `json:"version"`
	Description    string `json:"description"`
	ReleaseVersion string `json:"releaseVersion"`
}

type step struct {
	VaultVersion
	file    string
	creates []string
}

// history is append-only. A released entry and its SQL file must never
// change: every older client replays the identical chain.
var history = []step{
	{
		VaultVersion: VaultVersion{1, "1.0.0", "Initial schema", "0.1.0"},
		file:         "migrations/001_initial.sql",
		creates:      []string{"Aliases", "Services", "Credentials", "Attachments", "Passwords"},
	},
	{
		VaultVersion: VaultVersion{2, "1.1.0", "Add encryption keys", "0.2.0"},
		file:         "migrations/002_encryption_keys.sql",
		creates:      []string{"EncryptionKeys"},
	},
	{
		VaultVersion: VaultVersion{3, "1.2.0", "Add settings", "0.3.0"},
		file:         "migrations/003_settings.sql",
		creates:      []string{"Settings"},
	},
	{
		VaultVersion: VaultVersion{4, "1.3.0", "Add TOTP codes", "0.5.0"},
		file:         "migrations/004_totp_codes.sql",
		creates:      []string{"TotpCodes"},
	},
	{
		VaultVersion: VaultVersion{5, "1.4.0", "Add soft delete columns", "0.6.0"},
		file:         "migrations/005_soft_delete.sql",
	},
	{
		VaultVersion: VaultVersion{6, "1.4.1", "Add foreign key indexes", "0.7.0"},
		file:         "migrations/006_indexes.sql",
	},
}

const completeFile = "migrations/complete.sql"
