// Package constants provides centralized constant values used throughout sigil.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Key and signature sizes in bytes.
const (
	// KeySize is the length of every raw key sigil loads or generates.
	// BLAKE3 keys, Ed25519 seeds and Ed25519 public keys are all 32 bytes.
	KeySize = 32

	// Blake3SignatureSize is the length of a keyed BLAKE3 digest.
	Blake3SignatureSize = 32

	// Ed25519SignatureSize is the length of an Ed25519 signature.
	Ed25519SignatureSize = 64

	// MaxKeyFileBytes bounds how much of a key source is read before giving up.
	// Anything this large is not a key.
	MaxKeyFileBytes = 4096
)

// Generated key file names. The Ed25519 pair is always written signing key first.
const (
	// Blake3KeyFileName holds a generated symmetric BLAKE3 key.
	Blake3KeyFileName = "blake3.txt"

	// Ed25519SigningKeyFileName holds a generated Ed25519 seed.
	Ed25519SigningKeyFileName = "ed25519.sk"

	// Ed25519VerifyingKeyFileName holds the public half of a generated Ed25519 pair.
	Ed25519VerifyingKeyFileName = "ed25519.pk"

	// KeyFileMode is the permission applied to every key file sigil writes.
	KeyFileMode = 0o600
)

// Directory names used by sigil for its own data.
const (
	// SigilHome is the hidden directory name where sigil stores config and logs.
	// This directory is created in the user's home directory.
	SigilHome = ".sigil"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// HomeEnvVar overrides the location of SigilHome.
	HomeEnvVar = "SIGIL_HOME"

	// EnvPrefix is the prefix for environment variable overrides (SIGIL_*).
	EnvPrefix = "SIGIL"
)

// StdinSentinel is the input path that means "read standard input".
const StdinSentinel = "-"

// Verification status strings printed by `text verify`.
const (
	// StatusVerified is printed when a signature checks out.
	StatusVerified = "Verified"

	// StatusNotVerified is printed when a signature does not match.
	StatusNotVerified = "Not verified"
)
