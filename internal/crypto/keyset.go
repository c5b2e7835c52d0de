package crypto

// Role names what a generated key is for.
type Role uint8

// Key roles.
const (
	// RoleSymmetric is a Blake3 key used for both signing and verifying.
	RoleSymmetric Role = iota + 1
	// RoleSigning is an Ed25519 seed.
	RoleSigning
	// RoleVerifying is an Ed25519 public key.
	RoleVerifying
)

func (r Role) String() string {
	switch r {
	case RoleSymmetric:
		return "symmetric"
	case RoleSigning:
		return "signing"
	case RoleVerifying:
		return "verifying"
	default:
		return "unknown"
	}
}

// GeneratedKey is one freshly generated key and its role.
type GeneratedKey struct {
	Role  Role
	Bytes []byte
}

// KeySet holds the keys produced by one generation, in persistence order.
// Blake3 yields one symmetric key; Ed25519 yields the seed then the public key.
type KeySet []GeneratedKey

// Wipe zeroes every key buffer in the set.
func (s KeySet) Wipe() {
	for i := range s {
		clear(s[i].Bytes)
	}
}
