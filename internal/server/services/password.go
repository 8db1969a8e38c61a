package services

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters for password verifier derivation.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltLen = 32
)

// deriveKey stretches a password with the user's salt.
func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// makeVerifier hashes a derived key into the value stored in the users table.
// Only the verifier is persisted, never the password or the key itself.
func makeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// deriveVerifier is the full password-to-verifier pipeline.
func deriveVerifier(password, salt []byte) []byte {
	return makeVerifier(deriveKey(password, salt))
}

// checkVerifier compares verifiers in constant time.
func checkVerifier(verifier, candidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
