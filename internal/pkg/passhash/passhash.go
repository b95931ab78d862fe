// Package passhash computes the password digest used by the catalog's user
// records: the lowercase hex encoding of an unsalted MD5 of the UTF-8
// plaintext bytes.
//
// MD5 without a salt is a weak scheme. It is retained only because existing
// user records carry digests in this exact format; migrating stored
// credentials to bcrypt is the planned follow-up and new systems must not
// adopt this package.
package passhash

import (
	"crypto/md5"
	"encoding/hex"
)

// Digest returns the lowercase 32-character hex MD5 of plaintext.
// Deterministic: equal inputs always produce equal output.
func Digest(plaintext string) string {
	sum := md5.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether plaintext digests to the stored hash.
func Matches(plaintext, storedHash string) bool {
	return Digest(plaintext) == storedHash
}
