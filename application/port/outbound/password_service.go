package outbound

import (
	"errors"
)

var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordService hashes and compares secrets. Stored passwords are always
// hashed; there is no plaintext comparison path.
type PasswordService interface {
	Hash(password string) (string, error)
	// Compare returns ErrPasswordMismatch when password does not match hash.
	Compare(hash, password string) error
}
