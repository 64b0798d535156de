package valueobject

import (
	"errors"
)

var (
	ErrUserIDTooShort   = errors.New("user id must be at least 3 characters")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// Credentials is a validated login submission. The password here is the
// caller's plaintext secret; it never leaves the login path.
type Credentials struct {
	userID   string
	password string
}

func NewCredentials(userID, password string) (*Credentials, error) {
	if len(userID) < 3 {
		return nil, ErrUserIDTooShort
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	return &Credentials{userID: userID, password: password}, nil
}

func (c *Credentials) UserID() string {
	return c.userID
}

func (c *Credentials) Password() string {
	return c.password
}
