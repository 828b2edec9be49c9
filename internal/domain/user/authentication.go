package user

import "fmt"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) == 0 {
		return fmt.Errorf("password is required")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	return nil
}

func (u *User) VerifyPassword(password string, hasher PasswordHasher) bool {
	if u.passwordHash == "" {
		return false
	}
	return hasher.Verify(password, u.passwordHash) == nil
}
