package user

import (
	"fmt"
	"time"

	"ticketdesk/internal/shared/biztime"
)

// User is an account that can report, be assigned to, and comment on tickets.
// The password is held only as a hash.
type User struct {
	id           uint
	username     string
	passwordHash string
	email        string
	role         string
	createdAt    time.Time
}

func NewUser(username, email, role string) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		username:  username,
		email:     email,
		role:      role,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	email string,
	role string,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		role:         role,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() string {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
