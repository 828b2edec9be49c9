package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create persists a new user and assigns its ID
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs retrieves the users that exist among ids, in no particular order
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	// GetByUsername retrieves a user by exact username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ListByRole retrieves users with exactly the given role
	ListByRole(ctx context.Context, role string) ([]*User, error)

	// List retrieves every user
	List(ctx context.Context) ([]*User, error)

	// ExistsByUsername checks if a username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
