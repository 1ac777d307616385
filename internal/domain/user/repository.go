package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// LinkEmployee sets the employee record a user account belongs to.
	LinkEmployee(ctx context.Context, userID, employeeID string) error
}
