package domain

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateEmail = errors.New("email already in use")

// User roles manageable by the back-office.
var UserRoles = []string{"student", "instructor", "admin"}

// User is a platform user record.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRepository defines storage for users.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, search string, params PaginationParams) ([]*User, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SoftDelete(ctx context.Context, id int64) error
}

// UserService manages platform users on behalf of admins.
type UserService interface {
	CreateUser(ctx context.Context, name, email, role string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context, search string, params PaginationParams) ([]*User, int, error)
	UpdateUserStatus(ctx context.Context, id int64, status string) error
	DeleteUser(ctx context.Context, id int64) error
}

// AuthService authenticates admins and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (string, error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed auth tokens.
type TokenIssuer interface {
	Issue(userID int64, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the subject user ID.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
