package domain

import (
	"context"
	"io"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// RefreshTokenRepository defines refresh token data access operations
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindByToken(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, id uint) error
	DeleteExpired(ctx context.Context) error
}

// OTPChallengeRepository defines OTP challenge data access operations
type OTPChallengeRepository interface {
	Create(ctx context.Context, challenge *OTPChallenge) error
	FindByCodeAndUser(ctx context.Context, code int, userID uint) (*OTPChallenge, error)
	Delete(ctx context.Context, id uint) error
	DeleteExpired(ctx context.Context) error
}

// ResetTicketStore holds short-lived capability tickets binding a successful
// OTP verification to the subsequent password change
type ResetTicketStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Consume(ctx context.Context, email, ticket string) error
}

// MovieRepository defines movie data access operations
type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	FindByID(ctx context.Context, id uint) (*Movie, error)
	FindAll(ctx context.Context) ([]*Movie, error)
	FindPage(ctx context.Context, offset, limit int, sortBy, dir string) ([]*Movie, int64, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, username, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// PasswordResetService defines the three-step forgot-password flow
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email string, code int) (string, error)
	ChangePassword(ctx context.Context, email, ticket, password, repeat string) error
}

// MovieService defines catalog business logic
type MovieService interface {
	Add(ctx context.Context, movie *Movie, fileName string, data io.Reader) (*MovieDetails, error)
	Get(ctx context.Context, id uint) (*MovieDetails, error)
	List(ctx context.Context) ([]MovieDetails, error)
	Update(ctx context.Context, id uint, movie *Movie, fileName string, data io.Reader) (*MovieDetails, error)
	Delete(ctx context.Context, id uint) error
	ListPage(ctx context.Context, page, size int) (*MoviePage, error)
	ListPageSorted(ctx context.Context, page, size int, sortBy, dir string) (*MoviePage, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access token operations
type TokenService interface {
	GenerateAccessToken(subject, role string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// MailService defines outbound mail operations
type MailService interface {
	Send(to, subject, body string) error
}

// FileStore defines poster file storage operations
type FileStore interface {
	Save(name string, data io.Reader) (string, error)
	Open(name string) (io.ReadCloser, error)
	Remove(name string) error
	Exists(name string) bool
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
