package domain

import "time"

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents an account in the catalog
type User struct {
	ID           uint
	Name         string
	Email        string
	Username     string
	PasswordHash string `gorm:"column:password"`
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is an opaque long-lived credential exchanged for fresh access
// tokens. A user may hold several valid tokens at once; nothing revokes the
// older ones, they only fall out of the validity window.
type RefreshToken struct {
	ID        uint
	Token     string
	UserID    uint
	ExpiresAt time.Time
}

// OTPChallenge is a one-time numeric code issued for a password-reset request
type OTPChallenge struct {
	ID        uint
	Code      int
	UserID    uint
	ExpiresAt time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims represents JWT access token claims
type TokenClaims struct {
	Subject   string `json:"sub"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Movie is a catalog record. Poster holds the stored file name only; the
// public URL is derived by the movie service.
type Movie struct {
	ID          uint
	Title       string
	Director    string
	Studio      string
	Cast        []string
	ReleaseYear int
	Poster      string
}

// MovieDetails is a movie together with its resolved poster URL
type MovieDetails struct {
	Movie
	PosterURL string
}

// MoviePage is one page of the catalog listing
type MoviePage struct {
	Movies        []MovieDetails
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}
