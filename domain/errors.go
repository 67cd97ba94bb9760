package domain

import "errors"

// Account errors
var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownAccount     = errors.New("unknown account")
)

// Refresh token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Password reset errors
var (
	ErrUnknownChallenge = errors.New("no matching otp challenge")
	ErrChallengeExpired = errors.New("otp challenge has expired")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrResetNotAllowed  = errors.New("password reset not authorized")
)

// Catalog errors
var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrFileExists    = errors.New("file already exists")
	ErrFileNotFound  = errors.New("file not found")
)
