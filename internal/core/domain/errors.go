package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer maps
// each one to a status code in the central error handler.
var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Login must never reveal which of the two occurred.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already taken")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrMovieNotFound = errors.New("movie not found")
	ErrMovieExists   = errors.New("movie already exists")
)
