package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCarNotFound     = errors.New("car not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrUnauthorized       = errors.New("unauthorized")
)

var (
	ErrCarNotAvailable  = errors.New("car is not available")
	ErrImageRequired    = errors.New("please upload an image")
	ErrCarImageRequired = errors.New("please upload a car image")
)

var (
	ErrValidation = errors.New("validation error")
)
