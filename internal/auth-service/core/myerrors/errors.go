package myerrors

import "errors"

var (
	ErrFieldIsEmpty    = errors.New("field is empty")
	ErrUnknownEmail    = errors.New("unknown email")
	ErrPasswordUnknown = errors.New("unknown password")
	ErrUnknownRole     = errors.New("unknown role")

	ErrEmailRegistered = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
)
