package app

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUserNotFound   = errors.New("user not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrUsernameExists = errors.New("username already registered")
	ErrEmailExists    = errors.New("email already registered")
)
